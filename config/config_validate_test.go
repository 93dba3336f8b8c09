package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = "http://localhost:8081"
	cfg.API.Timeout = 15 * time.Second
	cfg.Storage.Dir = "/tmp/orchid-test"
	cfg.Shipping = DefaultShipping()

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validTestConfig().validate())
}

func TestConfig_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{
			name:   "missing base url",
			mutate: func(cfg *Config) { cfg.API.BaseURL = "" },
		},
		{
			name:   "base url is not a url",
			mutate: func(cfg *Config) { cfg.API.BaseURL = "not a url" },
		},
		{
			name:   "missing storage dir",
			mutate: func(cfg *Config) { cfg.Storage.Dir = "" },
		},
		{
			name:   "negative flat fee",
			mutate: func(cfg *Config) { cfg.Shipping.FlatFee = -1 },
		},
		{
			name:   "missing shipping currency",
			mutate: func(cfg *Config) { cfg.Shipping.Currency = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			assert.Error(t, cfg.validate())
		})
	}
}
