package qrcode

import (
	"bytes"
	"testing"

	"orchid/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateOrderQR_ProducesPNG(t *testing.T) {
	svc := New(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 128,
		ErrorCorrectionLevel: "M",
		BaseURL:              "http://localhost:5173/order-confirmation",
	}})

	png, err := svc.GenerateOrderQR("order-42")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestGenerateOrderQR_DefaultsWithoutConfig(t *testing.T) {
	svc := New(&config.Config{})

	png, err := svc.GenerateOrderQR("order-42")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestGenerateOrderQR_RequiresOrderID(t *testing.T) {
	svc := New(&config.Config{})

	_, err := svc.GenerateOrderQR("")
	assert.Error(t, err)
}
