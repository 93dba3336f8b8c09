package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestInspectToken_ReadsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub":   "account-1",
		"exp":   exp.Unix(),
		"roles": []string{"ROLE_ADMIN"},
	})

	info, err := InspectToken(token)
	require.NoError(t, err)
	assert.Equal(t, "account-1", info.Subject)
	assert.Equal(t, exp.Unix(), info.ExpiresAt)
	assert.Equal(t, []string{"ROLE_ADMIN"}, info.Roles)
}

func TestInspectToken_MissingClaimsAreZero(t *testing.T) {
	info, err := InspectToken(signedToken(t, jwt.MapClaims{}))
	require.NoError(t, err)
	assert.Empty(t, info.Subject)
	assert.Zero(t, info.ExpiresAt)
	assert.Empty(t, info.Roles)
}

func TestInspectToken_OpaqueTokenFails(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	assert.Error(t, err)
}
