package jwt

import (
	"testing"

	"odishaconnect/backend/internal/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	t.Cleanup(func() { config.AppConfig = nil })

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := gojwt.Parse(token, func(token *gojwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(gojwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["sub"])
	assert.Contains(t, claims, "exp")
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	t.Cleanup(func() { config.AppConfig = nil })

	token, err := GenerateToken(42)
	require.NoError(t, err)

	_, err = gojwt.Parse(token, func(token *gojwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
