package security

import (
	"Mizan/internal/api/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 2},
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	require.NoError(t, CheckPasswordHash("s3cret-password", hash))
	require.Error(t, CheckPasswordHash("wrong-password", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken("665f1c0a0000000000000001", "admin", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "665f1c0a0000000000000001", claims.UserID)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "Mizan", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	setupJWTConfig(t)
	token, err := GenerateToken("id", "user", "editor")
	require.NoError(t, err)

	config.Cfg.JWT.Secret = "another-secret"
	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	setupJWTConfig(t)
	token, err := GenerateToken("id", "user", "editor")
	require.NoError(t, err)

	signature, err := ExtractSignature(token)
	require.NoError(t, err)
	require.NotEmpty(t, signature)

	_, err = ExtractSignature("not-a-jwt")
	require.Error(t, err)
}
