package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func TestGenerateJWT_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateJWT("uid-123", "ana@example.com")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "uid-123", claims.Subject)

	// seven day expiry
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT("uid-123", "ana@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET not set")
}

func signed(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return s
}

func TestValidateJWT_Rejects(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	valid, err := GenerateJWT("uid-123", "ana@example.com")
	require.NoError(t, err)

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.jwt"},
		{"tampered", valid[:len(valid)-5] + "XXXXX"},
		{"expired", signed(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{
			UserID:           "uid-123",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
		})},
		{"wrong secret", signed(t, jwt.SigningMethodHS256, []byte("other-secret"), Claims{
			UserID:           "uid-123",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})},
		{"none algorithm", signed(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, Claims{
			UserID:           "attacker",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})},
		{"hs512", signed(t, jwt.SigningMethodHS512, []byte(testSecret), Claims{
			UserID:           "uid-123",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})},
		{"no user id", signed(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token)
			assert.Error(t, err)
		})
	}
}
