package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &models.User{ID: 7, Username: "admin"}

	token, err := GenerateToken(user, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Username: "admin"}

	token, err := GenerateToken(user, []byte("secret-a"))
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", []byte("secret"))
	assert.Error(t, err)
}

// Only HS256 tokens may pass; an unsigned "none" token must be refused
// even though the keyfunc would hand back a secret.
func TestParseTokenRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{UserID: 1, Username: "admin"}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(unsigned, []byte("secret"))
	assert.Error(t, err)
}
