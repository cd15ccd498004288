package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	token := env.login()
	assert.NotEmpty(t, token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/login", gin.H{
		"username": testAdminUser, "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/auth/login", gin.H{
		"username": "nobody", "password": "whatever",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/auth/login", gin.H{"username": testAdminUser}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginNeverReturnsPasswordHash(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/login", gin.H{
		"username": testAdminUser, "password": testAdminPass,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	w := env.do(http.MethodPost, "/api/auth/register", gin.H{
		"username": "reviewer", "password": "longenough",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user models.User
	decodeBody(t, w, &user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "reviewer", user.Username)

	// The new reviewer can log in.
	w = env.do(http.MethodPost, "/api/auth/login", gin.H{
		"username": "reviewer", "password": "longenough",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	// Requires an existing staff token.
	w := env.do(http.MethodPost, "/api/auth/register", gin.H{
		"username": "reviewer", "password": "longenough",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Short password.
	w = env.do(http.MethodPost, "/api/auth/register", gin.H{
		"username": "reviewer", "password": "short",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate username.
	w = env.do(http.MethodPost, "/api/auth/register", gin.H{
		"username": testAdminUser, "password": "longenough",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestAdminRoutesRejectGarbageTokens(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/challenges", gin.H{}, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := env.do(http.MethodPatch, "/api/teams/1/score", gin.H{"score": 1}, "")
	assert.Equal(t, http.StatusUnauthorized, req.Code)
}
