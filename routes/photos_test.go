package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
)

func TestCreatePhotoDefaultsToPending(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	team := env.createTeam(token, "Bestioles", "BST01")
	challenge := env.createChallenge(token, "Photo officielle")

	w := env.do(http.MethodPost, "/api/photos", gin.H{
		"teamId":      team.ID,
		"challengeId": challenge.ID,
		"photoUrl":    "https://example.com/proof.jpg",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var photo models.Photo
	decodeBody(t, w, &photo)
	assert.NotZero(t, photo.ID)
	assert.Equal(t, models.PhotoStatusPending, photo.Status)
	assert.False(t, photo.CreatedAt.IsZero())
}

func TestCreatePhotoUnknownReferences(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	team := env.createTeam(token, "Bestioles", "BST01")
	challenge := env.createChallenge(token, "Photo officielle")

	w := env.do(http.MethodPost, "/api/photos", gin.H{
		"teamId": 99, "challengeId": challenge.ID, "photoUrl": "https://example.com/p.jpg",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown team")

	w = env.do(http.MethodPost, "/api/photos", gin.H{
		"teamId": team.ID, "challengeId": 99, "photoUrl": "https://example.com/p.jpg",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown challenge")
}

func TestUpdatePhotoStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	team := env.createTeam(token, "Bestioles", "BST01")
	challenge := env.createChallenge(token, "Photo officielle")

	w := env.do(http.MethodPost, "/api/photos", gin.H{
		"teamId": team.ID, "challengeId": challenge.ID, "photoUrl": "https://example.com/p.jpg",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodPatch, "/api/photos/1/status", gin.H{
		"status": "rejected",
		"notes":  "Hors zone, reprenez la photo au bon endroit",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var photo models.Photo
	decodeBody(t, w, &photo)
	assert.Equal(t, models.PhotoStatusRejected, photo.Status)
	assert.Contains(t, photo.Notes, "Hors zone")

	// The API permits re-review.
	w = env.do(http.MethodPatch, "/api/photos/1/status", gin.H{"status": "approved"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &photo)
	assert.Equal(t, models.PhotoStatusApproved, photo.Status)
	// Notes without a new value stay as they were.
	assert.Contains(t, photo.Notes, "Hors zone")
}

func TestUpdatePhotoStatusRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	team := env.createTeam(token, "Bestioles", "BST01")
	challenge := env.createChallenge(token, "Photo officielle")

	w := env.do(http.MethodPost, "/api/photos", gin.H{
		"teamId": team.ID, "challengeId": challenge.ID, "photoUrl": "https://example.com/p.jpg",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodPatch, "/api/photos/1/status", gin.H{"status": "maybe"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Stored photo is unchanged.
	var photos []models.Photo
	w = env.do(http.MethodGet, "/api/photos", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &photos)
	require.Len(t, photos, 1)
	assert.Equal(t, models.PhotoStatusPending, photos[0].Status)
}

func TestUpdatePhotoStatusNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	w := env.do(http.MethodPatch, "/api/photos/7/status", gin.H{"status": "approved"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePhotoStatusRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPatch, "/api/photos/1/status", gin.H{"status": "approved"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTeamPhotosEmptyList(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	env.createTeam(token, "Sans photos", "SP01")

	w := env.do(http.MethodGet, "/api/teams/1/photos", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestTeamPhotosFiltersByTeam(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	teamA := env.createTeam(token, "Équipe A", "EQA01")
	teamB := env.createTeam(token, "Équipe B", "EQB01")
	challenge := env.createChallenge(token, "Photo officielle")

	for _, teamID := range []uint32{teamA.ID, teamA.ID, teamB.ID} {
		w := env.do(http.MethodPost, "/api/photos", gin.H{
			"teamId": teamID, "challengeId": challenge.ID, "photoUrl": "https://example.com/p.jpg",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var photos []models.Photo
	w := env.do(http.MethodGet, "/api/teams/1/photos", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &photos)
	assert.Len(t, photos, 2)
	for _, p := range photos {
		assert.Equal(t, teamA.ID, p.TeamID)
	}

	w = env.do(http.MethodGet, "/api/photos", nil, "")
	decodeBody(t, w, &photos)
	assert.Len(t, photos, 3)
}
