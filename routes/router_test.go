package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/config"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/storage"
)

const (
	testAdminUser = "admin"
	testAdminPass = "correct-horse"
)

type testEnv struct {
	t      *testing.T
	router *gin.Engine
	store  storage.Store
	cfg    *config.Config
}

// newTestEnv builds an isolated server: fresh memory store, temp upload
// dir, one staff account.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemory()
	admin := models.User{Username: testAdminUser, Password: testAdminPass}
	require.NoError(t, store.CreateUser(&admin))

	cfg := &config.Config{
		Port:           8080,
		StorageBackend: config.StorageMemory,
		UploadDir:      t.TempDir(),
		JWTSecret:      "test-secret",
	}

	return &testEnv{
		t:      t,
		router: SetupRouter(store, cfg),
		store:  store,
		cfg:    cfg,
	}
}

// do sends a JSON request; token may be empty for public endpoints.
func (e *testEnv) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login exchanges the test staff credentials for a bearer token.
func (e *testEnv) login() string {
	e.t.Helper()

	w := e.do(http.MethodPost, "/api/auth/login", gin.H{
		"username": testAdminUser,
		"password": testAdminPass,
	}, "")
	require.Equal(e.t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(e.t, resp.Token)
	return resp.Token
}

// createTeam is a shortcut used by most scenarios.
func (e *testEnv) createTeam(token, name, code string) models.Team {
	e.t.Helper()

	w := e.do(http.MethodPost, "/api/teams", gin.H{
		"name":    name,
		"code":    code,
		"captain": "Capitaine",
		"email":   "capitaine@example.com",
		"phone":   "418-555-0000",
	}, token)
	require.Equal(e.t, http.StatusCreated, w.Code, "create team failed: %s", w.Body.String())

	var team models.Team
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &team))
	return team
}

func (e *testEnv) createChallenge(token, name string) models.Challenge {
	e.t.Helper()

	w := e.do(http.MethodPost, "/api/challenges", gin.H{
		"name":        name,
		"description": "Une épreuve du rallye",
		"coordsLat":   "48.4175",
		"coordsLng":   "-71.0591",
		"type":        "photo",
	}, token)
	require.Equal(e.t, http.StatusCreated, w.Code, "create challenge failed: %s", w.Body.String())

	var challenge models.Challenge
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &challenge))
	return challenge
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
