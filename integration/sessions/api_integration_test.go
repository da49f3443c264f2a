package sessions_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/database"
	"github.com/showquotes/transcript-api/internal/services/sessions"
	"github.com/showquotes/transcript-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type IntegrationTestSuite struct {
	t      *testing.T
	router *gin.Engine
}

func setupIntegrationTestSuite(t *testing.T) *IntegrationTestSuite {
	gin.SetMode(gin.TestMode)
	require.NoError(t, config.Init())

	registry, err := sessions.NewRegistry(t.TempDir(), database.Options{MaxConnections: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = registry.Close() })

	deps := &types.Dependencies{Sessions: registry}

	router := gin.New()
	router.Use(gin.Recovery())

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	cleanupInitialized := &sync.Once{}

	err = api.RegisterRoutes(router, deps, rateLimiters, cleanupStop, cleanupInitialized)
	require.NoError(t, err, "Failed to register routes")

	return &IntegrationTestSuite{t: t, router: router}
}

func (suite *IntegrationTestSuite) do(method, path, sessionID string, body any) *httptest.ResponseRecorder {
	suite.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(suite.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(types.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) createSession() string {
	suite.t.Helper()

	w := suite.do(http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(suite.t, http.StatusCreated, w.Code)

	var resp types.SessionResponse
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(suite.t, resp.SessionID)
	return resp.SessionID
}

func (suite *IntegrationTestSuite) writeCorpus(files map[string]string) string {
	suite.t.Helper()

	root := suite.t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(suite.t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(suite.t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestSessionLifecycle(t *testing.T) {
	suite := setupIntegrationTestSuite(t)
	sessionID := suite.createSession()

	root := suite.writeCorpus(map[string]string{
		"S1/E1 - Pilot.txt": "Alice: good morning\nBob: morning\nall quiet on set\n",
		"S1/E2.txt":         "Alice: scene two\n",
		"S2/E1.txt":         "Bob: new season\n",
	})

	// Import the corpus
	w := suite.do(http.MethodPost, "/api/v1/import", sessionID, types.ImportRequest{Path: root})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var importResp types.ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &importResp))
	assert.Equal(t, 2, importResp.Stats.Seasons)
	assert.Equal(t, 3, importResp.Stats.Episodes)
	assert.Equal(t, 5, importResp.Stats.Lines)

	// Catalog listings
	w = suite.do(http.MethodGet, "/api/v1/seasons", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var seasonsResp types.SeasonsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seasonsResp))
	require.Equal(t, 2, seasonsResp.Count)

	w = suite.do(http.MethodGet, "/api/v1/speakers", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var speakersResp types.SpeakersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &speakersResp))
	assert.Equal(t, 2, speakersResp.Count)

	// Transcript by natural numbers
	w = suite.do(http.MethodGet, "/api/v1/transcripts/1/1", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var transcriptResp types.TranscriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transcriptResp))
	require.Equal(t, 3, transcriptResp.Count)
	assert.Nil(t, transcriptResp.Lines[2].SpeakerID, "narration line has no speaker")

	// Random sampling
	w = suite.do(http.MethodGet, "/api/v1/random-line", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Phrase search with context
	w = suite.do(http.MethodGet, "/api/v1/search-phrases?phrase=morning&context=1", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var searchResp types.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &searchResp))
	assert.Equal(t, 2, searchResp.Count)

	// Teardown
	w = suite.do(http.MethodDelete, "/api/v1/sessions/"+sessionID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessionIsolation(t *testing.T) {
	suite := setupIntegrationTestSuite(t)
	first := suite.createSession()
	second := suite.createSession()

	root := suite.writeCorpus(map[string]string{
		"S1/E1.txt": "Alice: only in the first session\n",
	})

	w := suite.do(http.MethodPost, "/api/v1/import", first, types.ImportRequest{Path: root})
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/seasons", first, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var firstSeasons types.SeasonsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &firstSeasons))
	assert.Equal(t, 1, firstSeasons.Count)

	w = suite.do(http.MethodGet, "/api/v1/seasons", second, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var secondSeasons types.SeasonsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &secondSeasons))
	assert.Equal(t, 0, secondSeasons.Count)
}

func TestSessionRequired(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	w := suite.do(http.MethodGet, "/api/v1/seasons", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/seasons", "not a valid id!", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	w := suite.do(http.MethodGet, "/api/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
