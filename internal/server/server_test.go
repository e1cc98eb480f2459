package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/semantic"
)

// newTestServer builds a server without a database or embedding client.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	return &Server{
		engine:    scoring.NewEngine(nil, nil, semantic.NewCache(16)),
		validator: validator.New(),
	}
}

func postScore(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleScore(t *testing.T) {
	s := newTestServer(t)

	rec := postScore(t, s, ScoreRequest{
		ResumeText:  "SKILLS\nPython, Go, Docker\n\nEXPERIENCE\nBuilt services in Go.",
		PostingText: "REQUIREMENTS\nPython and Go experience required.",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Nil(t, resp.ID)
	assert.Greater(t, resp.Result.FinalScore, 0.0)
	assert.False(t, resp.Result.SemanticAvailable)
	assert.False(t, resp.Result.InsufficientInput)
}

func TestHandleScore_HTMLPosting(t *testing.T) {
	s := newTestServer(t)

	rec := postScore(t, s, ScoreRequest{
		ResumeText: "SKILLS\nPython, Kubernetes",
		PostingText: `<html><body><nav>Jobs</nav><main>
			<h2>Requirements</h2><ul><li>Python</li><li>Kubernetes</li></ul>
			</main></body></html>`,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Contains(t, resp.Result.MatchedKeywords, "python")
}

func TestHandleScore_MissingFields(t *testing.T) {
	s := newTestServer(t)

	rec := postScore(t, s, ScoreRequest{ResumeText: "SKILLS\nGo"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
	assert.Contains(t, rec.Body.String(), "PostingText")
}

func TestHandleScore_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestHandleScore_SaveWithoutDatabase(t *testing.T) {
	s := newTestServer(t)

	rec := postScore(t, s, ScoreRequest{
		ResumeText:  "SKILLS\nGo",
		PostingText: "REQUIREMENTS\nGo",
		Save:        true,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "score history is not configured")
}

func TestHandleScore_WhitespaceInput(t *testing.T) {
	s := newTestServer(t)

	rec := postScore(t, s, ScoreRequest{ResumeText: "   \n  ", PostingText: "   "})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.InsufficientInput)
	assert.Zero(t, resp.Result.FinalScore)
}

func TestHandleListScores_WithoutDatabase(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/scores", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGetScore_WithoutDatabase(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/scores/0b42cdad-69ed-4bb2-a8ba-fb3f96b43b5e", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["semantic_available"])
	assert.Equal(t, false, body["history_enabled"])
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrScoreNotFound{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "resume_text", Message: "required"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
