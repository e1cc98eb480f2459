package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ScoreRequest is the request body for POST /score
type ScoreRequest struct {
	ResumeText  string `json:"resume_text" validate:"required"`
	PostingText string `json:"posting_text" validate:"required"`
	Company     string `json:"company,omitempty"`
	Save        bool   `json:"save,omitempty"`
}

// ScoreResponse wraps a score result with its record ID when persisted
type ScoreResponse struct {
	ID     *uuid.UUID         `json:"id,omitempty"`
	Result *types.ScoreResult `json:"result"`
}

// handleScore scores a résumé against a posting
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if req.Save && s.db == nil {
		s.errorResponse(w, http.StatusBadRequest, "score history is not configured")
		return
	}

	resumeText := cleanInput(req.ResumeText)
	postingText := cleanInput(req.PostingText)

	result := s.engine.Score(r.Context(), scoring.Request{
		ResumeText:  resumeText,
		PostingText: postingText,
		Company:     req.Company,
	})

	response := ScoreResponse{Result: result}
	if req.Save {
		resumeHash := ingestion.NewMetadata(resumeText).Hash
		postingHash := ingestion.NewMetadata(postingText).Hash
		id, err := s.db.SaveScore(r.Context(), req.Company, resumeHash, postingHash, result)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save score: "+err.Error())
			return
		}
		response.ID = &id
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleListScores lists persisted score records
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "score history is not configured")
		return
	}

	filters := db.ScoreFilters{Company: r.URL.Query().Get("company")}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit: "+limit)
			return
		}
		filters.Limit = parsed
	}
	if minScore := r.URL.Query().Get("min_score"); minScore != "" {
		parsed, err := strconv.ParseFloat(minScore, 64)
		if err != nil || parsed < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid min_score: "+minScore)
			return
		}
		filters.MinScore = parsed
	}

	scores, err := s.db.ListScores(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list scores: "+err.Error())
		return
	}
	if scores == nil {
		scores = []db.ScoreSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"scores": scores, "count": len(scores)})
}

// handleGetScore retrieves one persisted score record with its full result
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "score history is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid score ID: "+r.PathValue("id"))
		return
	}

	record, err := s.db.GetScore(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get score: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrScoreNotFound{ID: id}).Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleDeleteScore deletes one persisted score record
func (s *Server) handleDeleteScore(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "score history is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid score ID: "+r.PathValue("id"))
		return
	}

	if err := s.db.DeleteScore(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// cleanInput normalizes a raw input document. Postings pasted as HTML get
// their body text extracted first.
func cleanInput(text string) string {
	if ingestion.LooksLikeHTML(text) {
		if extracted, err := ingestion.ExtractHTMLText(text); err == nil {
			text = extracted
		}
	}
	return ingestion.CleanText(text)
}
