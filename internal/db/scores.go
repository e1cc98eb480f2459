package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ScoreRecord is one persisted scoring run
type ScoreRecord struct {
	ID                uuid.UUID          `json:"id"`
	Company           string             `json:"company"`
	ResumeHash        string             `json:"resume_hash"`
	PostingHash       string             `json:"posting_hash"`
	FinalScore        float64            `json:"final_score"`
	SemanticAvailable bool               `json:"semantic_available"`
	Result            *types.ScoreResult `json:"result,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// ScoreSummary is a lightweight view of a score record for listing
type ScoreSummary struct {
	ID                uuid.UUID `json:"id"`
	Company           string    `json:"company"`
	FinalScore        float64   `json:"final_score"`
	SemanticAvailable bool      `json:"semantic_available"`
	CreatedAt         time.Time `json:"created_at"`
}

// SaveScore stores a score result and returns the new record's ID.
// The résumé and posting hashes identify the inputs without storing them.
func (db *DB) SaveScore(ctx context.Context, company, resumeHash, postingHash string, result *types.ScoreResult) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO scores (company, resume_hash, posting_hash, final_score, semantic_available, result)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		company, resumeHash, postingHash, result.FinalScore, result.SemanticAvailable, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save score: %w", err)
	}
	return id, nil
}

// GetScore retrieves a score record by ID. Returns (nil, nil) when no record
// exists.
func (db *DB) GetScore(ctx context.Context, id uuid.UUID) (*ScoreRecord, error) {
	var record ScoreRecord
	var resultBytes []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, company, resume_hash, posting_hash, final_score, semantic_available, result, created_at
		 FROM scores WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.Company, &record.ResumeHash, &record.PostingHash,
		&record.FinalScore, &record.SemanticAvailable, &resultBytes, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	if len(resultBytes) > 0 {
		var result types.ScoreResult
		if err := json.Unmarshal(resultBytes, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score result: %w", err)
		}
		record.Result = &result
	}

	return &record, nil
}

// ScoreFilters holds optional filters for listing score records
type ScoreFilters struct {
	Company  string
	MinScore float64
	Limit    int
}

// ListScores retrieves recent score records with optional filters
func (db *DB) ListScores(ctx context.Context, filters ScoreFilters) ([]ScoreSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, company, final_score, semantic_available, created_at
		FROM scores WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND final_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	var scores []ScoreSummary
	for rows.Next() {
		var s ScoreSummary
		if err := rows.Scan(&s.ID, &s.Company, &s.FinalScore, &s.SemanticAvailable, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, nil
}

// DeleteScore deletes a score record by ID
func (db *DB) DeleteScore(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM scores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("score not found: %s", id)
	}
	return nil
}
