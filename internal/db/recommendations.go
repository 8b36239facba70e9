package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SaveRecommendation stores a generated recommendation result as JSONB
func (db *DB) SaveRecommendation(ctx context.Context, userID uuid.UUID, content any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO recommendations (user_id, content)
		 VALUES ($1, $2)
		 RETURNING id`,
		userID, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save recommendation: %w", err)
	}
	return id, nil
}

// ListRecommendations retrieves a user's recent recommendation results, newest first
func (db *DB) ListRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]Recommendation, error) {
	if limit == 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, content, created_at
		 FROM recommendations WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	var recs []Recommendation
	for rows.Next() {
		var r Recommendation
		if err := rows.Scan(&r.ID, &r.UserID, &r.Content, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recs = append(recs, r)
	}
	return recs, nil
}
