package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListProgress retrieves all topic-progress records for a user
func (db *DB) ListProgress(ctx context.Context, userID uuid.UUID) ([]Progress, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, topic, completed, updated_at
		 FROM progress WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	defer rows.Close()

	var records []Progress
	for rows.Next() {
		var p Progress
		if err := rows.Scan(&p.ID, &p.UserID, &p.Topic, &p.Completed, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		records = append(records, p)
	}
	return records, nil
}

// UpsertProgress creates or updates the completion mark for (user, topic)
func (db *DB) UpsertProgress(ctx context.Context, userID uuid.UUID, topic string, completed bool) (*Progress, error) {
	var p Progress
	err := db.pool.QueryRow(ctx,
		`INSERT INTO progress (user_id, topic, completed)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, topic) DO UPDATE SET completed = $3, updated_at = NOW()
		 RETURNING id, user_id, topic, completed, updated_at`,
		userID, topic, completed,
	).Scan(&p.ID, &p.UserID, &p.Topic, &p.Completed, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert progress: %w", err)
	}
	return &p, nil
}
