package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ListGoals retrieves all goals recorded by a user, oldest first
func (db *DB) ListGoals(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, COALESCE(description, ''), target_date, completed, created_at
		 FROM goals WHERE user_id = $1 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetDate, &g.Completed, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// CreateGoal inserts a new goal for a user and returns its ID
func (db *DB) CreateGoal(ctx context.Context, userID uuid.UUID, title, description string, targetDate *time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO goals (user_id, title, description, target_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, title, description, targetDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return id, nil
}

// UpdateGoal updates a goal owned by the given user
func (db *DB) UpdateGoal(ctx context.Context, goalID, userID uuid.UUID, title, description string, targetDate *time.Time, completed bool) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE goals SET title = $1, description = $2, target_date = $3, completed = $4
		 WHERE id = $5 AND user_id = $6`,
		title, description, targetDate, completed, goalID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("goal not found: %s", goalID)
	}
	return nil
}

// DeleteGoal deletes a goal owned by the given user
func (db *DB) DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM goals WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("goal not found: %s", goalID)
	}
	return nil
}
