package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListSkills retrieves all skills recorded by a user, oldest first
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, level, created_at
		 FROM skills WHERE user_id = $1 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// CreateSkill inserts a new skill for a user and returns its ID
func (db *DB) CreateSkill(ctx context.Context, userID uuid.UUID, name, level string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (user_id, name, level)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, name, level,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return id, nil
}

// UpdateSkill updates a skill owned by the given user
func (db *DB) UpdateSkill(ctx context.Context, skillID, userID uuid.UUID, name, level string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE skills SET name = $1, level = $2 WHERE id = $3 AND user_id = $4`,
		name, level, skillID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill not found: %s", skillID)
	}
	return nil
}

// DeleteSkill deletes a skill owned by the given user
func (db *DB) DeleteSkill(ctx context.Context, skillID, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM skills WHERE id = $1 AND user_id = $2`,
		skillID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill not found: %s", skillID)
	}
	return nil
}
