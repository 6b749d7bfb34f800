package repository

import (
	"context"
	"time"

	"skill-evolution/internal/database"

	"github.com/google/uuid"
)

type AssessmentResultRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	SkillName   string
	Score       float64
	Passed      bool
	XPEarned    int64
	CompletedAt time.Time
}

type AssessmentRepository interface {
	// ListByUser returns results newest first. skill filters when non-empty.
	ListByUser(ctx context.Context, userID uuid.UUID, skill string, limit int) ([]AssessmentResultRow, error)
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

func (r *PostgresAssessmentRepository) ListByUser(ctx context.Context, userID uuid.UUID, skill string, limit int) ([]AssessmentResultRow, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, user_id, skill_name, score, passed, xp_earned, completed_at
		 FROM assessment_results
		 WHERE user_id = $1`
	args := []any{userID}
	if skill != "" {
		query += ` AND skill_name = $2 ORDER BY completed_at DESC LIMIT $3`
		args = append(args, skill, limit)
	} else {
		query += ` ORDER BY completed_at DESC LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AssessmentResultRow, 0)
	for rows.Next() {
		var a AssessmentResultRow
		if err := rows.Scan(&a.ID, &a.UserID, &a.SkillName, &a.Score, &a.Passed, &a.XPEarned, &a.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
