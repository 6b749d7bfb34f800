package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-evolution/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

// ProgressRecord is the per-user gamification state the engine transitions:
// XP, derived league, and the skill records.
type ProgressRecord struct {
	UserID  uuid.UUID
	TotalXP int64
	League  string
	Skills  []UserSkill
}

// AssessmentRecord is one completed assessment to persist.
type AssessmentRecord struct {
	UserID    uuid.UUID
	SkillName string
	Score     float64
	Passed    bool
	XPEarned  int64
}

type ProgressRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (ProgressRecord, error)
	// SaveAssessment persists one assessment outcome atomically: the user's
	// new XP/league, the validated skill upsert (nil when the assessment
	// failed), and the result row. Either everything lands or nothing does.
	SaveAssessment(ctx context.Context, rec AssessmentRecord, totalXP int64, league string, validatedSkill *UserSkill) error
}

type PostgresProgressRepository struct {
	db database.DB
}

func NewPostgresProgressRepository(db database.DB) *PostgresProgressRepository {
	return &PostgresProgressRepository{db: db}
}

func (r *PostgresProgressRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (ProgressRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT total_xp, league FROM users WHERE id = $1`, userID)

	rec := ProgressRecord{UserID: userID}
	if err := row.Scan(&rec.TotalXP, &rec.League); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return ProgressRecord{}, ErrUserNotFound
		}
		return ProgressRecord{}, err
	}

	skills, err := NewPostgresUserSkillRepository(r.db).FindByUserID(ctx, userID)
	if err != nil {
		return ProgressRecord{}, err
	}
	rec.Skills = skills
	return rec, nil
}

func (r *PostgresProgressRepository) SaveAssessment(ctx context.Context, rec AssessmentRecord, totalXP int64, league string, validatedSkill *UserSkill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	n, err := tx.Exec(ctx,
		`UPDATE users SET total_xp = $2, league = $3, updated_at = now() WHERE id = $1`,
		rec.UserID, totalXP, league,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}

	if validatedSkill != nil {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_skills (user_id, skill_name, proficiency_level, is_validated)
			 VALUES ($1, $2, $3, TRUE)
			 ON CONFLICT (user_id, skill_name)
			 DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level, is_validated = TRUE`,
			rec.UserID, validatedSkill.SkillName, validatedSkill.ProficiencyLevel,
		); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO assessment_results (user_id, skill_name, score, passed, xp_earned)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.UserID, rec.SkillName, rec.Score, rec.Passed, rec.XPEarned,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
