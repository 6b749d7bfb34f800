package repository

import (
	"context"

	"skill-evolution/internal/database"
	"skill-evolution/internal/domain/lexicon"

	"github.com/google/uuid"
)

type UserSkill struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SkillName        string
	ProficiencyLevel int
	IsValidated      bool
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	ReplaceForUser(ctx context.Context, userID uuid.UUID, skills []string) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, skill_name, proficiency_level, is_validated
		 FROM user_skills
		 WHERE user_id = $1
		 ORDER BY skill_name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillName, &us.ProficiencyLevel, &us.IsValidated); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceForUser swaps the user's declared skill set. Fresh declarations
// start at proficiency 1 and unvalidated; skills already on record keep
// their proficiency and validation state.
func (r *PostgresUserSkillRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, skills []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	normalized := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := lexicon.Normalize(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND NOT (skill_name = ANY($2))`,
		userID, normalized,
	); err != nil {
		return err
	}

	for _, name := range normalized {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_skills (user_id, skill_name, proficiency_level, is_validated)
			 VALUES ($1, $2, 1, FALSE)
			 ON CONFLICT (user_id, skill_name) DO NOTHING`,
			userID, name,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
