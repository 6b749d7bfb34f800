package repository

import (
	"context"
	"time"

	"skill-evolution/internal/database"
)

type DemandPoint struct {
	RecordedOn time.Time
	Frequency  int
}

type RoleDemandRow struct {
	SkillName  string
	Importance float64
}

type DemandRepository interface {
	// HistoryBySkill returns the chronological demand series for a skill.
	HistoryBySkill(ctx context.Context, skill string) ([]DemandPoint, error)
	// DemandForRole returns the demand snapshot for a target role in
	// snapshot order, so gap-ranking ties stay stable.
	DemandForRole(ctx context.Context, targetRole string) ([]RoleDemandRow, error)
}

type PostgresDemandRepository struct {
	db database.DB
}

func NewPostgresDemandRepository(db database.DB) *PostgresDemandRepository {
	return &PostgresDemandRepository{db: db}
}

func (r *PostgresDemandRepository) HistoryBySkill(ctx context.Context, skill string) ([]DemandPoint, error) {
	rows, err := r.db.Query(ctx,
		`SELECT recorded_on, frequency
		 FROM demand_history
		 WHERE skill_name = $1
		 ORDER BY recorded_on ASC`,
		skill,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DemandPoint, 0)
	for rows.Next() {
		var p DemandPoint
		if err := rows.Scan(&p.RecordedOn, &p.Frequency); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresDemandRepository) DemandForRole(ctx context.Context, targetRole string) ([]RoleDemandRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_name, importance
		 FROM role_demand
		 WHERE target_role = $1
		 ORDER BY position ASC`,
		targetRole,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoleDemandRow, 0)
	for rows.Next() {
		var d RoleDemandRow
		if err := rows.Scan(&d.SkillName, &d.Importance); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
