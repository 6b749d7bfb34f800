package repository

import (
	"context"

	"skill-evolution/internal/database"

	"github.com/google/uuid"
)

type JobPosting struct {
	ID             uuid.UUID
	Title          string
	Company        string
	RequiredSkills []string
}

type JobRepository interface {
	ListPostings(ctx context.Context) ([]JobPosting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListPostings(ctx context.Context) ([]JobPosting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, j.company, COALESCE(array_agg(rs.skill_name ORDER BY rs.skill_name) FILTER (WHERE rs.skill_name IS NOT NULL), '{}')
		 FROM jobs j
		 LEFT JOIN job_required_skills rs ON rs.job_id = j.id
		 GROUP BY j.id, j.title, j.company
		 ORDER BY j.created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobPosting, 0)
	for rows.Next() {
		var p JobPosting
		if err := rows.Scan(&p.ID, &p.Title, &p.Company, &p.RequiredSkills); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
