package seeder

import (
	"context"

	"skill-evolution/internal/database"
)

// JobsSeeder installs the fixed posting snapshot used by job matching. There
// is no live job-board integration; this snapshot is the market.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	postings := []struct {
		Title    string
		Company  string
		Required []string
	}{
		{"Backend Engineer", "CloudSync", []string{"python", "django", "postgresql", "redis"}},
		{"Cloud Architect", "SkyNet", []string{"aws", "docker", "kubernetes", "terraform", "python"}},
		{"Data Scientist", "DataCorp", []string{"python", "pandas", "machine learning", "tensorflow"}},
		{"Frontend Developer", "PixelWorks", []string{"javascript", "react", "typescript", "css"}},
		{"Platform Engineer", "ShipFast", []string{"go", "kubernetes", "docker", "grpc"}},
		{"Fullstack Developer", "Brightline", []string{"javascript", "node.js", "react", "sql"}},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range postings {
		// Title+company keys idempotency; reruns must not duplicate postings.
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM jobs WHERE title = $1 AND company = $2)`,
			p.Title, p.Company,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		var jobID string
		if err := tx.QueryRow(ctx,
			`INSERT INTO jobs (title, company) VALUES ($1, $2) RETURNING id`,
			p.Title, p.Company,
		).Scan(&jobID); err != nil {
			return err
		}

		for _, skill := range p.Required {
			_, err := tx.Exec(ctx, `
INSERT INTO job_required_skills (job_id, skill_name)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`,
				jobID, skill,
			)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}
