package seeder

import (
	"context"

	"skill-evolution/internal/database"
)

// RoleDemandSeeder installs the demand snapshot each target role is compared
// against. Position preserves snapshot order so gap ranking ties stay stable.
type RoleDemandSeeder struct{}

func (RoleDemandSeeder) Name() string { return "role_demand" }

func (RoleDemandSeeder) Run(ctx context.Context, db database.DB) error {
	type row struct {
		Skill      string
		Importance int
	}

	snapshots := map[string][]row{
		"Software Engineer": {
			{"python", 90}, {"aws", 85}, {"docker", 80}, {"react", 75},
			{"machine learning", 70}, {"sql", 65}, {"html", 60},
		},
		"Data Engineer": {
			{"python", 95}, {"sql", 90}, {"spark", 80}, {"kafka", 75},
			{"aws", 70}, {"docker", 60},
		},
		"Frontend Developer": {
			{"javascript", 95}, {"react", 90}, {"typescript", 85},
			{"css", 80}, {"html", 75}, {"next.js", 65},
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for role, rows := range snapshots {
		for pos, r := range rows {
			_, err := tx.Exec(ctx, `
INSERT INTO role_demand (target_role, skill_name, importance, position)
VALUES ($1, $2, $3, $4)
ON CONFLICT (target_role, skill_name) DO NOTHING`,
				role, r.Skill, r.Importance, pos,
			)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}
