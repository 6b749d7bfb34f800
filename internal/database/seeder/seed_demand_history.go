package seeder

import (
	"context"
	"time"

	"skill-evolution/internal/database"
)

// DemandHistorySeeder installs 24 months of demand observations per tracked
// skill. Series are deterministic linear ramps: forecasts over seeded data
// must be reproducible, so there is no random jitter.
type DemandHistorySeeder struct{}

func (DemandHistorySeeder) Name() string { return "demand_history" }

func (DemandHistorySeeder) Run(ctx context.Context, db database.DB) error {
	series := []struct {
		Skill string
		Base  int
		Slope int
	}{
		{"python", 120, 5},
		{"go", 60, 4},
		{"react", 100, 3},
		{"docker", 90, 4},
		{"aws", 110, 3},
		{"kubernetes", 50, 5},
		{"machine learning", 70, 6},
		{"sql", 130, 1},
		{"html", 80, 0},
		{"php", 90, -2},
	}

	const months = 24
	start := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, s := range series {
		for i := 0; i < months; i++ {
			freq := s.Base + s.Slope*i
			if freq < 0 {
				freq = 0
			}
			_, err := tx.Exec(ctx, `
INSERT INTO demand_history (skill_name, recorded_on, frequency)
VALUES ($1, $2, $3)
ON CONFLICT (skill_name, recorded_on) DO NOTHING`,
				s.Skill, start.AddDate(0, i, 0), freq,
			)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}
