package repository

import (
	"context"

	"skill-evolution/internal/database"
)

type LeaderboardRow struct {
	UserHandle int64
	TotalXP    int64
}

type LeaderboardRepository interface {
	// TopByXP returns up to limit users ordered by XP descending; ties keep
	// account creation order. Only the opaque handle leaves the store.
	TopByXP(ctx context.Context, limit int) ([]LeaderboardRow, error)
}

type PostgresLeaderboardRepository struct {
	db database.DB
}

func NewPostgresLeaderboardRepository(db database.DB) *PostgresLeaderboardRepository {
	return &PostgresLeaderboardRepository{db: db}
}

func (r *PostgresLeaderboardRepository) TopByXP(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_handle, total_xp
		 FROM users
		 ORDER BY total_xp DESC, created_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardRow, 0)
	for rows.Next() {
		var l LeaderboardRow
		if err := rows.Scan(&l.UserHandle, &l.TotalXP); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
