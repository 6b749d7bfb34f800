package usecase

import (
	"context"
	"errors"
	"time"

	"skill-evolution/internal/domain/gamify"
	"skill-evolution/internal/infrastructure/cache"
	"skill-evolution/internal/repository"
)

type LeaderboardUsecase interface {
	// Top returns the ranked, anonymized leaderboard. limit <= 0 uses the
	// default size; a negative limit is rejected.
	Top(ctx context.Context, limit int) ([]gamify.LeaderboardEntry, error)
}

type Leaderboard struct {
	repo  repository.LeaderboardRepository
	cache Cache
	ttl   time.Duration
}

func NewLeaderboardUsecase(repo repository.LeaderboardRepository, c Cache, ttl time.Duration) *Leaderboard {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Leaderboard{repo: repo, cache: c, ttl: ttl}
}

func (l *Leaderboard) Top(ctx context.Context, limit int) ([]gamify.LeaderboardEntry, error) {
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = gamify.DefaultLeaderboardLimit
	}

	key := cache.LeaderboardKey(limit)
	if l.cache != nil {
		var cached []gamify.LeaderboardEntry
		if ok, err := l.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rows, err := l.repo.TopByXP(ctx, limit)
	if err != nil {
		return nil, ErrInternal
	}

	gr := make([]gamify.Row, 0, len(rows))
	for _, r := range rows {
		gr = append(gr, gamify.Row{UserHandle: r.UserHandle, TotalXP: r.TotalXP})
	}

	entries, err := gamify.BuildLeaderboard(gr, limit)
	if err != nil {
		if errors.Is(err, gamify.ErrInvalidLimit) {
			return nil, ErrInvalidInput
		}
		return nil, ErrInternal
	}

	if l.cache != nil {
		_ = l.cache.SetJSON(ctx, key, entries, l.ttl)
	}
	return entries, nil
}
