package usecase

import (
	"context"
	"errors"
	"time"

	"skill-evolution/internal/domain/forecast"
	"skill-evolution/internal/domain/lexicon"
	"skill-evolution/internal/infrastructure/cache"
	"skill-evolution/internal/repository"
)

// ErrNoForecastData reports a skill with no recorded demand history.
var ErrNoForecastData = errors.New("no demand history for skill")

// Cache is the subset of the redis cache the usecases need. The concrete
// implementation bypasses silently when redis is down.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateLeaderboards(ctx context.Context) error
}

type ForecastUsecase interface {
	// Predict projects demand for a skill months ahead. Results are cached
	// because the underlying series changes at most monthly.
	Predict(ctx context.Context, skill string, months int) (forecast.Result, error)
}

type Forecaster struct {
	demand repository.DemandRepository
	cache  Cache
	ttl    time.Duration
}

func NewForecastUsecase(demand repository.DemandRepository, c Cache, ttl time.Duration) *Forecaster {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Forecaster{demand: demand, cache: c, ttl: ttl}
}

func (f *Forecaster) Predict(ctx context.Context, skill string, months int) (forecast.Result, error) {
	skill = lexicon.Normalize(skill)
	if skill == "" {
		return forecast.Result{}, ErrInvalidInput
	}
	if months <= 0 {
		months = forecast.DefaultHorizonMonths
	}

	key := cache.ForecastKey(skill, months)
	if f.cache != nil {
		var cached forecast.Result
		if ok, err := f.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	points, err := f.demand.HistoryBySkill(ctx, skill)
	if err != nil {
		return forecast.Result{}, ErrInternal
	}

	history := make([]forecast.Point, 0, len(points))
	for _, p := range points {
		history = append(history, forecast.Point{Date: p.RecordedOn, Frequency: p.Frequency})
	}

	result, err := forecast.Forecast(history, skill, months)
	if err != nil {
		if errors.Is(err, forecast.ErrNoHistory) {
			return forecast.Result{}, ErrNoForecastData
		}
		return forecast.Result{}, ErrInternal
	}

	if f.cache != nil {
		_ = f.cache.SetJSON(ctx, key, result, f.ttl)
	}
	return result, nil
}
