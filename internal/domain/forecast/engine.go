package forecast

import (
	"errors"
	"math"
	"time"
)

// Point is one historical demand observation: how often a skill appeared in
// postings on a given date. Points are supplied in chronological order.
type Point struct {
	Date      time.Time
	Frequency int
}

// Result is a demand projection for one skill.
type Result struct {
	Skill              string  `json:"skill"`
	CurrentFrequency   int     `json:"current_frequency"`
	PredictedFrequency int     `json:"predicted_frequency"`
	GrowthRatePct      float64 `json:"growth_rate_pct"`
	DemandScore        float64 `json:"demand_score"`
	Trend              string  `json:"trend"`
	HorizonMonths      int     `json:"horizon_months"`
}

const (
	TrendRising    = "rising"
	TrendStable    = "stable"
	TrendDeclining = "declining"

	// DefaultHorizonMonths is used when the caller passes a non-positive
	// horizon.
	DefaultHorizonMonths = 12

	// daysPerMonth approximates one month when stepping projections forward.
	daysPerMonth = 30.44
)

// ErrNoHistory reports an empty historical series; callers degrade gracefully
// instead of dividing by zero.
var ErrNoHistory = errors.New("no historical data provided")

// Forecast fits an ordinary least-squares trend line to the historical series
// and projects demand months ahead. Projected frequencies are clamped at zero
// since demand cannot be negative. The computation is fully deterministic.
func Forecast(history []Point, skill string, months int) (Result, error) {
	if len(history) == 0 {
		return Result{}, ErrNoHistory
	}
	if months <= 0 {
		months = DefaultHorizonMonths
	}

	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, p := range history {
		xs[i] = dayOrdinal(p.Date)
		ys[i] = float64(p.Frequency)
	}

	m, c := linearRegression(xs, ys)

	lastX := xs[len(xs)-1]
	projected := 0.0
	for i := 1; i <= months; i++ {
		x := lastX + math.Trunc(daysPerMonth*float64(i))
		projected = math.Max(0, m*x+c)
	}

	current := ys[len(ys)-1]
	growth := 0.0
	if current > 0 {
		growth = (projected - current) / current * 100
	}

	score := 50.0 + growth*0.5 + current*0.1
	score = math.Min(100, math.Max(0, score))

	return Result{
		Skill:              skill,
		CurrentFrequency:   int(current),
		PredictedFrequency: int(projected),
		GrowthRatePct:      roundTwoDecimals(growth),
		DemandScore:        roundTwoDecimals(score),
		Trend:              classifyTrend(growth),
		HorizonMonths:      months,
	}, nil
}

// linearRegression computes y = m*x + c. A zero-variance series falls back to
// a flat line at the mean, never a division fault.
func linearRegression(xs, ys []float64) (m, c float64) {
	n := float64(len(xs))
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}

	m = (n*sumXY - sumX*sumY) / denom
	c = (sumY - m*sumX) / n
	return m, c
}

func classifyTrend(growth float64) string {
	switch {
	case growth > 5:
		return TrendRising
	case growth < -5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// dayOrdinal maps a date to whole days since the Unix epoch, the fixed x-axis
// for the regression.
func dayOrdinal(t time.Time) float64 {
	return math.Floor(float64(t.Unix()) / 86400)
}

func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
