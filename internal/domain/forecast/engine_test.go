package forecast

import (
	"errors"
	"testing"
	"time"
)

func monthlySeries(start time.Time, freqs []int) []Point {
	pts := make([]Point, len(freqs))
	for i, f := range freqs {
		pts[i] = Point{Date: start.AddDate(0, 0, 30*i), Frequency: f}
	}
	return pts
}

func TestForecast_EmptyHistory(t *testing.T) {
	_, err := Forecast(nil, "python", 12)
	if !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
}

func TestForecast_RisingTrend(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	freqs := make([]int, 24)
	for i := range freqs {
		freqs[i] = 100 + i*5
	}

	res, err := Forecast(monthlySeries(start, freqs), "python", 12)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Skill != "python" {
		t.Fatalf("unexpected skill: %q", res.Skill)
	}
	if res.CurrentFrequency != 215 {
		t.Fatalf("expected current 215, got %d", res.CurrentFrequency)
	}
	if res.PredictedFrequency <= res.CurrentFrequency {
		t.Fatalf("upward series must project growth: %+v", res)
	}
	if res.Trend != TrendRising {
		t.Fatalf("expected rising, got %q", res.Trend)
	}
	if res.GrowthRatePct <= 5 {
		t.Fatalf("expected growth > 5%%, got %v", res.GrowthRatePct)
	}
}

func TestForecast_DecliningTrend(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	freqs := make([]int, 12)
	for i := range freqs {
		freqs[i] = 200 - i*10
	}

	res, err := Forecast(monthlySeries(start, freqs), "flash", 12)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Trend != TrendDeclining {
		t.Fatalf("expected declining, got %+v", res)
	}
}

func TestForecast_NeverNegative(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	// Steep decline crosses zero well inside the horizon.
	freqs := []int{100, 80, 60, 40, 20, 10}

	res, err := Forecast(monthlySeries(start, freqs), "cobol", 24)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.PredictedFrequency < 0 {
		t.Fatalf("projected frequency must be clamped at 0, got %d", res.PredictedFrequency)
	}
	if res.DemandScore < 0 || res.DemandScore > 100 {
		t.Fatalf("demand score out of bounds: %v", res.DemandScore)
	}
}

func TestForecast_ZeroVarianceDates(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	pts := []Point{
		{Date: day, Frequency: 10},
		{Date: day, Frequency: 20},
		{Date: day, Frequency: 30},
	}

	res, err := Forecast(pts, "go", 12)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Flat-line fallback: projection equals the series mean.
	if res.PredictedFrequency != 20 {
		t.Fatalf("expected flat projection at mean 20, got %d", res.PredictedFrequency)
	}
}

func TestForecast_ZeroCurrentFrequency(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pts := monthlySeries(start, []int{5, 3, 0})

	res, err := Forecast(pts, "svn", 12)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.GrowthRatePct != 0 {
		t.Fatalf("growth must be 0 when the last observation is 0, got %v", res.GrowthRatePct)
	}
}

func TestForecast_FlatSeriesIsStable(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pts := monthlySeries(start, []int{50, 50, 50, 50, 50, 50})

	res, err := Forecast(pts, "sql", 12)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Trend != TrendStable {
		t.Fatalf("expected stable, got %+v", res)
	}
	if res.PredictedFrequency != 50 {
		t.Fatalf("flat series must project flat, got %d", res.PredictedFrequency)
	}
	if res.DemandScore != 55.0 {
		t.Fatalf("expected score 50 + 0.1*50 = 55, got %v", res.DemandScore)
	}
}

func TestForecast_DefaultHorizon(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pts := monthlySeries(start, []int{10, 20, 30})

	res, err := Forecast(pts, "go", 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.HorizonMonths != DefaultHorizonMonths {
		t.Fatalf("expected default horizon %d, got %d", DefaultHorizonMonths, res.HorizonMonths)
	}
}
