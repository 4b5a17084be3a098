package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"railrisk/internal/models"
)

type stubFetcher struct {
	snapshot *models.WeatherSnapshot
	err      error
}

func (s *stubFetcher) GetCurrentConditions(ctx context.Context) (*models.WeatherSnapshot, error) {
	return s.snapshot, s.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetPredictionFetchFailureDegrades(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	p := NewPredictor(fetcher, zap.NewNop())
	p.now = fixedClock(time.Date(2025, time.March, 4, 8, 0, 0, 0, time.UTC))
	p.location = time.UTC

	result := p.GetPrediction(context.Background(), "Ronkonkoma", "lirr")

	if result.Weather != nil {
		t.Fatalf("expected nil weather on fetch failure, got %+v", result.Weather)
	}
	if result.Factors.Weather != 30 {
		t.Fatalf("expected base weather factor 30, got %d", result.Factors.Weather)
	}
	// Hand-computed: round(30*.35 + 50*.20 + 52*.15 + 35*.15 + 45*.15) = 40
	if result.Overall != 40 {
		t.Fatalf("expected overall 40, got %d", result.Overall)
	}
	if result.RiskLevel.Label != "Low Risk" {
		t.Fatalf("expected Low Risk, got %q", result.RiskLevel.Label)
	}
	if result.Line != "Ronkonkoma" {
		t.Fatalf("line not stamped: %q", result.Line)
	}
}

func TestGetPredictionFormatsWeather(t *testing.T) {
	temp := 5.0
	wind := 18.4
	precip := 0.2
	code := 61
	hourly := json.RawMessage(`{"time":["2025-03-04T00:00"]}`)

	fetcher := &stubFetcher{snapshot: &models.WeatherSnapshot{
		Temperature:   &temp,
		WindSpeed:     &wind,
		Precipitation: &precip,
		WeatherCode:   &code,
		Hourly:        hourly,
	}}
	p := NewPredictor(fetcher, zap.NewNop())
	p.now = fixedClock(time.Date(2025, time.March, 4, 8, 0, 0, 0, time.UTC))
	p.location = time.UTC

	result := p.GetPrediction(context.Background(), "Babylon", "")

	if result.Weather == nil {
		t.Fatal("expected formatted weather")
	}
	// 5°C → 41°F
	if result.Weather.Temperature != "41°F" {
		t.Errorf("temperature = %q, want 41°F", result.Weather.Temperature)
	}
	if result.Weather.Description != "Slight rain" {
		t.Errorf("description = %q, want Slight rain", result.Weather.Description)
	}
	if result.Weather.Icon != "10d" {
		t.Errorf("icon = %q, want 10d", result.Weather.Icon)
	}
	if result.Weather.WindSpeed != "18 km/h" {
		t.Errorf("wind speed = %q, want 18 km/h", result.Weather.WindSpeed)
	}
	if result.Weather.Precipitation == nil || *result.Weather.Precipitation != 0.2 {
		t.Errorf("precipitation = %+v, want 0.2", result.Weather.Precipitation)
	}
	if string(result.Weather.Hourly) != string(hourly) {
		t.Errorf("hourly block modified: %s", result.Weather.Hourly)
	}
}

func TestGetPredictionMissingFieldsUsePlaceholders(t *testing.T) {
	fetcher := &stubFetcher{snapshot: &models.WeatherSnapshot{}}
	p := NewPredictor(fetcher, zap.NewNop())

	result := p.GetPrediction(context.Background(), "Hudson", "metro-north")

	if result.Weather == nil {
		t.Fatal("expected formatted weather for empty snapshot")
	}
	if result.Weather.Temperature != "--" {
		t.Errorf("temperature placeholder = %q, want --", result.Weather.Temperature)
	}
	if result.Weather.WindSpeed != "--" {
		t.Errorf("wind placeholder = %q, want --", result.Weather.WindSpeed)
	}
	if result.Weather.Description != "Unknown" {
		t.Errorf("description = %q, want Unknown", result.Weather.Description)
	}
}

func TestGetPredictionTimestampFormat(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("down")}
	p := NewPredictor(fetcher, zap.NewNop())

	result := p.GetPrediction(context.Background(), "Harlem", "metro-north")

	if _, err := time.Parse(time.RFC3339, result.Timestamp); err != nil {
		t.Fatalf("timestamp %q is not RFC 3339: %v", result.Timestamp, err)
	}
}

func TestGetPredictionOverallAlwaysInRange(t *testing.T) {
	huge := 1e12
	fetcher := &stubFetcher{snapshot: &models.WeatherSnapshot{
		Temperature: &huge, Precipitation: &huge, WindSpeed: &huge, Snowfall: &huge, Rain: &huge,
	}}
	p := NewPredictor(fetcher, zap.NewNop())

	result := p.GetPrediction(context.Background(), "Montauk", "lirr")

	if result.Overall < 0 || result.Overall > 100 {
		t.Fatalf("overall out of range: %d", result.Overall)
	}
}
