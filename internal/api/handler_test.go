package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"railrisk/internal/models"
	"railrisk/internal/prediction"
)

type failingFetcher struct{}

func (failingFetcher) GetCurrentConditions(ctx context.Context) (*models.WeatherSnapshot, error) {
	return nil, errors.New("weather service unavailable")
}

func newTestApp() *fiber.App {
	app := fiber.New()
	predictor := prediction.NewPredictor(failingFetcher{}, zap.NewNop())
	handler := NewHandler(predictor, zap.NewNop())
	SetupRoutes(app, handler, "")
	return app
}

func TestPredictionRequiresLine(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prediction", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestPredictionRejectsUnknownLineType(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prediction?line=Ronkonkoma&type=tram", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestPredictionDegradesOnFetchFailure(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prediction?line=Ronkonkoma&type=lirr", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var result models.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Weather != nil {
		t.Errorf("expected null weather, got %+v", result.Weather)
	}
	if result.Overall < 0 || result.Overall > 100 {
		t.Errorf("overall out of range: %d", result.Overall)
	}
	if result.Factors.Baseline != 45 {
		t.Errorf("Ronkonkoma baseline = %d, want 45", result.Factors.Baseline)
	}
}

func TestPredictionUnknownLineSucceeds(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prediction?line=Nowhere+Special", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var result models.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Factors.Baseline != 40 {
		t.Errorf("unknown line baseline = %d, want 40", result.Factors.Baseline)
	}
}

func TestGetLines(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lines", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		Lines map[string]int `json:"lines"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Lines["Ronkonkoma"] != 45 {
		t.Errorf("lines table missing Ronkonkoma=45: %+v", body.Lines)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}
