package prediction

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"railrisk/internal/models"
	"railrisk/internal/risk"
	"railrisk/pkg/client"
)

// WeatherFetcher is the outbound dependency of the predictor.
type WeatherFetcher interface {
	GetCurrentConditions(ctx context.Context) (*models.WeatherSnapshot, error)
}

// Predictor is the public entry point: it fetches the weather snapshot,
// runs the risk combiner and formats the result. It never fails; a fetch
// error degrades to a prediction without weather.
type Predictor struct {
	fetcher  WeatherFetcher
	combiner *risk.Combiner
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time
}

func NewPredictor(fetcher WeatherFetcher, logger *zap.Logger) *Predictor {
	// Risk heuristics are calendar-based in the rail network's own zone.
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		logger.Warn("Failed to load timezone, using local time", zap.Error(err))
		location = time.Local
	}

	return &Predictor{
		fetcher:  fetcher,
		combiner: risk.NewCombiner(nil),
		logger:   logger,
		location: location,
		now:      time.Now,
	}
}

// GetPrediction computes the disruption risk for a line. An empty lineType
// defaults to the LIRR category.
func (p *Predictor) GetPrediction(ctx context.Context, line, lineType string) *models.PredictionResult {
	if lineType == "" {
		lineType = risk.LineTypeLIRR
	}

	snapshot, err := p.fetcher.GetCurrentConditions(ctx)
	if err != nil {
		p.logger.Warn("Weather fetch failed, predicting without weather",
			zap.String("line", line),
			zap.Error(err))
		snapshot = nil
	}

	at := p.now().In(p.location)
	result := p.combiner.Calculate(line, snapshot, lineType, at)

	p.logger.Info("Prediction computed",
		zap.String("line", line),
		zap.String("line_type", lineType),
		zap.Int("overall", result.Overall),
		zap.String("risk_level", result.Level.Label),
		zap.Bool("weather_available", snapshot != nil))

	return &models.PredictionResult{
		Overall:        result.Overall,
		Factors:        result.Factors,
		RiskLevel:      result.Level,
		Recommendation: result.Recommendation,
		Weather:        formatWeather(snapshot),
		Timestamp:      at.Format(time.RFC3339),
		Line:           line,
	}
}

// formatWeather renders a snapshot for display. Temperature converts from
// Celsius to rounded Fahrenheit, wind speed rounds with its unit label,
// precipitation passes through raw.
func formatWeather(w *models.WeatherSnapshot) *models.FormattedWeather {
	if w == nil {
		return nil
	}

	temperature := "--"
	if w.Temperature != nil {
		temperature = fmt.Sprintf("%d°F", int(math.Round(*w.Temperature*9/5+32)))
	}

	description := "Unknown"
	icon := ""
	if w.WeatherCode != nil {
		description = client.WeatherCodeDescription(*w.WeatherCode)
		icon = client.WeatherCodeIcon(*w.WeatherCode)
	}

	windSpeed := "--"
	if w.WindSpeed != nil {
		windSpeed = fmt.Sprintf("%d km/h", int(math.Round(*w.WindSpeed)))
	}

	return &models.FormattedWeather{
		Temperature:   temperature,
		Description:   description,
		Icon:          icon,
		WindSpeed:     windSpeed,
		Precipitation: w.Precipitation,
		Hourly:        w.Hourly,
	}
}
