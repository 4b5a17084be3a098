package risk

import (
	"math"
	"math/rand"
	"time"

	"railrisk/internal/models"
)

// Factor weights. They sum to 1.0; keep that invariant when reweighting.
const (
	weightWeather   = 0.35
	weightDayOfWeek = 0.20
	weightTimeOfDay = 0.15
	weightSeasonal  = 0.15
	weightBaseline  = 0.15
)

// The four risk tiers, highest first.
var (
	levelHigh     = models.RiskLevel{Label: "High Risk", Color: "#ef4444", Emoji: "🔴"}
	levelModerate = models.RiskLevel{Label: "Moderate Risk", Color: "#f97316", Emoji: "🟠"}
	levelLow      = models.RiskLevel{Label: "Low Risk", Color: "#eab308", Emoji: "🟡"}
	levelMinimal  = models.RiskLevel{Label: "Minimal Risk", Color: "#22c55e", Emoji: "🟢"}
)

// GetRiskLevel classifies an overall score into its tier. Boundaries are
// inclusive at 70, 50 and 35.
func GetRiskLevel(overall int) models.RiskLevel {
	switch {
	case overall >= 70:
		return levelHigh
	case overall >= 50:
		return levelModerate
	case overall >= 35:
		return levelLow
	default:
		return levelMinimal
	}
}

// Combiner blends the five risk factors into an overall score and picks a
// recommendation. The index picker is injectable so tests can make the
// recommendation choice deterministic.
type Combiner struct {
	pick func(n int) int
}

// NewCombiner returns a combiner using the given index picker, or math/rand
// when pick is nil.
func NewCombiner(pick func(n int) int) *Combiner {
	if pick == nil {
		pick = rand.Intn
	}
	return &Combiner{pick: pick}
}

// Calculate computes the disruption risk for a line at the given instant.
// It is pure given its inputs: the evaluation instant is passed in rather
// than read from the clock, and a nil snapshot degrades to the base weather
// score instead of failing.
func (c *Combiner) Calculate(line string, w *models.WeatherSnapshot, lineType string, at time.Time) models.RiskResult {
	if lineType == "" {
		lineType = LineTypeLIRR
	}

	weather := float64(WeatherRisk(w))
	day := DayRisk(at)
	timeOfDay := TimeOfDayRisk(at)
	seasonal := SeasonalRisk(at, lineType)
	baseline := float64(BaselineFor(line))

	overall := int(math.Round(
		weather*weightWeather +
			day*weightDayOfWeek +
			timeOfDay*weightTimeOfDay +
			seasonal*weightSeasonal +
			baseline*weightBaseline))
	if overall > 100 {
		overall = 100
	}
	if overall < 0 {
		overall = 0
	}

	level := GetRiskLevel(overall)

	return models.RiskResult{
		Overall: overall,
		Factors: models.RiskFactors{
			Weather:   int(math.Round(weather)),
			DayOfWeek: int(math.Round(day)),
			TimeOfDay: int(math.Round(timeOfDay)),
			Seasonal:  int(math.Round(seasonal)),
			Baseline:  int(baseline),
		},
		Level:          level,
		Recommendation: c.recommend(level),
	}
}
