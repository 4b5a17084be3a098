package risk

import (
	"time"

	"railrisk/internal/models"
)

// weatherBase is the weather risk when no snapshot is available. All
// additive terms are non-negative, so this is also the floor.
const weatherBase = 30

// WeatherRisk scores a snapshot on [30,100]. Within each dimension the
// highest matching threshold wins; dimensions are additive.
//
// The temperature thresholds (20/32/85/95) are carried over verbatim from
// the original scoring tables even though the snapshot field is Celsius.
// See DESIGN.md for the unit discussion.
func WeatherRisk(w *models.WeatherSnapshot) int {
	risk := weatherBase
	if w == nil {
		return risk
	}

	if w.Temperature != nil {
		switch t := *w.Temperature; {
		case t < 20:
			risk += 25
		case t < 32:
			risk += 15
		case t > 95:
			risk += 20
		case t > 85:
			risk += 10
		}
	}

	if w.Precipitation != nil {
		switch p := *w.Precipitation; {
		case p > 0.5:
			risk += 30
		case p > 0.1:
			risk += 15
		case p > 0:
			risk += 8
		}
	}

	if w.WindSpeed != nil {
		switch s := *w.WindSpeed; {
		case s > 40:
			risk += 25
		case s > 25:
			risk += 12
		case s > 15:
			risk += 5
		}
	}

	if w.Snowfall != nil {
		switch s := *w.Snowfall; {
		case s > 4:
			risk += 40
		case s > 1:
			risk += 25
		case s > 0:
			risk += 15
		}
	}

	if w.Rain != nil {
		switch r := *w.Rain; {
		case r > 0.5:
			risk += 20
		case r > 0.1:
			risk += 10
		}
	}

	if risk > 100 {
		risk = 100
	}
	return risk
}

// DayRisk scores the weekday of the evaluation instant.
func DayRisk(at time.Time) float64 {
	multiplier := 1.0
	if wd := int(at.Weekday()); wd >= 0 && wd < len(dayMultipliers) {
		multiplier = dayMultipliers[wd]
	}
	return multiplier * 50
}

// TimeOfDayRisk scores the hour of the evaluation instant. Rush hours carry
// the heaviest multipliers, the evening peak slightly above the morning one.
func TimeOfDayRisk(at time.Time) float64 {
	multiplier := 1.0
	switch h := at.Hour(); {
	case h >= 7 && h <= 9:
		multiplier = 1.3
	case h >= 17 && h <= 19:
		multiplier = 1.35
	case h >= 10 && h <= 16:
		multiplier = 0.9
	case h >= 20 || h <= 5:
		multiplier = 0.7
	}
	return multiplier * 40
}

// SeasonalRisk scores the month of the evaluation instant. Leaf season hits
// Metro-North harder than the LIRR; winter and the summer heat season raise
// risk for everyone.
func SeasonalRisk(at time.Time, lineType string) float64 {
	multiplier := 1.0
	switch at.Month() {
	case time.October, time.November:
		if lineType == LineTypeMetroNorth {
			multiplier = 1.3
		} else {
			multiplier = 1.1
		}
	case time.December, time.January, time.February:
		multiplier = 1.25
	case time.June, time.July, time.August:
		multiplier = 1.1
	}
	return multiplier * 35
}
