package models

import (
	"encoding/json"
)

// WeatherSnapshot is the normalized current-conditions reading mapped from
// the Open-Meteo response. Every field is optional; a missing field simply
// does not contribute to the weather risk. The snapshot is immutable once
// fetched and lives for a single prediction call.
type WeatherSnapshot struct {
	Temperature   *float64 `json:"temperature,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"`
	Rain          *float64 `json:"rain,omitempty"`
	Snowfall      *float64 `json:"snowfall,omitempty"`
	WindSpeed     *float64 `json:"wind_speed,omitempty"`
	WeatherCode   *int     `json:"weather_code,omitempty"`

	// Hourly carries the provider's hourly forecast block through to the
	// caller unmodified.
	Hourly json.RawMessage `json:"hourly,omitempty"`
}

// FormattedWeather is the display-ready rendering of a snapshot: Fahrenheit
// temperature, WMO code mapped to text and icon, rounded wind speed.
type FormattedWeather struct {
	Temperature   string          `json:"temperature"`
	Description   string          `json:"description"`
	Icon          string          `json:"icon"`
	WindSpeed     string          `json:"wind_speed"`
	Precipitation *float64        `json:"precipitation,omitempty"`
	Hourly        json.RawMessage `json:"hourly,omitempty"`
}
