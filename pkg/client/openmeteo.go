package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"railrisk/internal/models"
)

// The service predicts for a single fixed point: Manhattan, where both rail
// networks terminate. Conditions there stand in for the whole region.
const (
	latitude  = "40.7128"
	longitude = "-74.0060"
	timezone  = "America/New_York"

	currentFields = "temperature_2m,precipitation,rain,snowfall,wind_speed_10m,weather_code"
	hourlyFields  = "temperature_2m,precipitation_probability,precipitation,rain,snowfall,wind_speed_10m"
)

type OpenMeteoClient struct {
	*BaseClient
	baseURL string
}

type openMeteoResponse struct {
	Current struct {
		Time          string   `json:"time"`
		Temperature2M *float64 `json:"temperature_2m"`
		Precipitation *float64 `json:"precipitation"`
		Rain          *float64 `json:"rain"`
		Snowfall      *float64 `json:"snowfall"`
		WindSpeed10M  *float64 `json:"wind_speed_10m"`
		WeatherCode   *int     `json:"weather_code"`
	} `json:"current"`
	Hourly json.RawMessage `json:"hourly"`
}

func NewOpenMeteoClient(baseURL string, config ClientConfig, logger *zap.Logger) *OpenMeteoClient {
	baseClient := NewBaseClient("openmeteo", config, logger)
	return &OpenMeteoClient{
		BaseClient: baseClient,
		baseURL:    baseURL,
	}
}

// GetCurrentConditions fetches current conditions plus the hourly block for
// the local day and maps them to the internal snapshot shape. The hourly
// block is attached raw, unmodified.
func (c *OpenMeteoClient) GetCurrentConditions(ctx context.Context) (*models.WeatherSnapshot, error) {
	values := url.Values{}
	values.Set("latitude", latitude)
	values.Set("longitude", longitude)
	values.Set("current", currentFields)
	values.Set("hourly", hourlyFields)
	values.Set("forecast_days", "1")
	values.Set("timezone", timezone)

	requestURL := fmt.Sprintf("%s/forecast?%s", c.baseURL, values.Encode())

	data, err := c.Get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current conditions: %w", err)
	}

	var response openMeteoResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	snapshot := &models.WeatherSnapshot{
		Temperature:   response.Current.Temperature2M,
		Precipitation: response.Current.Precipitation,
		Rain:          response.Current.Rain,
		Snowfall:      response.Current.Snowfall,
		WindSpeed:     response.Current.WindSpeed10M,
		WeatherCode:   response.Current.WeatherCode,
		Hourly:        response.Hourly,
	}

	return snapshot, nil
}

// WMO Weather interpretation codes
var weatherCodes = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// WeatherCodeDescription maps a WMO code to its textual description.
func WeatherCodeDescription(code int) string {
	if desc, ok := weatherCodes[code]; ok {
		return desc
	}
	return "Unknown"
}

// WeatherCodeIcon maps a WMO code to an icon name.
func WeatherCodeIcon(code int) string {
	switch {
	case code == 0:
		return "01d"
	case code <= 3:
		return "02d"
	case code <= 48:
		return "50d"
	case code <= 67:
		return "10d"
	case code <= 77:
		return "13d"
	case code <= 82:
		return "09d"
	case code <= 86:
		return "13d"
	default:
		return "11d"
	}
}
