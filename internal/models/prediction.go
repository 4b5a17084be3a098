package models

// RiskFactors reports the unweighted, rounded sub-scores that went into a
// prediction. They are diagnostic values for display; they do not sum to
// the overall score, which is a weighted blend.
type RiskFactors struct {
	Weather   int `json:"weather"`
	DayOfWeek int `json:"day_of_week"`
	TimeOfDay int `json:"time_of_day"`
	Seasonal  int `json:"seasonal"`
	Baseline  int `json:"baseline"`
}

// RiskLevel is one of the four fixed tiers a score classifies into.
type RiskLevel struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// RiskResult is the output of the risk combiner: the blended score, its
// tier, the per-factor breakdown and a tier-appropriate tip.
type RiskResult struct {
	Overall        int         `json:"overall"`
	Factors        RiskFactors `json:"factors"`
	Level          RiskLevel   `json:"risk_level"`
	Recommendation string      `json:"recommendation"`
}

// PredictionResult is the full response for one prediction call. Weather is
// nil when the fetch failed; the score is still computed from the remaining
// factors.
type PredictionResult struct {
	Overall        int               `json:"overall"`
	Factors        RiskFactors       `json:"factors"`
	RiskLevel      RiskLevel         `json:"risk_level"`
	Recommendation string            `json:"recommendation"`
	Weather        *FormattedWeather `json:"weather"`
	Timestamp      string            `json:"timestamp"`
	Line           string            `json:"line"`
}
