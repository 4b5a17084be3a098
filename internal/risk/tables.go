package risk

// Line categories. The category only selects the seasonal multiplier
// variant; everything else treats lines uniformly.
const (
	LineTypeLIRR       = "lirr"
	LineTypeMetroNorth = "metro-north"
)

// DefaultBaseline is used for any line not in the baseline table. Unknown
// lines never fail a prediction.
const DefaultBaseline = 40

// lineBaselines maps a line name to its static risk score, chosen from
// historical on-time performance. Read-only after init; callers get copies
// via LineBaselines.
var lineBaselines = map[string]int{
	// LIRR branches
	"Babylon":         48,
	"Ronkonkoma":      45,
	"Port Washington": 35,
	"Huntington":      47,
	"Hempstead":       38,
	"Far Rockaway":    42,
	"Long Beach":      44,
	"West Hempstead":  36,
	"Oyster Bay":      52,
	"Montauk":         55,
	"Port Jefferson":  50,

	// Metro-North lines
	"Hudson":    40,
	"Harlem":    38,
	"New Haven": 50,
}

// dayMultipliers indexes by time.Weekday (0 = Sunday). Weekends run lighter
// schedules with fewer conflicts; Friday evenings are the worst.
var dayMultipliers = [7]float64{0.6, 1.1, 1.0, 1.0, 1.05, 1.15, 0.7}

// BaselineFor returns the static baseline score for a line, falling back to
// DefaultBaseline for unknown names.
func BaselineFor(line string) int {
	if baseline, ok := lineBaselines[line]; ok {
		return baseline
	}
	return DefaultBaseline
}

// LineBaselines returns a copy of the baseline table for display purposes.
func LineBaselines() map[string]int {
	lines := make(map[string]int, len(lineBaselines))
	for name, baseline := range lineBaselines {
		lines[name] = baseline
	}
	return lines
}
