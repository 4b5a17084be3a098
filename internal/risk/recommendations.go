package risk

import (
	"railrisk/internal/models"
)

// tierTips holds the fixed recommendation strings per tier. Selection is
// uniform over the four entries.
var tierTips = map[string][]string{
	levelHigh.Label: {
		"Expect significant delays. Check departures before leaving and consider working remotely if you can.",
		"Major disruptions likely. Allow at least 30 extra minutes and have a backup route ready.",
		"Service changes are probable today. Confirm your train is running before heading to the station.",
		"High disruption risk. If you can shift your trip outside peak hours, do it today.",
	},
	levelModerate.Label: {
		"Some delays possible. Build an extra 10-15 minutes into your commute.",
		"Keep an eye on service alerts; scattered delays are likely today.",
		"Consider taking an earlier train than usual to absorb minor delays.",
		"Conditions may slow service. Check departures before you leave.",
	},
	levelLow.Label: {
		"Minor delays possible, but service should run close to schedule.",
		"A quick glance at the schedule before leaving should be enough today.",
		"Mostly smooth running expected; normal commute timing is fine.",
		"Low chance of disruption. No special planning needed.",
	},
	levelMinimal.Label: {
		"Smooth sailing expected. Trains should run on schedule.",
		"Great day to ride; no disruptions anticipated.",
		"Service should be reliable today. Travel as usual.",
		"All clear. No weather or schedule concerns on this line.",
	},
}

func (c *Combiner) recommend(level models.RiskLevel) string {
	tips := tierTips[level.Label]
	return tips[c.pick(len(tips))]
}
