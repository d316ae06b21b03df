// Package classify maps event subjects to time-report categories by
// ordered keyword matching.
package classify

import (
	"strings"

	"slacktime/internal/core"
)

type rule struct {
	category core.Category
	keywords []string
}

// rules are tested in order; the first category with a matching keyword
// wins. A slice, not a map, so the tie-break is reproducible.
var rules = []rule{
	{core.CategoryCeremony, []string{
		"ceremonia", "refinamiento", "refi", "review", "daily",
		"refi-planning", "planning", "retro", "retrospectiva",
		"pre-review", "def-arquitectura", "escenarios de calidad",
	}},
	{core.CategoryRoute, []string{"ruta"}},
	{core.CategorySeeker, []string{"seeker"}},
	{core.CategoryTransfer, []string{"transferencia"}},
	{core.CategoryCareerPlan, []string{"plan carrera"}},
}

// Subject classifies an event subject. Empty subjects and subjects with
// no matching keyword land in the meeting bucket.
func Subject(subject string) core.Category {
	if subject == "" {
		return core.CategoryMeeting
	}
	lower := strings.ToLower(subject)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lower, keyword) {
				return r.category
			}
		}
	}
	return core.CategoryMeeting
}
