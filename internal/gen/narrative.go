package gen

import (
	"fmt"

	"scenforge/internal/content"
	"scenforge/internal/rng"
	"scenforge/internal/scenario"
)

// GenerateTitle composes a display title: a template keyed by mission id,
// falling back to the victory-type pool, then to the generic pool.
func GenerateTitle(src rng.Source, pools *content.Pools, m content.MissionType, ctx scenario.TemplateContext) string {
	pool := pools.TitlesByMission[m.ID]
	if len(pool) == 0 {
		pool = pools.TitlesByVictory[m.VictoryType]
	}
	if len(pool) == 0 {
		pool = pools.TitlesGeneric
	}
	return scenario.Interpolate(rng.Pick(src, pool), ctx)
}

// GenerateBriefing concatenates an independently sampled opening, a
// victory-type-specific middle, and a difficulty-specific closing, then a
// fixed Location/Objective footer. The three paragraphs are sampled without
// any tonal correlation.
func GenerateBriefing(src rng.Source, pools *content.Pools, m content.MissionType, difficulty scenario.Difficulty, ctx scenario.TemplateContext, goal string) string {
	opening := rng.Pick(src, pools.BriefingOpenings)
	middle := scenario.Interpolate(rng.Pick(src, pools.BriefingMiddles[m.VictoryType]), ctx)
	closing := rng.Pick(src, pools.BriefingClosings[difficulty])
	return fmt.Sprintf("%s\n\n%s\n\n%s\n\nLocation: %s\nObjective: %s",
		opening, middle, closing, ctx.Location, goal)
}
