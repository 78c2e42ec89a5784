package gen

import (
	"scenforge/internal/content"
	"scenforge/internal/rng"
	"scenforge/internal/scenario"
)

// BuildContext assembles the interpolation context for one generation run
// from a chosen location and fresh draws from the name pools. Rounds tracks
// the starting doom budget so survival templates read sensibly.
func BuildContext(src rng.Source, pools *content.Pools, loc content.LocationOption, baseDoom int) scenario.TemplateContext {
	item := rng.Pick(src, pools.Collectibles)
	return scenario.TemplateContext{
		Location: loc.Name,
		Target:   rng.Pick(src, pools.Targets),
		Victim:   rng.Pick(src, pools.Victims),
		Mystery:  rng.Pick(src, pools.Mysteries),
		Item:     item,
		Items:    item + " fragments",
		Rounds:   baseDoom,
	}
}
