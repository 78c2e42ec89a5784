package gen

import (
	"fmt"

	"scenforge/internal/content"
	"scenforge/internal/rng"
	"scenforge/internal/scenario"
)

// GenerateObjectives expands a mission's ordered objective templates into
// concrete objectives. Template order is preserved; reveal chains resolve to
// the id at the referenced earlier index; nothing starts completed.
func GenerateObjectives(src rng.Source, m content.MissionType, ctx scenario.TemplateContext) []scenario.Objective {
	out := make([]scenario.Objective, 0, len(m.ObjectiveTemplates))
	for i, tpl := range m.ObjectiveTemplates {
		obj := objectiveFromTemplate(src, tpl, i, ctx)
		if tpl.RevealedByIndex != nil {
			obj.RevealedBy = out[*tpl.RevealedByIndex].ID
		}
		out = append(out, obj)
	}
	return out
}

// GenerateBonusObjectives samples up to requested objectives from the shared
// bonus pool via a uniform shuffle. Every result is optional regardless of
// the template flag. startIndex keeps ids unique after the main objectives.
func GenerateBonusObjectives(src rng.Source, pools *content.Pools, requested, startIndex int, ctx scenario.TemplateContext) []scenario.Objective {
	if requested > len(pools.Bonus) {
		requested = len(pools.Bonus)
	}
	if requested <= 0 {
		return nil
	}
	shuffled := rng.Shuffle(src, pools.Bonus)
	out := make([]scenario.Objective, 0, requested)
	for i := 0; i < requested; i++ {
		obj := objectiveFromTemplate(src, shuffled[i], startIndex+i, ctx)
		obj.Optional = true
		out = append(out, obj)
	}
	return out
}

func objectiveFromTemplate(src rng.Source, tpl content.ObjectiveTemplate, index int, ctx scenario.TemplateContext) scenario.Objective {
	obj := scenario.Objective{
		ID:       fmt.Sprintf("obj_%s_%d", tpl.ID, index),
		Type:     tpl.Type,
		Optional: tpl.Optional,
		Hidden:   tpl.Hidden,
		Rewards:  tpl.Rewards,
	}
	if tpl.AmountMax > 0 {
		obj.TargetAmount = src.Between(tpl.AmountMin, tpl.AmountMax)
	}
	if len(tpl.TargetIDOptions) > 0 {
		obj.TargetID = rng.Pick(src, tpl.TargetIDOptions)
	}
	octx := ctx.WithAmount(obj.TargetAmount)
	if tpl.Type == scenario.ObjectiveSurvive && obj.TargetAmount > 0 {
		octx.Rounds = obj.TargetAmount
	}
	obj.Description = scenario.Interpolate(tpl.DescriptionTemplate, octx)
	obj.ShortDescription = scenario.Interpolate(tpl.ShortTemplate, octx)
	return obj
}
