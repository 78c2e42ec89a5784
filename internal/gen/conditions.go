package gen

import (
	"fmt"

	"scenforge/internal/content"
	"scenforge/internal/scenario"
)

// BuildVictoryConditions clones the mission's victory condition template and
// binds it to the ids of every non-optional generated objective, bonus
// objectives included (they are always optional, so they never appear).
func BuildVictoryConditions(m content.MissionType, objectives []scenario.Objective, ctx scenario.TemplateContext) []scenario.VictoryCondition {
	return []scenario.VictoryCondition{{
		Type:               m.VictoryCondition.Type,
		RequiredObjectives: scenario.RequiredObjectiveIDs(objectives),
		Description:        scenario.Interpolate(m.VictoryCondition.DescriptionTemplate, ctx),
	}}
}

// BuildDefeatConditions always includes party death and doom exhaustion.
// Rescue missions additionally fail outright when the extraction objective
// fails, described with the victim's name.
func BuildDefeatConditions(m content.MissionType, objectives []scenario.Objective, ctx scenario.TemplateContext) []scenario.DefeatCondition {
	out := []scenario.DefeatCondition{
		{Type: scenario.DefeatAllDead, Description: "All investigators are dead or insane."},
		{Type: scenario.DefeatDoomZero, Description: "The doom counter reaches zero."},
	}
	if m.VictoryType != "rescue" {
		return out
	}
	for _, o := range objectives {
		if o.Type == scenario.ObjectiveEscape {
			out = append(out, scenario.DefeatCondition{
				Type:        scenario.DefeatObjectiveFailed,
				ObjectiveID: o.ID,
				Description: fmt.Sprintf("%s is lost beyond recovery.", ctx.Victim),
			})
			break
		}
	}
	return out
}
