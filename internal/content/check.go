package content

import (
	"fmt"
	"slices"

	"scenforge/internal/scenario"
)

// Check validates a catalog at construction time so authoring defects fail
// fast instead of surfacing as broken scenarios mid-generation.
func Check(p *Pools) error {
	if len(p.Missions) == 0 {
		return fmt.Errorf("content: no mission types defined")
	}
	if len(p.Locations) == 0 {
		return fmt.Errorf("content: no locations defined")
	}
	for name, pool := range map[string][]string{
		"targets": p.Targets, "victims": p.Victims,
		"mysteries": p.Mysteries, "collectibles": p.Collectibles,
	} {
		if len(pool) == 0 {
			return fmt.Errorf("content: %s pool is empty", name)
		}
	}
	if len(p.TitlesGeneric) == 0 {
		return fmt.Errorf("content: generic title pool is empty")
	}
	if len(p.BriefingOpenings) == 0 {
		return fmt.Errorf("content: briefing openings pool is empty")
	}
	// Middles are the only briefing paragraphs that run through the
	// interpolator; openings and closings are literal text.
	for vt, pool := range p.BriefingMiddles {
		for _, tpl := range pool {
			if err := checkPlaceholders(fmt.Sprintf("briefing middle for victory type %q", vt), tpl); err != nil {
				return err
			}
		}
	}

	difficulties := []scenario.Difficulty{
		scenario.DifficultyNormal, scenario.DifficultyHard, scenario.DifficultyNightmare,
	}
	for _, d := range difficulties {
		if len(p.Enemies[d]) == 0 {
			return fmt.Errorf("content: no enemy spawn configs for difficulty %s", d)
		}
		if len(p.BriefingClosings[d]) == 0 {
			return fmt.Errorf("content: no briefing closings for difficulty %s", d)
		}
	}
	// Every tier filters the boss pool down to tags <= tier, so at least one
	// Normal-tagged boss guarantees no tier ever draws from an empty pool.
	hasNormalBoss := false
	for _, b := range p.Bosses {
		if b.Difficulty.Rank() == 0 {
			return fmt.Errorf("content: boss %q has unknown difficulty %q", b.ID, b.Difficulty)
		}
		if b.Difficulty == scenario.DifficultyNormal {
			hasNormalBoss = true
		}
	}
	if !hasNormalBoss {
		return fmt.Errorf("content: boss pool needs at least one Normal-tagged entry")
	}

	for _, m := range p.Missions {
		if err := checkMission(p, m); err != nil {
			return err
		}
	}
	for i, t := range p.Bonus {
		if err := checkTemplate(fmt.Sprintf("bonus[%d]", i), t, i); err != nil {
			return err
		}
		if t.RevealedByIndex != nil {
			return fmt.Errorf("content: bonus objective %q must not use reveal chains", t.ID)
		}
	}
	return nil
}

func checkMission(p *Pools, m MissionType) error {
	if len(m.ObjectiveTemplates) == 0 {
		return fmt.Errorf("content: mission %q has no objective templates", m.ID)
	}
	for _, d := range []scenario.Difficulty{
		scenario.DifficultyNormal, scenario.DifficultyHard, scenario.DifficultyNightmare,
	} {
		if m.BaseDoom[d] <= 0 {
			return fmt.Errorf("content: mission %q missing base doom for %s", m.ID, d)
		}
	}
	if len(p.BriefingMiddles[m.VictoryType]) == 0 {
		return fmt.Errorf("content: no briefing middles for victory type %q (mission %q)", m.VictoryType, m.ID)
	}
	for i, t := range m.ObjectiveTemplates {
		if err := checkTemplate(fmt.Sprintf("mission %q objective[%d]", m.ID, i), t, i); err != nil {
			return err
		}
	}
	if err := checkPlaceholders(fmt.Sprintf("mission %q victory condition", m.ID), m.VictoryCondition.DescriptionTemplate); err != nil {
		return err
	}
	for _, pool := range [][]string{p.TitlesByMission[m.ID], p.TitlesByVictory[m.VictoryType], p.TitlesGeneric} {
		for _, tpl := range pool {
			if err := checkPlaceholders(fmt.Sprintf("title for mission %q", m.ID), tpl); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkTemplate enforces the reveal-chain invariant: revealedByIndex points
// only to strictly earlier indices, which makes the reference graph acyclic
// by construction.
func checkTemplate(where string, t ObjectiveTemplate, index int) error {
	if t.ID == "" {
		return fmt.Errorf("content: %s has no id", where)
	}
	if t.Type == "" {
		return fmt.Errorf("content: %s (%q) has no type", where, t.ID)
	}
	if t.RevealedByIndex != nil {
		rb := *t.RevealedByIndex
		if rb < 0 || rb >= index {
			return fmt.Errorf("content: %s (%q) revealed_by %d must point to an earlier index", where, t.ID, rb)
		}
	}
	if t.AmountMax < t.AmountMin {
		return fmt.Errorf("content: %s (%q) amount range [%d,%d] is inverted", where, t.ID, t.AmountMin, t.AmountMax)
	}
	if err := checkPlaceholders(where, t.DescriptionTemplate); err != nil {
		return err
	}
	return checkPlaceholders(where, t.ShortTemplate)
}

func checkPlaceholders(where, template string) error {
	for _, name := range scenario.Placeholders(template) {
		if !slices.Contains(scenario.KnownPlaceholders, name) {
			return fmt.Errorf("content: %s references undefined placeholder {%s}", where, name)
		}
	}
	return nil
}
