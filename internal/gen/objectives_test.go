package gen

import (
	"fmt"
	"strings"
	"testing"

	"scenforge/internal/content"
	"scenforge/internal/rng"
	"scenforge/internal/scenario"
)

func testContext() scenario.TemplateContext {
	return scenario.TemplateContext{
		Location: "St. Jerome's Asylum",
		Target:   "the Pale Surgeon",
		Victim:   "Inspector Crane",
		Mystery:  "the sealed thirteenth ward",
		Item:     "Star-Metal Key",
		Items:    "Star-Metal Key fragments",
		Rounds:   12,
	}
}

func TestGenerateObjectivesPreservesOrder(t *testing.T) {
	pools := content.BuiltIn()
	for _, m := range pools.Missions {
		objs := GenerateObjectives(rng.New(3), m, testContext())
		if len(objs) != len(m.ObjectiveTemplates) {
			t.Fatalf("mission %s: %d objectives from %d templates", m.ID, len(objs), len(m.ObjectiveTemplates))
		}
		for i, o := range objs {
			wantID := fmt.Sprintf("obj_%s_%d", m.ObjectiveTemplates[i].ID, i)
			if o.ID != wantID {
				t.Fatalf("mission %s: objective %d id %s, want %s", m.ID, i, o.ID, wantID)
			}
			if o.Completed || o.CurrentAmount != 0 {
				t.Fatalf("objective %s starts with progress", o.ID)
			}
		}
	}
}

func TestRevealChainsAlwaysResolve(t *testing.T) {
	pools := content.BuiltIn()
	for seed := uint64(0); seed < 50; seed++ {
		for _, m := range pools.Missions {
			objs := GenerateObjectives(rng.New(seed), m, testContext())
			ids := map[string]bool{}
			for _, o := range objs {
				ids[o.ID] = true
			}
			for _, o := range objs {
				if o.RevealedBy != "" && !ids[o.RevealedBy] {
					t.Fatalf("mission %s: %s revealed by unknown id %s", m.ID, o.ID, o.RevealedBy)
				}
			}
		}
	}
}

func TestObjectiveAmountsWithinRange(t *testing.T) {
	pools := content.BuiltIn()
	for seed := uint64(0); seed < 50; seed++ {
		for _, m := range pools.Missions {
			objs := GenerateObjectives(rng.New(seed), m, testContext())
			for i, o := range objs {
				tpl := m.ObjectiveTemplates[i]
				if tpl.AmountMax == 0 {
					if o.TargetAmount != 0 {
						t.Fatalf("%s: amount set without range", o.ID)
					}
					continue
				}
				if o.TargetAmount < tpl.AmountMin || o.TargetAmount > tpl.AmountMax {
					t.Fatalf("%s: amount %d outside [%d,%d]", o.ID, o.TargetAmount, tpl.AmountMin, tpl.AmountMax)
				}
			}
		}
	}
}

func TestObjectiveDescriptionUsesOwnAmount(t *testing.T) {
	m := content.MissionType{
		ID: "m", ObjectiveTemplates: []content.ObjectiveTemplate{{
			ID: "carry", Type: scenario.ObjectiveCollect,
			DescriptionTemplate: "Collect {count} things",
			AmountMin:           4, AmountMax: 4,
		}},
	}
	objs := GenerateObjectives(rng.New(1), m, testContext())
	if objs[0].Description != "Collect 4 things" {
		t.Fatalf("description %q did not use the objective amount", objs[0].Description)
	}
}

func TestSurviveObjectiveBindsRounds(t *testing.T) {
	m := content.MissionType{
		ID: "m", ObjectiveTemplates: []content.ObjectiveTemplate{{
			ID: "hold", Type: scenario.ObjectiveSurvive,
			DescriptionTemplate: "Survive {rounds} rounds",
			AmountMin:           9, AmountMax: 9,
		}},
	}
	objs := GenerateObjectives(rng.New(1), m, testContext())
	if objs[0].Description != "Survive 9 rounds" {
		t.Fatalf("survive description %q did not bind rounds to amount", objs[0].Description)
	}
}

func TestBonusObjectivesAlwaysOptional(t *testing.T) {
	pools := content.BuiltIn()
	for seed := uint64(0); seed < 30; seed++ {
		objs := GenerateBonusObjectives(rng.New(seed), pools, 2, 5, testContext())
		if len(objs) != 2 {
			t.Fatalf("seed %d: expected 2 bonus objectives, got %d", seed, len(objs))
		}
		for _, o := range objs {
			if !o.Optional {
				t.Fatalf("bonus objective %s not optional", o.ID)
			}
		}
	}
}

func TestBonusObjectivesCappedByPool(t *testing.T) {
	pools := content.BuiltIn()
	objs := GenerateBonusObjectives(rng.New(1), pools, len(pools.Bonus)+5, 0, testContext())
	if len(objs) != len(pools.Bonus) {
		t.Fatalf("expected %d objectives, got %d", len(pools.Bonus), len(objs))
	}
	seen := map[string]bool{}
	for _, o := range objs {
		if seen[o.ID] {
			t.Fatalf("duplicate bonus id %s", o.ID)
		}
		seen[o.ID] = true
	}
}

func TestNoUnresolvedPlaceholdersInBuiltinObjectives(t *testing.T) {
	pools := content.BuiltIn()
	for _, m := range pools.Missions {
		for _, o := range GenerateObjectives(rng.New(11), m, testContext()) {
			if strings.ContainsRune(o.Description, '{') {
				t.Fatalf("mission %s objective %s left placeholder: %q", m.ID, o.ID, o.Description)
			}
		}
	}
}
