package gen

import (
	"testing"

	"scenforge/internal/content"
	"scenforge/internal/scenario"
)

func TestVictoryRequiresExactlyNonOptional(t *testing.T) {
	m := content.MissionType{
		VictoryCondition: content.ConditionTemplate{Type: "escape", DescriptionTemplate: "Escape {location}"},
	}
	objs := []scenario.Objective{
		{ID: "obj_a_0"},
		{ID: "obj_b_1", Optional: true},
		{ID: "obj_c_2"},
	}
	vcs := BuildVictoryConditions(m, objs, testContext())
	if len(vcs) != 1 {
		t.Fatalf("expected 1 victory condition, got %d", len(vcs))
	}
	req := vcs[0].RequiredObjectives
	if len(req) != 2 || req[0] != "obj_a_0" || req[1] != "obj_c_2" {
		t.Fatalf("unexpected required objectives: %v", req)
	}
	if vcs[0].Description != "Escape St. Jerome's Asylum" {
		t.Fatalf("description not interpolated: %q", vcs[0].Description)
	}
}

func TestDefeatConditionsBaseline(t *testing.T) {
	m := content.MissionType{VictoryType: "escape"}
	dcs := BuildDefeatConditions(m, nil, testContext())
	if len(dcs) != 2 {
		t.Fatalf("expected all_dead + doom_zero, got %d conditions", len(dcs))
	}
	if dcs[0].Type != scenario.DefeatAllDead || dcs[1].Type != scenario.DefeatDoomZero {
		t.Fatalf("unexpected defeat types: %s %s", dcs[0].Type, dcs[1].Type)
	}
}

func TestRescueAddsObjectiveFailed(t *testing.T) {
	m := content.MissionType{VictoryType: "rescue"}
	objs := []scenario.Objective{
		{ID: "obj_locate_0", Type: scenario.ObjectiveRescue},
		{ID: "obj_extract_1", Type: scenario.ObjectiveEscape},
	}
	dcs := BuildDefeatConditions(m, objs, testContext())
	if len(dcs) != 3 {
		t.Fatalf("expected 3 defeat conditions, got %d", len(dcs))
	}
	last := dcs[2]
	if last.Type != scenario.DefeatObjectiveFailed || last.ObjectiveID != "obj_extract_1" {
		t.Fatalf("unexpected objective_failed condition: %+v", last)
	}
	if last.Description != "Inspector Crane is lost beyond recovery." {
		t.Fatalf("victim not named: %q", last.Description)
	}
}
