package validate

import (
	"strings"
	"testing"

	"scenforge/internal/content"
	"scenforge/internal/scenario"
	"scenforge/internal/tile"
)

func newTestValidator() *Validator {
	return NewValidator(content.BuiltIn())
}

// healthyInput is the known-good fixture: one start tile, a 2-tile map fully
// connected via OPEN edges, one escape objective, metadata present.
func healthyInput() Input {
	a := openTile(0, 0)
	a.IsStartLocation = true
	b := openTile(0, 1)
	return Input{
		Title:      "The Long Night at Chapel of Moths",
		Briefing:   "Hold until dawn.",
		StartDoom:  12,
		Difficulty: scenario.DifficultyNormal,
		Objectives: []scenario.Objective{{ID: "obj_flee_0", Type: scenario.ObjectiveEscape}},
		Tiles:      tile.Map{a.Key(): a, b.Key(): b},
	}
}

func TestHealthyScenarioHasZeroIssues(t *testing.T) {
	res := newTestValidator().Validate(healthyInput())
	if !res.Valid {
		t.Fatalf("expected valid, issues: %+v", res.Issues)
	}
	if len(res.Issues) != 0 {
		t.Fatalf("expected zero issues, got %+v", res.Issues)
	}
	if res.Stats.TotalTiles != 2 || res.Stats.ConnectedTiles != 2 {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
	if res.Stats.RequiredObjectives != 1 || res.Stats.BonusObjectives != 0 {
		t.Fatalf("unexpected objective stats: %+v", res.Stats)
	}
}

func TestKillObjectiveWithoutMonstersIsError(t *testing.T) {
	in := healthyInput()
	in.Objectives = []scenario.Objective{{
		ID: "obj_slay_0", Type: scenario.ObjectiveKillBoss, TargetID: "cult_sorcerer",
	}}
	res := newTestValidator().Validate(in)
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	found := false
	for _, i := range res.Issues {
		if i.Severity == SeverityError && i.Message == "Kill objective but no monsters placed" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing unwinnable-kill error, issues: %+v", res.Issues)
	}
}

func TestMissingStartLocationIsError(t *testing.T) {
	in := healthyInput()
	tiles := tile.Map{}
	for k, tl := range in.Tiles {
		tl.IsStartLocation = false
		tiles[k] = tl
	}
	in.Tiles = tiles
	res := newTestValidator().Validate(in)
	if res.Valid {
		t.Fatal("expected invalid result without a start location")
	}
}

func TestMultipleStartLocationsWarnAndFirstWins(t *testing.T) {
	in := healthyInput()
	tiles := tile.Map{}
	for k, tl := range in.Tiles {
		tl.IsStartLocation = true
		tiles[k] = tl
	}
	in.Tiles = tiles
	res := newTestValidator().Validate(in)
	if !res.Valid {
		t.Fatalf("multiple starts should only warn, issues: %+v", res.Issues)
	}
	var warn *Issue
	for i := range res.Issues {
		if res.Issues[i].Category == CategoryStart {
			warn = &res.Issues[i]
		}
	}
	if warn == nil || warn.Severity != SeverityWarning {
		t.Fatalf("expected start_location warning, got %+v", res.Issues)
	}
	// Tie-break is lexicographically smallest (q, r).
	if warn.TileID != tile.Key(0, 0) {
		t.Fatalf("first start should be 0,0, got %s", warn.TileID)
	}
}

func TestDoorMismatchWarns(t *testing.T) {
	in := healthyInput()
	a := in.Tiles[tile.Key(0, 0)]
	a.Edges[tile.South] = tile.EdgeDoor
	b := in.Tiles[tile.Key(0, 1)]
	b.Edges[tile.North] = tile.EdgeWindow
	in.Tiles = tile.Map{a.Key(): a, b.Key(): b}

	res := newTestValidator().Validate(in)
	hasDoorWarning := false
	for _, i := range res.Issues {
		if i.Category == CategoryDoors && i.Severity == SeverityWarning {
			hasDoorWarning = true
		}
	}
	if !hasDoorWarning {
		t.Fatalf("expected door mismatch warning, issues: %+v", res.Issues)
	}
}

func TestBossChecks(t *testing.T) {
	in := healthyInput()
	a := in.Tiles[tile.Key(0, 0)]
	a.Monsters = []tile.Monster{{Type: "cultist"}}
	in.Tiles[a.Key()] = a
	in.Objectives = []scenario.Objective{{
		ID: "obj_slay_0", Type: scenario.ObjectiveKillBoss, TargetID: "not_a_boss",
	}}
	res := newTestValidator().Validate(in)
	if res.Valid == false {
		t.Fatalf("warnings must not invalidate: %+v", res.Issues)
	}
	var messages []string
	for _, i := range res.Issues {
		messages = append(messages, i.Message)
	}
	joined := strings.Join(messages, "\n")
	if !strings.Contains(joined, "not in the bestiary") {
		t.Fatalf("missing bestiary warning: %s", joined)
	}
	if !strings.Contains(joined, "not placed on any tile") {
		t.Fatalf("missing placement warning: %s", joined)
	}
}

func TestBossPlacedByTypeSatisfiesCheck(t *testing.T) {
	in := healthyInput()
	a := in.Tiles[tile.Key(0, 0)]
	a.Monsters = []tile.Monster{{Type: "cult_sorcerer"}}
	in.Tiles[a.Key()] = a
	in.Objectives = []scenario.Objective{{
		ID: "obj_slay_0", Type: scenario.ObjectiveKillBoss, TargetID: "cult_sorcerer",
	}}
	res := newTestValidator().Validate(in)
	for _, i := range res.Issues {
		if i.Category == CategoryObjectives {
			t.Fatalf("unexpected objective issue: %+v", i)
		}
	}
	if !res.Valid {
		t.Fatalf("expected valid, issues: %+v", res.Issues)
	}
}

func TestFindItemMatchesNameSubstring(t *testing.T) {
	in := healthyInput()
	a := in.Tiles[tile.Key(0, 0)]
	a.Items = []tile.Item{{Name: "The Obsidian Idol of Yth"}}
	in.Tiles[a.Key()] = a
	in.Objectives = []scenario.Objective{{
		ID: "obj_find_0", Type: scenario.ObjectiveFindItem, TargetID: "obsidian idol",
	}}
	res := newTestValidator().Validate(in)
	for _, i := range res.Issues {
		if i.ObjectiveID == "obj_find_0" {
			t.Fatalf("substring match should satisfy find_item: %+v", i)
		}
	}
}

func TestCollectCountsPlacedItems(t *testing.T) {
	in := healthyInput()
	a := in.Tiles[tile.Key(0, 0)]
	a.Items = []tile.Item{{Subtype: "shard"}, {Subtype: "shard"}}
	in.Tiles[a.Key()] = a
	in.Objectives = []scenario.Objective{{
		ID: "obj_gather_0", Type: scenario.ObjectiveCollect, TargetID: "shard", TargetAmount: 3,
	}}
	res := newTestValidator().Validate(in)
	found := false
	for _, i := range res.Issues {
		if i.ObjectiveID == "obj_gather_0" && strings.Contains(i.Details, "placed=2 required=3") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected shortfall warning with counts, issues: %+v", res.Issues)
	}
}

func TestKillEnemiesCountWithTypeFilter(t *testing.T) {
	in := healthyInput()
	a := in.Tiles[tile.Key(0, 0)]
	a.Monsters = []tile.Monster{{Type: "ghoul"}, {Type: "cultist"}, {Type: "ghoul"}}
	in.Tiles[a.Key()] = a
	in.Objectives = []scenario.Objective{{
		ID: "obj_cull_0", Type: scenario.ObjectiveKillEnemies, TargetID: "ghoul", TargetAmount: 2,
	}}
	res := newTestValidator().Validate(in)
	for _, i := range res.Issues {
		if i.ObjectiveID == "obj_cull_0" {
			t.Fatalf("2 ghouls placed should satisfy the objective: %+v", i)
		}
	}
}

func TestDanglingRevealWarns(t *testing.T) {
	in := healthyInput()
	in.Objectives = []scenario.Objective{{
		ID: "obj_flee_0", Type: scenario.ObjectiveEscape, RevealedBy: "obj_gone_9",
	}}
	res := newTestValidator().Validate(in)
	found := false
	for _, i := range res.Issues {
		if strings.Contains(i.Message, "revealed by unknown objective") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected dangling reveal warning, issues: %+v", res.Issues)
	}
}

func TestMetadataAndBalanceAdvisories(t *testing.T) {
	in := healthyInput()
	in.Title = ""
	in.Briefing = " "
	in.StartDoom = 3
	a := in.Tiles[tile.Key(0, 0)]
	a.Monsters = make([]tile.Monster, 5) // 5 monsters on 2 tiles
	in.Tiles[a.Key()] = a

	res := newTestValidator().Validate(in)
	if !res.Valid {
		t.Fatalf("advisories must not invalidate: %+v", res.Issues)
	}
	sum := res.Summarize()
	if sum.Infos < 2 {
		t.Fatalf("expected title+briefing infos, got %+v", sum)
	}
	if sum.Warnings < 2 {
		t.Fatalf("expected doom floor + density warnings, got %+v", sum)
	}
}

func TestValidateGeneratedScenarioAgainstEmptyMapFindsKillGap(t *testing.T) {
	// A generated assassination scenario validated against a monster-free map
	// must be flagged unwinnable.
	in := healthyInput()
	in.Objectives = []scenario.Objective{
		{ID: "obj_track_0", Type: scenario.ObjectiveInvestigate, TargetAmount: 2},
		{ID: "obj_slay_1", Type: scenario.ObjectiveKillBoss, TargetID: "herald_of_dusk", RevealedBy: "obj_track_0"},
	}
	res := newTestValidator().Validate(in)
	if res.Valid {
		t.Fatalf("expected invalid, issues: %+v", res.Issues)
	}
}
