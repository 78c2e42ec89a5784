package report

import (
	"bytes"
	"strings"
	"testing"

	"scenforge/internal/export"
	"scenforge/internal/scenario"
)

func TestConsoleWriterScenario(t *testing.T) {
	var buf bytes.Buffer
	w := &ConsoleWriter{out: &buf, width: 80}

	doc := export.Document{
		FormatVersion: export.FormatVersion,
		Scenario: scenario.Scenario{
			ID:          "scn-1",
			Title:       "The Chapel Incident",
			Briefing:    "Something stirs beneath the chapel.",
			StartDoom:   10,
			Difficulty:  scenario.DifficultyHard,
			VictoryType: "escape",
			Objectives: []scenario.Objective{
				{ID: "obj_a_0", Description: "Find the side exit"},
				{ID: "obj_a_1", Description: "Burn the ledger", Optional: true},
			},
			DoomEvents: []scenario.DoomEvent{
				{Threshold: 6, Type: scenario.DoomSpawnEnemies, Message: "Cultists pour in."},
			},
		},
		Triggers: []export.Trigger{
			{Type: "objective_completed", Source: "obj_a_0", Reveals: "obj_a_1"},
		},
	}

	if err := w.WriteScenario(doc); err != nil {
		t.Fatalf("WriteScenario: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"The Chapel Incident",
		"Something stirs beneath the chapel.",
		"Find the side exit",
		"(optional)",
		"Cultists pour in.",
		"obj_a_0 -> obj_a_1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleWriterResult(t *testing.T) {
	var buf bytes.Buffer
	w := &ConsoleWriter{out: &buf, width: 80}

	if err := w.WriteResult(sampleResult()); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "INVALID") {
		t.Fatalf("verdict missing:\n%s", out)
	}
	if !strings.Contains(out, "tile unreachable") || !strings.Contains(out, "door faces wall") {
		t.Fatalf("issues missing:\n%s", out)
	}
	errIdx := strings.Index(out, "tile unreachable")
	warnIdx := strings.Index(out, "door faces wall")
	if errIdx > warnIdx {
		t.Fatalf("errors should be listed before warnings:\n%s", out)
	}
}
