package main

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"scenforge/internal/export"
	"scenforge/internal/report"
	"scenforge/internal/scenario"
)

func TestBaseSinkJSON(t *testing.T) {
	if _, ok := baseSink(true).(*report.JSONStdoutWriter); !ok {
		t.Fatalf("expected *report.JSONStdoutWriter, got %T", baseSink(true))
	}
	if _, ok := baseSink(false).(*report.ConsoleWriter); !ok {
		t.Fatalf("expected *report.ConsoleWriter, got %T", baseSink(false))
	}
}

func TestNewSinksLogFile(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "records.jsonl")

	sink, cleanup, err := newSinks(true, path)
	if err != nil {
		t.Fatalf("newSinks: %v", err)
	}

	doc := export.Document{
		FormatVersion: export.FormatVersion,
		Scenario:      scenario.Scenario{ID: "scn-1", Title: "The Pier Incident"},
	}
	if err := sink.WriteScenario(doc); err != nil {
		t.Fatalf("WriteScenario: %v", err)
	}
	cleanup()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		t.Fatalf("log file empty")
	}
	var rec map[string]json.RawMessage
	if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if _, ok := rec["document"]; !ok {
		t.Fatalf("record missing document: %s", sc.Text())
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]scenario.Difficulty{
		"normal":    scenario.DifficultyNormal,
		"Hard":      scenario.DifficultyHard,
		"NIGHTMARE": scenario.DifficultyNightmare,
	}
	for in, want := range cases {
		got, err := parseDifficulty(in)
		if err != nil {
			t.Fatalf("parseDifficulty(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("parseDifficulty(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := parseDifficulty("brutal"); err == nil {
		t.Fatalf("expected error for unknown difficulty")
	}
}

func TestNewSourceSeedForms(t *testing.T) {
	_, numeric := newSource("42")
	if numeric != 42 {
		t.Fatalf("numeric seed = %d, want 42", numeric)
	}

	_, phrase1 := newSource("midnight harbor")
	_, phrase2 := newSource("midnight harbor")
	if phrase1 != phrase2 {
		t.Fatalf("phrase seeds differ: %d vs %d", phrase1, phrase2)
	}
	if phrase1 == 0 {
		t.Fatalf("phrase seed should not be zero")
	}
}

func TestOutPath(t *testing.T) {
	if got := outPath("scenario.json", 0, 1); got != "scenario.json" {
		t.Fatalf("single = %q", got)
	}
	if got := outPath("scenario.json", 1, 3); got != "scenario-2.json" {
		t.Fatalf("batch = %q", got)
	}
	if got := outPath("scenario", 0, 2); got != "scenario-1.json" {
		t.Fatalf("no ext = %q", got)
	}
}
