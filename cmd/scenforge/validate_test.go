package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"scenforge/internal/export"
	"scenforge/internal/scenario"
	"scenforge/internal/tile"
	"scenforge/internal/validate"
)

func TestReadInputExportDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	doc := export.Document{
		FormatVersion: export.FormatVersion,
		Scenario: scenario.Scenario{
			ID:        "scn-1",
			Title:     "The Mill Incident",
			StartDoom: 12,
		},
		Tiles: tile.Map{"0,0": {IsStartLocation: true}},
	}
	if err := export.WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	in, id, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if id != "scn-1" {
		t.Fatalf("id = %q, want scn-1", id)
	}
	if in.Title != "The Mill Incident" || in.StartDoom != 12 {
		t.Fatalf("unexpected input: %#v", in)
	}
	if len(in.Tiles) != 1 {
		t.Fatalf("tiles = %d, want 1", len(in.Tiles))
	}
}

func TestReadInputBareForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bare.json")

	bare := validate.Input{
		Title:     "Authored Map",
		StartDoom: 8,
		Tiles:     tile.Map{"0,0": {IsStartLocation: true}, "1,0": {}},
	}
	data, err := json.Marshal(bare)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	in, id, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if id != path {
		t.Fatalf("id = %q, want file path", id)
	}
	if len(in.Tiles) != 2 {
		t.Fatalf("tiles = %d, want 2", len(in.Tiles))
	}
}

func TestReadInputRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := readInput(path); err == nil {
		t.Fatalf("expected error for malformed file")
	}
}
