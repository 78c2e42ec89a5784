package report

import (
	"context"
	"testing"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
)

type mockGreptimeClient struct {
	table *table.Table
}

func (m *mockGreptimeClient) Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error) {
	if len(tables) > 0 {
		m.table = tables[0]
	}
	return &gpb.GreptimeResponse{}, nil
}

func TestGreptimeWriterGeneration(t *testing.T) {
	ts := time.Unix(0, 0).UTC()
	row := GenerationRow{
		RunID:      "run-1",
		ScenarioID: "scn-1",
		Mission:    "escape",
		Difficulty: "hard",
		Objectives: 4,
		StartDoom:  10,
		Timestamp:  ts,
	}

	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, generationTable: "scenario_generations"}

	if err := w.WriteGeneration(row); err != nil {
		t.Fatalf("WriteGeneration: %v", err)
	}
	if m.table == nil {
		t.Fatalf("expected table to be captured")
	}

	values := m.table.GetRows().Rows[0].Values
	if got := values[0].GetStringValue(); got != "run-1" {
		t.Fatalf("run_id = %s, want run-1", got)
	}
	if got := values[1].GetStringValue(); got != "escape" {
		t.Fatalf("mission = %s, want escape", got)
	}
	if got := values[4].GetI64Value(); got != 4 {
		t.Fatalf("objectives = %d, want 4", got)
	}
}

func TestGreptimeWriterValidation(t *testing.T) {
	row := ValidationRow{
		RunID:          "run-2",
		ScenarioID:     "scn-2",
		Valid:          false,
		Errors:         2,
		Warnings:       1,
		Tiles:          9,
		ConnectedTiles: 7,
		Timestamp:      time.Unix(0, 0).UTC(),
	}

	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, validationTable: "scenario_validations"}

	if err := w.WriteValidation(row); err != nil {
		t.Fatalf("WriteValidation: %v", err)
	}
	if m.table == nil {
		t.Fatalf("expected table to be captured")
	}

	values := m.table.GetRows().Rows[0].Values
	if got := values[2].GetBoolValue(); got != false {
		t.Fatalf("is_valid = %v, want false", got)
	}
	if got := values[3].GetI64Value(); got != 2 {
		t.Fatalf("errors = %d, want 2", got)
	}
}
