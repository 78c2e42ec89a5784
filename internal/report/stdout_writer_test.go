package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"scenforge/internal/export"
	"scenforge/internal/scenario"
)

func TestJSONStdoutWriterScenario(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONStdoutWriter{out: &buf}

	doc := export.Document{
		FormatVersion: export.FormatVersion,
		Scenario:      scenario.Scenario{ID: "scn-1", Title: "The Docks Incident"},
	}
	if err := w.WriteScenario(doc); err != nil {
		t.Fatalf("WriteScenario: %v", err)
	}

	var got export.Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Scenario.Title != doc.Scenario.Title {
		t.Fatalf("title = %q, want %q", got.Scenario.Title, doc.Scenario.Title)
	}
}

func TestJSONStdoutWriterResult(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONStdoutWriter{out: &buf}

	if err := w.WriteResult(sampleResult()); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if valid, ok := got["isValid"].(bool); !ok || valid {
		t.Fatalf("isValid = %v, want false", got["isValid"])
	}
}
