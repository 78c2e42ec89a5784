// Pluggable sinks for generation records and validation reports.
package report

import (
	"time"

	"scenforge/internal/export"
	"scenforge/internal/validate"
)

// GenerationRow records one generation run for content-QA tracking.
type GenerationRow struct {
	RunID      string    `json:"run_id"`
	ScenarioID string    `json:"scenario_id"`
	Mission    string    `json:"mission"`
	Difficulty string    `json:"difficulty"`
	Objectives int       `json:"objectives"`
	StartDoom  int       `json:"start_doom"`
	Seed       uint64    `json:"seed"`
	Timestamp  time.Time `json:"ts"`
}

// ValidationRow records one validation run.
type ValidationRow struct {
	RunID          string    `json:"run_id"`
	ScenarioID     string    `json:"scenario_id"`
	Valid          bool      `json:"is_valid"`
	Errors         int       `json:"errors"`
	Warnings       int       `json:"warnings"`
	Infos          int       `json:"infos"`
	Tiles          int       `json:"tiles"`
	ConnectedTiles int       `json:"connected_tiles"`
	Timestamp      time.Time `json:"ts"`
}

// ScenarioWriter receives complete export documents.
type ScenarioWriter interface {
	WriteScenario(doc export.Document) error
}

// ResultWriter receives validation results.
type ResultWriter interface {
	WriteResult(res validate.Result) error
}

// StatsWriter receives run statistics rows.
type StatsWriter interface {
	WriteGeneration(row GenerationRow) error
	WriteValidation(row ValidationRow) error
}

// MultiWriter fans out to multiple sinks, skipping interfaces a sink does
// not implement.
type MultiWriter struct {
	sinks []any
}

// NewMultiWriter creates a MultiWriter over the given sinks.
func NewMultiWriter(sinks ...any) *MultiWriter {
	return &MultiWriter{sinks: sinks}
}

// WriteScenario sends the document to every scenario-capable sink.
func (mw *MultiWriter) WriteScenario(doc export.Document) error {
	for _, s := range mw.sinks {
		if w, ok := s.(ScenarioWriter); ok {
			if err := w.WriteScenario(doc); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteResult sends the result to every result-capable sink.
func (mw *MultiWriter) WriteResult(res validate.Result) error {
	for _, s := range mw.sinks {
		if w, ok := s.(ResultWriter); ok {
			if err := w.WriteResult(res); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteGeneration sends the row to every stats-capable sink.
func (mw *MultiWriter) WriteGeneration(row GenerationRow) error {
	for _, s := range mw.sinks {
		if w, ok := s.(StatsWriter); ok {
			if err := w.WriteGeneration(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteValidation sends the row to every stats-capable sink.
func (mw *MultiWriter) WriteValidation(row ValidationRow) error {
	for _, s := range mw.sinks {
		if w, ok := s.(StatsWriter); ok {
			if err := w.WriteValidation(row); err != nil {
				return err
			}
		}
	}
	return nil
}
