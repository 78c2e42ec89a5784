// Versioned interchange JSON consumed by the tile editor.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"scenforge/internal/scenario"
	"scenforge/internal/tile"
	"scenforge/internal/validate"
)

// FormatVersion identifies the interchange document layout.
const FormatVersion = "1.0"

// Trigger links a reveal chain step for the editor: completing Source makes
// Reveals visible.
type Trigger struct {
	Type    string `json:"type"`
	Source  string `json:"sourceObjectiveId"`
	Reveals string `json:"revealsObjectiveId"`
}

// Document bundles a scenario with its tiles and a validation summary into
// the persisted export format. It round-trips losslessly through JSON.
type Document struct {
	FormatVersion string             `json:"formatVersion"`
	Scenario      scenario.Scenario  `json:"scenario"`
	Triggers      []Trigger          `json:"triggers,omitempty"`
	Tiles         tile.Map           `json:"tiles,omitempty"`
	Validation    *validate.Summary  `json:"validation,omitempty"`
}

// New builds a Document for a scenario, deriving reveal triggers from the
// objective chain. Tiles and validation are optional.
func New(s *scenario.Scenario, tiles tile.Map, summary *validate.Summary) Document {
	var triggers []Trigger
	for _, o := range s.Objectives {
		if o.RevealedBy != "" {
			triggers = append(triggers, Trigger{
				Type:    "objective_completed",
				Source:  o.RevealedBy,
				Reveals: o.ID,
			})
		}
	}
	return Document{
		FormatVersion: FormatVersion,
		Scenario:      *s,
		Triggers:      triggers,
		Tiles:         tiles,
		Validation:    summary,
	}
}

// Encode writes the document as indented JSON.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode document: %w", err)
	}
	return nil
}

// Decode reads a document, rejecting unknown format versions. Missing
// optional sections (tiles, validation, door configs) decode to zero values.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("export: decode document: %w", err)
	}
	if doc.FormatVersion != FormatVersion {
		return Document{}, fmt.Errorf("export: unsupported format version %q", doc.FormatVersion)
	}
	return doc, nil
}

// WriteFile writes the document to path.
func WriteFile(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := Encode(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads a document from path.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
