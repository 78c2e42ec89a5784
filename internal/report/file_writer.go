package report

import (
	"encoding/json"
	"os"

	"scenforge/internal/export"
	"scenforge/internal/validate"
)

// FileWriter appends generation and validation records to a JSONL file.
type FileWriter struct {
	file *os.File
	enc  *json.Encoder
}

// NewFileWriter creates a FileWriter logging to path.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{file: f, enc: json.NewEncoder(f)}, nil
}

type fileRecord struct {
	Kind       string             `json:"kind"`
	Document   *export.Document   `json:"document,omitempty"`
	Result     *validate.Result   `json:"result,omitempty"`
	Generation *GenerationRow     `json:"generation,omitempty"`
	Validation *ValidationRow     `json:"validation,omitempty"`
}

// WriteScenario logs an export document.
func (f *FileWriter) WriteScenario(doc export.Document) error {
	return f.enc.Encode(fileRecord{Kind: "scenario", Document: &doc})
}

// WriteResult logs a validation result.
func (f *FileWriter) WriteResult(res validate.Result) error {
	return f.enc.Encode(fileRecord{Kind: "result", Result: &res})
}

// WriteGeneration logs a generation stats row.
func (f *FileWriter) WriteGeneration(row GenerationRow) error {
	return f.enc.Encode(fileRecord{Kind: "generation", Generation: &row})
}

// WriteValidation logs a validation stats row.
func (f *FileWriter) WriteValidation(row ValidationRow) error {
	return f.enc.Encode(fileRecord{Kind: "validation", Validation: &row})
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	return f.file.Close()
}
