// Writer implementation printing JSON to STDOUT.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"scenforge/internal/export"
	"scenforge/internal/validate"
)

// JSONStdoutWriter prints documents and results as JSON lines.
type JSONStdoutWriter struct {
	out io.Writer
}

// NewJSONStdoutWriter creates a JSONStdoutWriter writing to os.Stdout.
func NewJSONStdoutWriter() *JSONStdoutWriter {
	return &JSONStdoutWriter{out: os.Stdout}
}

// WriteScenario outputs an export document in JSON format.
func (w *JSONStdoutWriter) WriteScenario(doc export.Document) error {
	data, _ := json.Marshal(doc)
	fmt.Fprintln(w.out, string(data))
	return nil
}

// WriteResult outputs a validation result in JSON format.
func (w *JSONStdoutWriter) WriteResult(res validate.Result) error {
	data, _ := json.Marshal(res)
	fmt.Fprintln(w.out, string(data))
	return nil
}
