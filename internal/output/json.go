package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/statui/internal/events"
)

// JSONFormatter formats catalog entries as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes catalog entries as an indented JSON array.
func (f *JSONFormatter) Format(w io.Writer, catalog []events.Info) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(catalog)
}
