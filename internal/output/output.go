// Package output provides output formatters for the event catalog.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/statui/internal/events"
)

// Formatter formats catalog entries for output.
type Formatter interface {
	// Format writes formatted catalog entries to the writer.
	Format(w io.Writer, catalog []events.Info) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatNames FormatType = "names"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (FormatType, error) {
	switch FormatType(s) {
	case FormatPlain, FormatJSON, FormatYAML, FormatNames:
		return FormatType(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatYAML:
		return NewYAMLFormatter()
	case FormatNames:
		return NewNamesFormatter()
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter()
	}
}
