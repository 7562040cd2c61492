package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/statui/internal/events"
)

// NamesFormatter outputs just the event names, one per line.
// Useful for piping to other tools (e.g., completion while writing a
// replay script).
type NamesFormatter struct{}

// NewNamesFormatter creates a new names formatter.
func NewNamesFormatter() *NamesFormatter {
	return &NamesFormatter{}
}

// Format writes event names to the writer, one per line.
func (f *NamesFormatter) Format(w io.Writer, catalog []events.Info) error {
	for _, info := range catalog {
		if _, err := fmt.Fprintln(w, info.Name); err != nil {
			return err
		}
	}
	return nil
}
