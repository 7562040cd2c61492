package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/statui/internal/events"
)

// PlainFormatter formats catalog entries as aligned plain text.
type PlainFormatter struct{}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// Format writes one line per entry: name, summary and, when the event
// carries one, the payload shape.
func (f *PlainFormatter) Format(w io.Writer, catalog []events.Info) error {
	for _, info := range catalog {
		var err error
		if info.Payload != "" {
			_, err = fmt.Fprintf(w, "%-28s %s (payload: %s)\n", info.Name, info.Summary, info.Payload)
		} else {
			_, err = fmt.Fprintf(w, "%-28s %s\n", info.Name, info.Summary)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
