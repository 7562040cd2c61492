package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/statui/internal/events"
)

// YAMLFormatter formats catalog entries as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes catalog entries as a YAML sequence.
func (f *YAMLFormatter) Format(w io.Writer, catalog []events.Info) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(catalog)
}
