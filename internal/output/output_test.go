package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/statui/internal/events"
)

func testCatalog() []events.Info {
	return []events.Info{
		{Name: "kernel.dead", Group: "kernel", Summary: "kernel died and automatic restart failed"},
		{Name: "autosave.enabled", Group: "autosave", Payload: "interval", Summary: "autosave turned on"},
	}
}

func TestPlainFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	err := NewPlainFormatter().Format(&buf, testCatalog())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "kernel.dead")
	assert.Contains(t, lines[0], "automatic restart")
	assert.NotContains(t, lines[0], "payload:")

	assert.Contains(t, lines[1], "autosave.enabled")
	assert.Contains(t, lines[1], "(payload: interval)")
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	err := NewJSONFormatter().Format(&buf, testCatalog())
	require.NoError(t, err)

	var decoded []events.Info
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "kernel.dead", decoded[0].Name)
	assert.Equal(t, "interval", decoded[1].Payload)
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	err := NewYAMLFormatter().Format(&buf, testCatalog())
	require.NoError(t, err)

	var decoded []events.Info
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "autosave.enabled", decoded[1].Name)
	assert.Equal(t, "autosave", decoded[1].Group)
}

func TestNamesFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	err := NewNamesFormatter().Format(&buf, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, "kernel.dead\nautosave.enabled\n", buf.String())
}

func TestNamesFormatter_FullCatalogPipes(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewNamesFormatter().Format(&buf, events.Catalog()))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.True(t, events.Known(line), "line %q is not a catalog event", line)
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"plain", "json", "yaml", "names"} {
		ft, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, FormatType(valid), ft)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestNewFormatter_CoversAllTypes(t *testing.T) {
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatPlain))
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &NamesFormatter{}, NewFormatter(FormatNames))
	assert.IsType(t, &PlainFormatter{}, NewFormatter("bogus"), "unknown types fall back to plain")
}
