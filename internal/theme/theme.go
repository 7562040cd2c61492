package theme

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/statui/internal/status"
)

// Theme describes the visual appearance of the status area.
type Theme struct {
	Name    string    `toml:"-"`
	Path    string    `toml:"-"` // file path, empty for bundled themes
	ModTime time.Time `toml:"-"`

	Severity SeverityColors `toml:"severity"`
	Chrome   ChromeColors   `toml:"chrome"`
	Icons    IconGlyphs     `toml:"icons"`
}

// StyleDef is one styled text role. Colors are lipgloss color strings:
// ANSI numbers ("9"), or hex ("#f38ba8"). Empty means terminal default.
type StyleDef struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Bold       bool   `toml:"bold"`
	Italic     bool   `toml:"italic"`
}

// SeverityColors styles widget messages by severity.
type SeverityColors struct {
	None    StyleDef `toml:"none"`
	Info    StyleDef `toml:"info"`
	Warning StyleDef `toml:"warning"`
	Danger  StyleDef `toml:"danger"`
}

// ChromeColors styles the fixed parts of the TUI.
type ChromeColors struct {
	Title     StyleDef `toml:"title"`
	Dim       StyleDef `toml:"dim"`
	Highlight StyleDef `toml:"highlight"`
	Border    string   `toml:"border"`
}

// IconGlyphs are the indicator glyphs.
type IconGlyphs struct {
	Idle         string `toml:"idle"`
	Busy         string `toml:"busy"`
	Dead         string `toml:"dead"`
	Disconnected string `toml:"disconnected"`
	Edit         string `toml:"edit"`
	Command      string `toml:"command"`
}

// Style builds the lipgloss style for a definition.
func (s StyleDef) Style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	return st
}

// SeverityStyle returns the style for widget text of the given severity.
func (t *Theme) SeverityStyle(sev status.Severity) lipgloss.Style {
	switch sev {
	case status.SeverityInfo:
		return t.Severity.Info.Style()
	case status.SeverityWarning:
		return t.Severity.Warning.Style()
	case status.SeverityDanger:
		return t.Severity.Danger.Style()
	default:
		return t.Severity.None.Style()
	}
}

// Glyph returns the indicator glyph for a kernel icon state.
func (t *Theme) Glyph(state status.IconState) string {
	switch state {
	case status.IconBusy:
		return t.Icons.Busy
	case status.IconDead:
		return t.Icons.Dead
	case status.IconDisconnected:
		return t.Icons.Disconnected
	default:
		return t.Icons.Idle
	}
}

// ModeGlyph returns the indicator glyph for an editor mode.
func (t *Theme) ModeGlyph(mode status.Mode) string {
	if mode == status.ModeEdit {
		return t.Icons.Edit
	}
	return t.Icons.Command
}

// Parse decodes a TOML theme document. Missing glyphs are filled from the
// fallback set so a sparse theme still renders every indicator.
func Parse(name string, data []byte) (*Theme, error) {
	t := &Theme{Name: name}
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.fillGlyphs()
	return t, nil
}

var fallbackGlyphs = IconGlyphs{
	Idle:         "o",
	Busy:         "*",
	Dead:         "x",
	Disconnected: "!",
	Edit:         "E",
	Command:      "C",
}

func (t *Theme) fillGlyphs() {
	if t.Icons.Idle == "" {
		t.Icons.Idle = fallbackGlyphs.Idle
	}
	if t.Icons.Busy == "" {
		t.Icons.Busy = fallbackGlyphs.Busy
	}
	if t.Icons.Dead == "" {
		t.Icons.Dead = fallbackGlyphs.Dead
	}
	if t.Icons.Disconnected == "" {
		t.Icons.Disconnected = fallbackGlyphs.Disconnected
	}
	if t.Icons.Edit == "" {
		t.Icons.Edit = fallbackGlyphs.Edit
	}
	if t.Icons.Command == "" {
		t.Icons.Command = fallbackGlyphs.Command
	}
}
