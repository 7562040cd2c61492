package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/statui/internal/events"
	"github.com/jmylchreest/statui/internal/status"
	"github.com/jmylchreest/statui/internal/theme"
)

// Messages delivered from router callbacks into the bubbletea loop.
type (
	widgetMsg struct{ state status.WidgetState }
	modalMsg  struct{ modal status.Modal }

	kernelIconMsg struct {
		icon    status.IconState
		tooltip string
	}
	modeMsg struct {
		mode    status.Mode
		tooltip string
	}

	titlePrefixMsg  struct{ prefix string }
	titleRefreshMsg struct{}

	busEventMsg struct{ event events.Event }
	themeMsg    struct{ theme *theme.Theme }
)

// Feed bridges the router's collaborator interfaces into the bubbletea
// program. Callbacks arrive on player and timer goroutines; each becomes
// a message the model consumes from a single channel.
type Feed struct {
	ch     chan tea.Msg
	logger *slog.Logger
}

// NewFeed creates a feed with room for a burst of updates.
func NewFeed(logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{ch: make(chan tea.Msg, 128), logger: logger}
}

// Wait blocks until the next message arrives. The model re-issues it as
// a command after every delivery.
func (f *Feed) Wait() tea.Msg {
	return <-f.ch
}

func (f *Feed) send(msg tea.Msg) {
	select {
	case f.ch <- msg:
	default:
		// A stalled UI must not block widget timers.
		f.logger.Debug("dropping UI update", "type", fmt.Sprintf("%T", msg))
	}
}

// Apply implements status.Surface.
func (f *Feed) Apply(state status.WidgetState) {
	f.send(widgetMsg{state: state})
}

// Show implements status.ModalPresenter.
func (f *Feed) Show(m status.Modal) {
	f.send(modalMsg{modal: m})
}

// SetKernel implements status.Indicators.
func (f *Feed) SetKernel(icon status.IconState, tooltip string) {
	f.send(kernelIconMsg{icon: icon, tooltip: tooltip})
}

// SetMode implements status.Indicators.
func (f *Feed) SetMode(mode status.Mode, tooltip string) {
	f.send(modeMsg{mode: mode, tooltip: tooltip})
}

// Refresh implements status.TitleBar.
func (f *Feed) Refresh() {
	f.send(titleRefreshMsg{})
}

// SetPrefix implements status.TitleBar.
func (f *Feed) SetPrefix(prefix string) {
	f.send(titlePrefixMsg{prefix: prefix})
}

// Forward puts a bus event into the UI event log.
func (f *Feed) Forward(ev events.Event) {
	f.send(busEventMsg{event: ev})
}

// ReloadTheme swaps the color theme at runtime.
func (f *Feed) ReloadTheme(t *theme.Theme) {
	f.send(themeMsg{theme: t})
}
