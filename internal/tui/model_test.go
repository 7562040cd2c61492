package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/statui/internal/config"
	"github.com/jmylchreest/statui/internal/events"
	"github.com/jmylchreest/statui/internal/status"
	"github.com/jmylchreest/statui/internal/theme"
)

type startCounter struct {
	n int
}

func (s *startCounter) Start() { s.n++ }

// fixture wires a model to a real registry and router so keystrokes and
// dispatched events run the same paths they do in production.
type fixture struct {
	model  Model
	feed   *Feed
	bus    events.Bus
	router *status.Router
	starts *startCounter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.DefaultConfig()
	cfg.UI.BellOnDanger = false

	th, err := theme.Load(theme.DefaultThemeName)
	require.NoError(t, err)

	bus := events.NewBus()
	feed := NewFeed(nil)
	registry := status.NewRegistry(func(string) status.Surface { return feed })
	starts := &startCounter{}
	router := status.NewRouter(registry, feed, feed, feed, starts, nil)
	router.BindKernel()
	router.BindNotebook()

	m := New(cfg, th, feed, registry, bus, starts)
	m.width = 100
	m.height = 30
	m.ready = true
	m.log = viewport.New(100, 10)
	m.traceback = viewport.New(96, 20)

	f := &fixture{model: m, feed: feed, bus: bus, router: router, starts: starts}
	f.pump(t)
	return f
}

// pump applies every queued feed message to the model.
func (f *fixture) pump(t *testing.T) {
	t.Helper()
	for {
		select {
		case msg := <-f.feed.ch:
			next, _ := f.model.Update(msg)
			f.model = next.(Model)
		default:
			return
		}
	}
}

func (f *fixture) dispatch(t *testing.T, ev events.Event) {
	t.Helper()
	f.router.Dispatch(ev)
	f.pump(t)
}

func (f *fixture) press(t *testing.T, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	return cmd
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_InitialView(t *testing.T) {
	f := newFixture(t)

	view := f.model.View()
	assert.Contains(t, view, "Untitled.ipynb")
	assert.Contains(t, view, "waiting for events")
	assert.Equal(t, "Untitled.ipynb - statui", f.model.fullTitle())
}

func TestModel_WidgetStateRendered(t *testing.T) {
	f := newFixture(t)

	f.dispatch(t, events.Event{Type: events.KernelKilled})

	state := f.model.states[status.KernelWidget]
	assert.Equal(t, "Dead kernel", state.Text)
	assert.Equal(t, status.SeverityDanger, state.Severity)
	assert.True(t, state.Sticky)
	assert.Equal(t, status.IconDead, f.model.kernelIcon)
	assert.Equal(t, "Kernel Dead", f.model.kernelTip)
	assert.Contains(t, f.model.View(), "Dead kernel")
}

func TestModel_DeadKernelOpensDialog(t *testing.T) {
	f := newFixture(t)

	f.dispatch(t, events.Event{Type: events.KernelDead})

	require.NotNil(t, f.model.dialog)
	assert.Equal(t, viewDialog, f.model.mode)
	assert.Equal(t, "Dead kernel", f.model.dialog.Title)

	view := f.model.View()
	assert.Contains(t, view, "Manual Restart")
	assert.Contains(t, view, "Don't restart")
}

func TestModel_DialogButtonActivation(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, events.Event{Type: events.KernelDead})
	require.Equal(t, viewDialog, f.model.mode)

	// First button is Manual Restart.
	f.press(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, viewStatus, f.model.mode)
	assert.Nil(t, f.model.dialog)
	assert.Equal(t, 1, f.starts.n)
}

func TestModel_DialogFocusCycling(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, events.Event{Type: events.KernelDead})

	f.press(t, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, f.model.dialogFocus)
	f.press(t, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, f.model.dialogFocus, "focus should wrap")
	f.press(t, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, f.model.dialogFocus)

	// Second button dismisses without restarting.
	f.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, viewStatus, f.model.mode)
	assert.Equal(t, 0, f.starts.n)
}

func TestModel_DialogEscDismisses(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, events.Event{Type: events.KernelDead})

	f.press(t, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, viewStatus, f.model.mode)
	assert.Nil(t, f.model.dialog)
	assert.Equal(t, 0, f.starts.n)
}

func TestModel_ClickReplaysDialog(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, events.Event{Type: events.KernelDead})
	f.press(t, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, viewStatus, f.model.mode)

	// The kernel widget is focused first and stays clickable.
	state, ok := f.model.focusedState()
	require.True(t, ok)
	require.True(t, state.Clickable)

	f.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	f.pump(t)

	require.NotNil(t, f.model.dialog)
	assert.Equal(t, viewDialog, f.model.mode)
	assert.Equal(t, "Dead kernel", f.model.dialog.Title)
}

func TestModel_TracebackViewer(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, events.Event{
		Type: events.SessionStartFailed,
		Data: events.KernelFailure{
			ShortMessage: "Kernel error",
			Message:      "Failed to start the kernel",
			Traceback:    []string{"Traceback (most recent call last):", "boom"},
		},
	})

	// The start failure arms a clickable alert without a dialog.
	require.Equal(t, viewStatus, f.model.mode)
	f.press(t, tea.KeyMsg{Type: tea.KeyEnter})
	f.pump(t)
	require.Equal(t, viewDialog, f.model.mode)
	assert.Contains(t, f.model.View(), "view traceback")

	f.press(t, runeKey("t"))
	assert.Equal(t, viewTraceback, f.model.mode)
	assert.Contains(t, f.model.View(), "boom")

	f.press(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewDialog, f.model.mode)
}

func TestModel_TitlePrefixLifecycle(t *testing.T) {
	f := newFixture(t)

	f.dispatch(t, events.Event{Type: events.KernelStarting})
	assert.Equal(t, "(Starting) Untitled.ipynb - statui", f.model.fullTitle())

	f.dispatch(t, events.Event{Type: events.KernelReady})
	assert.Equal(t, "Untitled.ipynb - statui", f.model.fullTitle())

	f.dispatch(t, events.Event{Type: events.KernelBusy})
	assert.Equal(t, "(Busy) Untitled.ipynb - statui", f.model.fullTitle())
}

func TestModel_ModeKeysPublish(t *testing.T) {
	f := newFixture(t)
	ch, cancel := f.bus.Subscribe(4)
	defer cancel()

	f.press(t, runeKey("i"))

	select {
	case ev := <-ch:
		assert.Equal(t, events.ModeEdit, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("no event published for edit mode key")
	}

	f.press(t, tea.KeyMsg{Type: tea.KeyEsc})
	select {
	case ev := <-ch:
		assert.Equal(t, events.ModeCommand, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("no event published for command mode key")
	}
}

func TestModel_ModeIndicatorFollowsRouter(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, status.ModeCommand, f.model.inputMode)

	f.dispatch(t, events.Event{Type: events.ModeEdit})
	assert.Equal(t, status.ModeEdit, f.model.inputMode)
	assert.Equal(t, "Edit Mode", f.model.inputTip)
}

func TestModel_RestartKeyRequestsSession(t *testing.T) {
	f := newFixture(t)

	f.press(t, runeKey("r"))

	assert.Equal(t, 1, f.starts.n)
}

func TestModel_FocusCycle(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, events.Event{Type: events.KernelKilled})
	f.dispatch(t, events.Event{Type: events.NotebookSaveFailed, Data: events.SaveFailure{Reason: "disk full"}})
	require.Len(t, f.model.order, 2)

	assert.Equal(t, 0, f.model.focus)
	f.press(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, f.model.focus)
	f.press(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, f.model.focus)
}

func TestModel_EventLogAppendsAndCaps(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < logLimit+50; i++ {
		next, _ := f.model.Update(busEventMsg{event: events.Event{Type: events.KernelBusy, Time: time.Now()}})
		f.model = next.(Model)
	}

	assert.Len(t, f.model.entries, logLimit)
	assert.False(t, f.model.lastEvent.IsZero())
}

func TestModel_HelpToggle(t *testing.T) {
	f := newFixture(t)

	f.press(t, runeKey("?"))
	assert.Equal(t, viewHelp, f.model.mode)
	assert.Contains(t, f.model.View(), "Keyboard Shortcuts")

	f.press(t, runeKey("?"))
	assert.Equal(t, viewStatus, f.model.mode)
}

func TestModel_HelpDoesNotCoverDialog(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, events.Event{Type: events.KernelDead})

	f.press(t, runeKey("?"))
	assert.Equal(t, viewDialog, f.model.mode, "help must not hide an open dialog")
}

func TestModel_ToggleEventLog(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.model.showLog)

	f.press(t, runeKey("e"))
	assert.False(t, f.model.showLog)
	f.press(t, runeKey("e"))
	assert.True(t, f.model.showLog)
}

func TestModel_CopyCommandsReturnWork(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, events.Event{Type: events.KernelKilled})

	assert.NotNil(t, f.press(t, runeKey("c")))
	assert.NotNil(t, f.press(t, runeKey("C")))
	assert.NotNil(t, f.press(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c"), Alt: true}))
}

func TestModel_ThemeReload(t *testing.T) {
	f := newFixture(t)

	minimal, err := theme.Load("minimal")
	require.NoError(t, err)

	next, _ := f.model.Update(themeMsg{theme: minimal})
	f.model = next.(Model)

	assert.Equal(t, "minimal", f.model.th.Name)
}

func TestModel_FeedbackMessageLifecycle(t *testing.T) {
	f := newFixture(t)

	next, cmd := f.model.Update(feedbackMsg{text: "Copied to clipboard"})
	f.model = next.(Model)
	assert.Equal(t, "Copied to clipboard", f.model.statusMsg)
	assert.NotNil(t, cmd, "feedback should schedule its own expiry")

	next, _ = f.model.Update(clearFeedbackMsg{})
	f.model = next.(Model)
	assert.Empty(t, f.model.statusMsg)
}

func TestModel_QuitKey(t *testing.T) {
	f := newFixture(t)

	cmd := f.press(t, runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
