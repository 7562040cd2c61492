// Package tui provides the BubbleTea-based terminal status area.
package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/statui/internal/config"
	"github.com/jmylchreest/statui/internal/events"
	"github.com/jmylchreest/statui/internal/status"
	"github.com/jmylchreest/statui/internal/theme"
)

// viewMode selects the active screen.
type viewMode int

const (
	viewStatus viewMode = iota
	viewDialog
	viewTraceback
	viewHelp
)

// logLimit bounds the event log pane.
const logLimit = 200

// logEntry is one line of the event log.
type logEntry struct {
	Time  time.Time `json:"time" yaml:"time"`
	Event string    `json:"event" yaml:"event"`
}

// Model is the main TUI model.
type Model struct {
	cfg      *config.Config
	th       *theme.Theme
	feed     *Feed
	registry *status.Registry
	bus      events.Bus
	sessions status.SessionStarter

	mode viewMode

	// Title bar
	baseTitle string
	prefix    string

	// Status area
	states map[string]status.WidgetState
	order  []string
	focus  int

	// Indicators
	kernelIcon status.IconState
	kernelTip  string
	inputMode  status.Mode
	inputTip   string

	// Dialog
	dialog      *status.Modal
	dialogFocus int
	traceback   viewport.Model

	// Event log
	entries   []logEntry
	log       viewport.Model
	showLog   bool
	lastEvent time.Time

	// Key bindings
	help help.Model
	keys KeyMap

	width  int
	height int
	ready  bool

	// Status message
	statusMsg string
	statusErr bool
}

// New creates the TUI model.
func New(cfg *config.Config, th *theme.Theme, feed *Feed, registry *status.Registry, bus events.Bus, sessions status.SessionStarter) Model {
	title := cfg.UI.Title
	if title == "" {
		title = config.DefaultTitle
	}

	return Model{
		cfg:        cfg,
		th:         th,
		feed:       feed,
		registry:   registry,
		bus:        bus,
		sessions:   sessions,
		mode:       viewStatus,
		baseTitle:  title,
		states:     make(map[string]status.WidgetState),
		kernelIcon: status.IconDisconnected,
		showLog:    cfg.UI.ShowEventLog,
		help:       help.New(),
		keys:       DefaultKeyMap(),
	}
}

// Init starts pumping router updates into the program.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.feed.Wait, tea.SetWindowTitle(m.fullTitle()))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.log = viewport.New(msg.Width, m.logHeight())
		m.log.SetContent(m.renderLog())
		m.log.GotoBottom()

		m.traceback = viewport.New(msg.Width-4, max(5, msg.Height-8))
		if m.dialog != nil {
			m.traceback.SetContent(strings.Join(m.dialog.Traceback, "\n"))
		}
		return m, nil

	case widgetMsg:
		return m.applyWidget(msg.state)

	case modalMsg:
		modal := msg.modal
		m.dialog = &modal
		m.dialogFocus = 0
		m.mode = viewDialog
		if modal.OnOpen != nil {
			modal.OnOpen()
		}
		if m.cfg.UI.BellOnDanger {
			return m, tea.Batch(m.feed.Wait, ringBell)
		}
		return m, m.feed.Wait

	case kernelIconMsg:
		m.kernelIcon = msg.icon
		m.kernelTip = msg.tooltip
		return m, m.feed.Wait

	case modeMsg:
		m.inputMode = msg.mode
		m.inputTip = msg.tooltip
		return m, m.feed.Wait

	case titlePrefixMsg:
		m.prefix = msg.prefix
		return m, tea.Batch(m.feed.Wait, tea.SetWindowTitle(m.fullTitle()))

	case titleRefreshMsg:
		m.prefix = ""
		return m, tea.Batch(m.feed.Wait, tea.SetWindowTitle(m.fullTitle()))

	case busEventMsg:
		m.entries = append(m.entries, logEntry{Time: msg.event.Time, Event: msg.event.Type})
		if len(m.entries) > logLimit {
			m.entries = m.entries[len(m.entries)-logLimit:]
		}
		m.lastEvent = msg.event.Time
		m.log.SetContent(m.renderLog())
		m.log.GotoBottom()
		return m, m.feed.Wait

	case themeMsg:
		m.th = msg.theme
		return m, tea.Batch(m.feed.Wait, m.status("Theme reloaded: "+msg.theme.Name, false))

	case feedbackMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearFeedbackMsg{}
		})

	case clearFeedbackMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, m.status("Copy failed: "+msg.err.Error(), true)
		}
		return m, m.status("Copied to clipboard", false)
	}

	// Scroll state for whichever viewport is on screen.
	var cmd tea.Cmd
	switch m.mode {
	case viewStatus:
		m.log, cmd = m.log.Update(msg)
	case viewTraceback:
		m.traceback, cmd = m.traceback.Update(msg)
	}
	return m, cmd
}

type feedbackMsg struct {
	text  string
	isErr bool
}

type clearFeedbackMsg struct{}

type copyResultMsg struct {
	err error
}

// status queues a transient footer message.
func (m Model) status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return feedbackMsg{text: text, isErr: isErr}
	}
}

// ringBell sounds the terminal bell without touching the renderer's
// output stream.
func ringBell() tea.Msg {
	os.Stderr.WriteString("\a")
	return nil
}

// applyWidget records a widget state snapshot.
func (m Model) applyWidget(state status.WidgetState) (tea.Model, tea.Cmd) {
	if _, ok := m.states[state.Name]; !ok {
		m.order = append(m.order, state.Name)
	}
	m.states[state.Name] = state

	if m.cfg.UI.BellOnDanger && state.Severity == status.SeverityDanger && !state.Empty() {
		return m, tea.Batch(m.feed.Wait, ringBell)
	}
	return m, m.feed.Wait
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		switch m.mode {
		case viewHelp:
			m.mode = viewStatus
		case viewStatus:
			m.mode = viewHelp
		}
		return m, nil
	}

	// Mode-specific keys
	switch m.mode {
	case viewStatus:
		return m.handleStatusKey(msg)
	case viewDialog:
		return m.handleDialogKey(msg)
	case viewTraceback:
		return m.handleTracebackKey(msg)
	case viewHelp:
		if key.Matches(msg, m.keys.Back) {
			m.mode = viewStatus
		}
		return m, nil
	}

	return m, nil
}

// handleStatusKey handles keys on the main status screen.
func (m Model) handleStatusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Focus):
		if len(m.order) > 0 {
			m.focus = (m.focus + 1) % len(m.order)
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m, m.clickFocused()

	case key.Matches(msg, m.keys.Copy):
		if state, ok := m.focusedState(); ok && !state.Empty() {
			return m, m.copyToClipboard(state.Text)
		}
		return m, m.status("Nothing to copy", false)

	case key.Matches(msg, m.keys.CopyJSON):
		data, err := json.MarshalIndent(m.entries, "", "  ")
		if err != nil {
			return m, m.status("Failed to marshal JSON: "+err.Error(), true)
		}
		return m, m.copyToClipboard(string(data))

	case key.Matches(msg, m.keys.CopyYAML):
		data, err := yaml.Marshal(m.entries)
		if err != nil {
			return m, m.status("Failed to marshal YAML: "+err.Error(), true)
		}
		return m, m.copyToClipboard(string(data))

	case key.Matches(msg, m.keys.Restart):
		if m.sessions != nil {
			m.sessions.Start()
			return m, m.status("Kernel restart requested", false)
		}
		return m, nil

	case key.Matches(msg, m.keys.EditMode):
		m.publish(events.ModeEdit)
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.publish(events.ModeCommand)
		return m, nil

	case key.Matches(msg, m.keys.ToggleLog):
		m.showLog = !m.showLog
		return m, nil
	}

	// Pass to the event log viewport
	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

// handleDialogKey handles keys while a dialog is on screen.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog == nil {
		m.mode = viewStatus
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.dialog = nil
		m.mode = viewStatus
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if n := len(m.dialog.Buttons); n > 0 {
			m.dialogFocus = (m.dialogFocus + n - 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Focus):
		if n := len(m.dialog.Buttons); n > 0 {
			m.dialogFocus = (m.dialogFocus + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Traceback):
		if len(m.dialog.Traceback) > 0 {
			m.traceback.SetContent(strings.Join(m.dialog.Traceback, "\n"))
			m.traceback.GotoTop()
			m.mode = viewTraceback
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		var onClick func()
		if m.dialogFocus < len(m.dialog.Buttons) {
			onClick = m.dialog.Buttons[m.dialogFocus].OnClick
		}
		m.dialog = nil
		m.mode = viewStatus
		if onClick != nil {
			onClick()
		}
		return m, nil
	}

	return m, nil
}

// handleTracebackKey handles keys in the traceback viewer.
func (m Model) handleTracebackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Traceback):
		m.mode = viewDialog
		return m, nil
	}

	var cmd tea.Cmd
	m.traceback, cmd = m.traceback.Update(msg)
	return m, cmd
}

// publish puts a bare event onto the bus. The router reacts to it like
// any other event, so the UI sees its own keystrokes the same way it
// sees scripted ones.
func (m Model) publish(event string) {
	if m.bus != nil {
		m.bus.Publish(events.Event{Type: event})
	}
}

// clickFocused activates the focused widget's click handler through the
// registry, running the same path a scripted alert would.
func (m Model) clickFocused() tea.Cmd {
	state, ok := m.focusedState()
	if !ok || !state.Clickable {
		return nil
	}
	w, err := m.registry.Get(state.Name)
	if err != nil {
		return m.status(err.Error(), true)
	}
	w.Click()
	return nil
}

func (m Model) focusedState() (status.WidgetState, bool) {
	if m.focus >= len(m.order) {
		return status.WidgetState{}, false
	}
	return m.states[m.order[m.focus]], true
}

// fullTitle is the window title: any transient prefix, the document
// name, then the application name.
func (m Model) fullTitle() string {
	return m.prefix + m.baseTitle + " - statui"
}

func (m Model) logHeight() int {
	return max(3, m.height-8)
}

// copyToClipboard copies text to the system clipboard.
func (m Model) copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := copyText(text, m.cfg)
		return copyResultMsg{err: err}
	}
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case viewDialog:
		return m.viewDialog()
	case viewTraceback:
		return m.viewTraceback()
	case viewHelp:
		return m.viewHelp()
	default:
		return m.viewStatus()
	}
}

func (m Model) viewStatus() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderWidgets())

	if m.showLog {
		b.WriteString("\n\n")
		b.WriteString(m.th.Chrome.Dim.Style().Render(strings.Repeat("─", max(1, m.width))))
		b.WriteString("\n")
		b.WriteString(m.log.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader shows the document title with any transient prefix, the
// kernel indicator and the editor mode indicator.
func (m Model) renderHeader() string {
	title := m.th.Chrome.Title.Style().Render(m.prefix + m.baseTitle)

	glyphStyle := m.th.Chrome.Highlight.Style()
	if m.kernelIcon == status.IconDead || m.kernelIcon == status.IconDisconnected {
		glyphStyle = m.th.SeverityStyle(status.SeverityDanger)
	}
	kernel := glyphStyle.Render(m.th.Glyph(m.kernelIcon)) + " " + m.kernelTip
	mode := m.th.Chrome.Highlight.Style().Render(m.th.ModeGlyph(m.inputMode)) + " " + m.inputTip

	gap := m.th.Chrome.Dim.Style().Render("   ")
	return title + gap + kernel + gap + mode
}

func (m Model) renderWidgets() string {
	if len(m.order) == 0 {
		return m.th.Chrome.Dim.Style().Render("waiting for events...")
	}

	var lines []string
	for i, name := range m.order {
		state := m.states[name]

		marker := "  "
		if i == m.focus {
			marker = m.th.Chrome.Highlight.Style().Render("> ")
		}
		label := m.th.Chrome.Dim.Style().Render(fmt.Sprintf("%-10s", name+":"))
		line := marker + label + m.th.SeverityStyle(state.Severity).Render(state.Text)
		if state.Clickable {
			line += m.th.Chrome.Dim.Style().Render("  [enter: details]")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLog() string {
	if len(m.entries) == 0 {
		return m.th.Chrome.Dim.Style().Render("no events yet")
	}

	var lines []string
	for _, e := range m.entries {
		lines = append(lines, fmt.Sprintf("%s  %s", e.Time.Format("15:04:05.000"), e.Event))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		style := m.th.SeverityStyle(status.SeverityInfo)
		if m.statusErr {
			style = m.th.SeverityStyle(status.SeverityDanger)
		}
		return style.Render(m.statusMsg)
	}

	bar := m.help.View(m.keys)
	if !m.lastEvent.IsZero() {
		age := m.th.Chrome.Dim.Style().Render("last event " + humanize.Time(m.lastEvent))
		gap := m.width - lipgloss.Width(bar) - lipgloss.Width(age)
		if gap > 1 {
			return bar + strings.Repeat(" ", gap) + age
		}
	}
	return bar
}

func (m Model) viewDialog() string {
	d := m.dialog
	if d == nil {
		return m.viewStatus()
	}

	titleStyle := m.th.SeverityStyle(status.SeverityDanger).Bold(true)
	bodyWidth := min(72, max(30, m.width-8))

	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(bodyWidth).Render(d.Body))
	b.WriteString("\n\n")
	b.WriteString(m.renderButtons(d))
	if len(d.Traceback) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.th.Chrome.Dim.Style().Render(
			fmt.Sprintf("t: view traceback (%d lines)", len(d.Traceback))))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.th.Chrome.Border)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderButtons(d *status.Modal) string {
	if len(d.Buttons) == 0 {
		return m.th.Chrome.Dim.Style().Render("enter: dismiss")
	}

	var parts []string
	for i, btn := range d.Buttons {
		style := lipgloss.NewStyle().Padding(0, 1)
		switch btn.Style {
		case status.ButtonPrimary:
			style = style.Inherit(m.th.Chrome.Highlight.Style())
		case status.ButtonDanger:
			style = style.Inherit(m.th.SeverityStyle(status.SeverityDanger))
		}

		label := btn.Label
		if i == m.dialogFocus {
			style = style.Reverse(true)
			label = "[ " + label + " ]"
		} else {
			label = "  " + label + "  "
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewTraceback() string {
	header := m.th.Chrome.Title.Style().Render("Traceback")
	hint := m.th.Chrome.Dim.Style().Render("esc: back   j/k: scroll")
	return header + "\n" + m.traceback.View() + "\n" + hint
}

func (m Model) viewHelp() string {
	titleStyle := m.th.Chrome.Title.Style().MarginBottom(1)
	sectionStyle := m.th.Chrome.Dim.Style()
	keyStyle := m.th.Chrome.Highlight.Style()

	s := titleStyle.Render("Keyboard Shortcuts") + "\n\n"

	s += sectionStyle.Render("Status area") + "\n"
	s += keyStyle.Render("  tab") + "          Switch focused widget\n"
	s += keyStyle.Render("  enter") + "        Open details for a clickable alert\n"
	s += keyStyle.Render("  c") + "            Copy focused status text\n"
	s += keyStyle.Render("  C") + "            Copy event log as JSON\n"
	s += keyStyle.Render("  alt+c") + "        Copy event log as YAML\n"
	s += keyStyle.Render("  e") + "            Toggle the event log\n"
	s += keyStyle.Render("  j/k") + "          Scroll the event log\n"
	s += "\n"

	s += sectionStyle.Render("Kernel") + "\n"
	s += keyStyle.Render("  r") + "            Restart the kernel\n"
	s += keyStyle.Render("  i") + "            Switch to edit mode\n"
	s += keyStyle.Render("  esc") + "          Switch to command mode\n"
	s += "\n"

	s += sectionStyle.Render("Dialogs") + "\n"
	s += keyStyle.Render("  ←/→, h/l") + "     Choose a button\n"
	s += keyStyle.Render("  enter") + "        Activate the focused button\n"
	s += keyStyle.Render("  t") + "            View the traceback, when present\n"
	s += keyStyle.Render("  esc") + "          Dismiss\n"
	s += "\n"

	s += sectionStyle.Render("General") + "\n"
	s += keyStyle.Render("  ?") + "            Toggle this help\n"
	s += keyStyle.Render("  q") + "            Quit\n"

	s += "\n" + sectionStyle.Render("Press ? or esc to return")

	return s
}
