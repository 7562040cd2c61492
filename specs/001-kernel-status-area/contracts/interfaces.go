// Package contracts defines the interfaces for statui.
// This file serves as documentation and is not compiled.
// Actual implementations live in internal/ packages.
package contracts

import "time"

// =============================================================================
// Model Types
// =============================================================================

// Severity classifies a status message.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityDanger
)

// WidgetState is an immutable snapshot of one status widget, delivered
// to its surface on every observable change.
type WidgetState struct {
	Name      string    // registry key ("kernel", "notebook")
	UpdateID  string    // ULID, unique per update
	Text      string    // empty means the widget shows nothing
	Severity  Severity  //
	Clickable bool      // true when an activation handler is armed
	Sticky    bool      // true when a non-empty message was shown with no auto-clear timeout
	UpdatedAt time.Time //
}

// IconState names a kernel indicator rendering.
type IconState string

const (
	IconIdle         IconState = "idle"
	IconBusy         IconState = "busy"
	IconDead         IconState = "dead"
	IconDisconnected IconState = "disconnected"
)

// Mode is the editor input modality.
type Mode int

const (
	ModeCommand Mode = iota
	ModeEdit
)

// ButtonStyle selects how a dialog button is rendered.
type ButtonStyle int

const (
	ButtonDefault ButtonStyle = iota
	ButtonPrimary
	ButtonDanger
)

// Button is one dialog action. A nil OnClick simply dismisses.
type Button struct {
	Label   string
	Style   ButtonStyle
	OnClick func()
}

// Modal describes one dialog. Dismissing without choosing a button is
// always possible. Traceback lines, when present, are shown in a
// read-only viewer.
type Modal struct {
	Title     string
	Body      string
	Traceback []string
	Buttons   []Button
	OnOpen    func()
}

// =============================================================================
// Widget Interface
// =============================================================================

// Widget is one named message slot in the status area.
// Every setter replaces the previous message entirely (text, severity,
// click handler and pending auto-clear timer).
type Widget interface {
	// Name returns the registry key.
	Name() string

	// SetMessage shows neutral text. A positive timeout schedules an
	// auto-clear; zero or less makes the message sticky.
	SetMessage(text string, timeout time.Duration)

	// Info and Warning are severity-tagged variants of SetMessage.
	Info(text string, timeout time.Duration)
	Warning(text string, timeout time.Duration)

	// Danger shows an alert. A non-nil onClick arms the widget for
	// activation.
	Danger(text string, timeout time.Duration, onClick func())

	// Clear empties the widget immediately, dropping any armed click
	// handler and pending timer.
	Clear()

	// Click runs the armed handler, if any. Reports whether one ran.
	Click() bool

	// State returns the current snapshot.
	State() WidgetState
}

// Surface renders widget state somewhere visible. Implementations: the
// terminal status area, and the optional desktop notification mirror.
type Surface interface {
	Apply(state WidgetState)
}

// =============================================================================
// Registry Interface
// =============================================================================

// Registry owns the widgets, keyed by unique name.
type Registry interface {
	// Widget returns the named widget, creating it on first use.
	Widget(name string) Widget

	// Create makes a new widget, failing with DuplicateWidgetError if
	// the name is taken.
	Create(name string) (Widget, error)

	// Get returns an existing widget, failing with UnknownWidgetError
	// if the name is unknown.
	Get(name string) (Widget, error)

	// Names lists registered widgets in creation order.
	Names() []string
}

// =============================================================================
// Router Collaborators
// =============================================================================

// ModalPresenter shows dialogs on behalf of the router.
type ModalPresenter interface {
	Show(m Modal)
}

// TitleBar is the window title collaborator. Refresh recomputes the
// base title, clearing any prefix; SetPrefix prepends to the current
// base.
type TitleBar interface {
	Refresh()
	SetPrefix(prefix string)
}

// Indicators is the icon strip collaborator.
type Indicators interface {
	SetKernel(state IconState, tooltip string)
	SetMode(mode Mode, tooltip string)
}

// SessionStarter requests a fresh kernel session on behalf of the user.
// Backs the "Manual Restart" dialog button and the restart key.
type SessionStarter interface {
	Start()
}

// =============================================================================
// Event Bus Interface
// =============================================================================

// Event is one lifecycle occurrence on the bus.
type Event struct {
	Type string    // dotted name, for example "kernel.dead"
	Time time.Time // stamped at publish when zero
	Data any       // typed payload or nil
}

// Bus fans events out to subscribers. Publish never blocks; slow
// subscribers lose events rather than stalling producers.
type Bus interface {
	Publish(e Event)
	Subscribe(buffer int) (<-chan Event, func())
}
