package status

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmylchreest/statui/internal/events"
)

// Widget names used by the built-in rule groups.
const (
	KernelWidget   = "kernel"
	NotebookWidget = "notebook"
)

// TitleBar is the window title collaborator. Refresh recomputes the base
// title, clearing any prefix; SetPrefix prepends to the current base.
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
type SessionStarter interface {
	Start()
}

// Router turns bus events into widget, dialog, indicator and title
// updates. Handlers are bound at setup and run to completion one event at
// a time. Unknown events are ignored; the bus is shared with subsystems
// this layer does not know about.
type Router struct {
	registry *Registry
	modals   ModalPresenter
	title    TitleBar
	icons    Indicators
	sessions SessionStarter
	logger   *slog.Logger

	mu       sync.Mutex
	phase    KernelPhase
	handlers map[string]func(events.Event)
}

// NewRouter wires a router to its collaborators. Any collaborator may be
// nil; the corresponding effects are skipped.
func NewRouter(registry *Registry, modals ModalPresenter, title TitleBar, icons Indicators, sessions SessionStarter, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		registry: registry,
		modals:   modals,
		title:    title,
		icons:    icons,
		sessions: sessions,
		logger:   logger,
		handlers: make(map[string]func(events.Event)),
	}
}

// BindKernel enables the kernel rule group on the "kernel" widget along
// with the editor mode rules, and puts the mode indicator into its initial
// command-mode state.
func (r *Router) BindKernel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.registry.Widget(KernelWidget)
	handler := func(ev events.Event) { r.dispatchKernelLocked(w, ev) }
	for _, name := range []string{
		events.KernelCreated,
		events.KernelStarting,
		events.KernelReady,
		events.KernelIdle,
		events.KernelBusy,
		events.KernelRestarting,
		events.KernelAutorestarting,
		events.KernelInterrupting,
		events.KernelReconnecting,
		events.KernelConnected,
		events.KernelDisconnected,
		events.KernelConnectionFailed,
		events.KernelKilled,
		events.KernelDead,
		events.SessionStartFailed,
	} {
		r.handlers[name] = handler
	}

	r.handlers[events.ModeEdit] = func(events.Event) { r.applyMode(ModeEdit) }
	r.handlers[events.ModeCommand] = func(events.Event) { r.applyMode(ModeCommand) }

	// The editor starts out in command mode.
	if r.icons != nil {
		r.icons.SetMode(ModeCommand, tooltipCommandMode)
	}
}

// BindNotebook enables the document rule group on the "notebook" widget.
func (r *Router) BindNotebook() {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.registry.Widget(NotebookWidget)
	handler := func(ev events.Event) {
		for _, fx := range reduceNotebook(ev) {
			r.apply(w, fx)
		}
	}
	for _, name := range []string{
		events.NotebookLoading,
		events.NotebookLoaded,
		events.NotebookSaving,
		events.NotebookSaved,
		events.NotebookSaveFailed,
		events.CheckpointCreated,
		events.CheckpointFailed,
		events.CheckpointDeleted,
		events.CheckpointDeleteFailed,
		events.CheckpointRestoring,
		events.CheckpointRestoreFailed,
		events.AutosaveEnabled,
		events.AutosaveDisabled,
	} {
		r.handlers[name] = handler
	}
}

// Dispatch runs the handler bound to ev.Type to completion. Events with
// no handler are a no-op.
func (r *Router) Dispatch(ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	handler, ok := r.handlers[ev.Type]
	if !ok {
		r.logger.Debug("ignoring event", "type", ev.Type)
		return
	}
	handler(ev)
}

// Run dispatches bus events until ctx ends.
func (r *Router) Run(ctx context.Context, bus events.Bus) {
	ch, cancel := bus.Subscribe(64)
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			r.Dispatch(ev)
		}
	}
}

// Phase returns the kernel phase the status area currently reflects.
func (r *Router) Phase() KernelPhase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Router) dispatchKernelLocked(w *Widget, ev events.Event) {
	next, fx := reduceKernel(r.phase, ev)
	if next != r.phase {
		r.logger.Debug("kernel phase change",
			"from", r.phase.String(), "to", next.String(), "event", ev.Type)
	}
	r.phase = next
	for _, f := range fx {
		r.apply(w, f)
	}
}

func (r *Router) applyMode(mode Mode) {
	if r.icons != nil {
		tooltip := tooltipCommandMode
		if mode == ModeEdit {
			tooltip = tooltipEditMode
		}
		r.icons.SetMode(mode, tooltip)
	}
	if r.title != nil {
		r.title.Refresh()
	}
}

// apply resolves one effect into collaborator calls.
func (r *Router) apply(w *Widget, fx effect) {
	switch fx.kind {
	case fxDisplay:
		if fx.click != nil {
			d := *fx.click
			w.Display(fx.text, fx.severity, fx.timeout, func() { r.present(d) })
			return
		}
		w.Display(fx.text, fx.severity, fx.timeout, nil)

	case fxModal:
		r.present(*fx.dialog)

	case fxIcon:
		if r.icons != nil {
			r.icons.SetKernel(fx.icon, fx.tooltip)
		}

	case fxTitlePrefix:
		if r.title != nil {
			r.title.SetPrefix(fx.prefix)
		}

	case fxTitleRefresh:
		if r.title != nil {
			r.title.Refresh()
		}
	}
}

// present converts a declarative dialog into a Modal and shows it.
func (r *Router) present(d dialog) {
	if r.modals == nil {
		return
	}
	m := Modal{
		Title:     d.title,
		Body:      d.body,
		Traceback: append([]string(nil), d.traceback...),
	}
	for _, b := range d.buttons {
		btn := Button{Label: b.label, Style: b.style}
		if b.action == actionStartSession && r.sessions != nil {
			starter := r.sessions
			btn.OnClick = func() { starter.Start() }
		}
		m.Buttons = append(m.Buttons, btn)
	}
	r.modals.Show(m)
}
