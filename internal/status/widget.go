package status

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Widget is a single named slot in the notification area. Display calls
// replace the current message; a positive timeout schedules an auto-clear,
// zero keeps the message until something replaces it.
type Widget struct {
	name    string
	surface Surface

	mu         sync.Mutex
	text       string
	severity   Severity
	sticky     bool
	onClick    func()
	updateID   string
	updatedAt  time.Time
	clearTimer *time.Timer
	generation uint64
	seq        uint64

	// applyMu orders surface notifications; applied is the sequence of
	// the newest snapshot handed over so far.
	applyMu sync.Mutex
	applied uint64
}

func newWidget(name string, surface Surface) *Widget {
	if surface == nil {
		surface = Discard()
	}
	return &Widget{name: name, surface: surface}
}

// Name returns the registry name of the widget.
func (w *Widget) Name() string {
	return w.name
}

// SetMessage shows a plain message with no severity styling.
func (w *Widget) SetMessage(text string, timeout time.Duration) {
	w.Display(text, SeverityNone, timeout, nil)
}

// Info shows an informational message.
func (w *Widget) Info(text string, timeout time.Duration) {
	w.Display(text, SeverityInfo, timeout, nil)
}

// Warning shows a warning. A zero timeout keeps it until replaced.
func (w *Widget) Warning(text string, timeout time.Duration) {
	w.Display(text, SeverityWarning, timeout, nil)
}

// Danger shows a high-severity message. onClick, when non-nil, runs each
// time the user activates the widget while this message is current.
func (w *Widget) Danger(text string, timeout time.Duration, onClick func()) {
	w.Display(text, SeverityDanger, timeout, onClick)
}

// Display is the general form behind the severity helpers. It supersedes
// any pending auto-clear from an earlier call.
func (w *Widget) Display(text string, severity Severity, timeout time.Duration, onClick func()) {
	w.mu.Lock()
	w.stopTimerLocked()
	w.text = text
	w.severity = severity
	w.sticky = timeout <= 0 && text != ""
	w.onClick = onClick
	w.updateID = ulid.Make().String()
	w.updatedAt = time.Now()
	w.generation++
	if timeout > 0 {
		gen := w.generation
		w.clearTimer = time.AfterFunc(timeout, func() { w.expire(gen) })
	}
	seq, state := w.snapshotLocked()
	w.mu.Unlock()

	w.apply(seq, state)
}

// Clear removes the current message immediately.
func (w *Widget) Clear() {
	w.mu.Lock()
	w.stopTimerLocked()
	w.generation++
	w.resetLocked()
	seq, state := w.snapshotLocked()
	w.mu.Unlock()

	w.apply(seq, state)
}

// Click runs the current click handler, if any, and reports whether one
// was attached. The handler runs without the widget lock held.
func (w *Widget) Click() bool {
	w.mu.Lock()
	handler := w.onClick
	w.mu.Unlock()
	if handler == nil {
		return false
	}
	handler()
	return true
}

// State returns a snapshot of the current widget state.
func (w *Widget) State() WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

// expire clears the widget when an auto-clear timer fires, unless a newer
// display call superseded the timer while the callback was in flight.
func (w *Widget) expire(gen uint64) {
	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		return
	}
	w.clearTimer = nil
	w.resetLocked()
	seq, state := w.snapshotLocked()
	w.mu.Unlock()

	w.apply(seq, state)
}

// apply hands one snapshot to the surface. Snapshots are sequenced under
// mu but delivered outside it; an expiry snapshot overtaken by a newer
// display in that window is dropped so the surface never regresses.
func (w *Widget) apply(seq uint64, state WidgetState) {
	w.applyMu.Lock()
	defer w.applyMu.Unlock()
	if seq < w.applied {
		return
	}
	w.applied = seq
	w.surface.Apply(state)
}

func (w *Widget) resetLocked() {
	w.text = ""
	w.severity = SeverityNone
	w.sticky = false
	w.onClick = nil
	w.updateID = ulid.Make().String()
	w.updatedAt = time.Now()
}

// snapshotLocked stamps the current state with its delivery sequence.
func (w *Widget) snapshotLocked() (uint64, WidgetState) {
	w.seq++
	return w.seq, w.stateLocked()
}

func (w *Widget) stopTimerLocked() {
	if w.clearTimer != nil {
		w.clearTimer.Stop()
		w.clearTimer = nil
	}
}

func (w *Widget) stateLocked() WidgetState {
	return WidgetState{
		Name:      w.name,
		UpdateID:  w.updateID,
		Text:      w.text,
		Severity:  w.severity,
		Clickable: w.onClick != nil,
		Sticky:    w.sticky,
		UpdatedAt: w.updatedAt,
	}
}
