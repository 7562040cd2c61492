package status

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface captures every state a widget publishes. Auto-clear
// timers fire on their own goroutines, so access is locked.
type recordingSurface struct {
	mu     sync.Mutex
	states []WidgetState
}

func (s *recordingSurface) Apply(state WidgetState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, state)
}

func (s *recordingSurface) snapshot() []WidgetState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]WidgetState, len(s.states))
	copy(out, s.states)
	return out
}

func TestWidget_SetMessage(t *testing.T) {
	w := newWidget("kernel", nil)
	w.SetMessage("Restarting kernel", 0)

	state := w.State()
	assert.Equal(t, "kernel", state.Name)
	assert.Equal(t, "Restarting kernel", state.Text)
	assert.Equal(t, SeverityNone, state.Severity)
	assert.True(t, state.Sticky)
	assert.False(t, state.Clickable)
	assert.NotEmpty(t, state.UpdateID)
}

func TestWidget_SeverityHelpers(t *testing.T) {
	tests := []struct {
		name     string
		show     func(w *Widget)
		severity Severity
	}{
		{"info", func(w *Widget) { w.Info("Connected", 0) }, SeverityInfo},
		{"warning", func(w *Widget) { w.Warning("Connecting to kernel", 0) }, SeverityWarning},
		{"danger", func(w *Widget) { w.Danger("Dead kernel", 0, nil) }, SeverityDanger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWidget("kernel", nil)
			tt.show(w)
			assert.Equal(t, tt.severity, w.State().Severity)
		})
	}
}

func TestWidget_AutoClear(t *testing.T) {
	w := newWidget("notebook", nil)
	w.SetMessage("Saving notebook", 30*time.Millisecond)

	require.Eventually(t, func() bool {
		return w.State().Empty()
	}, 2*time.Second, 10*time.Millisecond)

	state := w.State()
	assert.Equal(t, SeverityNone, state.Severity)
	assert.False(t, state.Sticky)
}

func TestWidget_NewerDisplaySupersedesPendingClear(t *testing.T) {
	w := newWidget("kernel", nil)
	w.Info("Kernel Created", 30*time.Millisecond)
	w.Warning("Connecting to kernel", 0)

	// Give the superseded timer ample time to have fired.
	time.Sleep(120 * time.Millisecond)

	state := w.State()
	assert.Equal(t, "Connecting to kernel", state.Text)
	assert.Equal(t, SeverityWarning, state.Severity)
}

func TestWidget_OvertakenSnapshotDropped(t *testing.T) {
	rec := &recordingSurface{}
	w := newWidget("kernel", rec)

	// Take a clear snapshot the way an expiring timer does, then let a
	// display reach the surface before it.
	w.mu.Lock()
	w.resetLocked()
	seq, stale := w.snapshotLocked()
	w.mu.Unlock()

	w.Warning("Connecting to kernel", 0)
	w.apply(seq, stale)

	states := rec.snapshot()
	require.Len(t, states, 1)
	assert.Equal(t, "Connecting to kernel", states[0].Text)
	assert.Equal(t, w.State().Text, states[0].Text)
}

func TestWidget_StickyFlag(t *testing.T) {
	w := newWidget("kernel", nil)

	w.Warning("Connecting to kernel", 0)
	assert.True(t, w.State().Sticky)

	w.Info("Connected", 500*time.Millisecond)
	assert.False(t, w.State().Sticky, "timed message is not sticky")

	w.Clear()
	assert.False(t, w.State().Sticky, "cleared widget keeps nothing")
}

func TestWidget_ClearRemovesClickHandler(t *testing.T) {
	w := newWidget("kernel", nil)
	w.Danger("Dead kernel", 0, func() {})
	require.True(t, w.State().Clickable)

	w.Clear()

	state := w.State()
	assert.True(t, state.Empty())
	assert.False(t, state.Clickable)
	assert.False(t, w.Click())
}

func TestWidget_ClickRunsCurrentHandler(t *testing.T) {
	w := newWidget("kernel", nil)

	clicks := 0
	w.Danger("Dead kernel", 0, func() { clicks++ })

	assert.True(t, w.Click())
	assert.True(t, w.Click())
	assert.Equal(t, 2, clicks)
}

func TestWidget_ClickWithoutHandler(t *testing.T) {
	w := newWidget("kernel", nil)
	w.Info("Connected", 0)
	assert.False(t, w.Click())
}

func TestWidget_SurfaceSeesEveryChange(t *testing.T) {
	rec := &recordingSurface{}
	w := newWidget("notebook", rec)

	w.SetMessage("Saving notebook", 0)
	w.SetMessage("Notebook saved", 0)
	w.Clear()

	states := rec.snapshot()
	require.Len(t, states, 3)
	assert.Equal(t, "Saving notebook", states[0].Text)
	assert.Equal(t, "Notebook saved", states[1].Text)
	assert.True(t, states[2].Empty())
}

func TestWidget_SurfaceSeesAutoClear(t *testing.T) {
	rec := &recordingSurface{}
	w := newWidget("notebook", rec)

	w.SetMessage("Notebook loaded", 30*time.Millisecond)

	require.Eventually(t, func() bool {
		states := rec.snapshot()
		return len(states) == 2 && states[1].Empty()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWidget_UpdateIDsDiffer(t *testing.T) {
	w := newWidget("kernel", nil)
	w.Info("Kernel Created", 0)
	first := w.State().UpdateID
	w.Info("Kernel ready", 0)
	assert.NotEqual(t, first, w.State().UpdateID)
}
