package script

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/statui/internal/events"
)

func TestParse_ValidScript(t *testing.T) {
	data := []byte(`
name: sample
description: A short session.
steps:
  - event: kernel.created
  - delay: 250ms
    event: kernel.starting
  - delay: 1s
    event: kernel.ready
`)

	s, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "sample", s.Name)
	assert.Equal(t, "A short session.", s.Description)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, events.KernelStarting, s.Steps[1].Event)
	assert.Equal(t, 250*time.Millisecond, s.Steps[1].Delay.Duration())
	assert.Equal(t, time.Second, s.Steps[2].Delay.Duration())
}

func TestParse_BareMillisecondDelay(t *testing.T) {
	data := []byte(`
steps:
  - delay: 500
    event: kernel.idle
`)

	s, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, s.Steps[0].Delay.Duration())
}

func TestParse_RejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("steps: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing script")
}

func TestParse_RejectsEmptyScript(t *testing.T) {
	_, err := Parse([]byte("name: empty\nsteps: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no steps")
}

func TestParse_RejectsUnknownEvent(t *testing.T) {
	data := []byte(`
steps:
  - event: kernel.created
  - event: kernel.warp_drive
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2")
	assert.Contains(t, err.Error(), `unknown event "kernel.warp_drive"`)
}

func TestParse_RejectsMissingEventName(t *testing.T) {
	data := []byte(`
steps:
  - delay: 100ms
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing event name")
}

func TestParse_RejectsBadPayloadType(t *testing.T) {
	data := []byte(`
steps:
  - event: kernel.autorestarting
    payload:
      attempt: first
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kernel.autorestarting")
	assert.Contains(t, err.Error(), "expected integer")
}

func TestEventAt_RetryPayload(t *testing.T) {
	data := []byte(`
steps:
  - event: kernel.autorestarting
    payload:
      attempt: 2
`)

	s, err := Parse(data)
	require.NoError(t, err)

	ev := s.EventAt(0)
	assert.Equal(t, events.KernelAutorestarting, ev.Type)
	assert.Equal(t, events.Retry{Attempt: 2}, ev.Data)
}

func TestEventAt_SaveFailurePayload(t *testing.T) {
	data := []byte(`
steps:
  - event: notebook.save_failed
    payload:
      reason: disk full
`)

	s, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, events.SaveFailure{Reason: "disk full"}, s.EventAt(0).Data)
}

func TestEventAt_CheckpointPayload(t *testing.T) {
	data := []byte(`
steps:
  - event: checkpoint.created
    payload:
      last_modified: "2025-06-02T14:05:09Z"
`)

	s, err := Parse(data)
	require.NoError(t, err)

	checkpoint, ok := s.EventAt(0).Data.(events.Checkpoint)
	require.True(t, ok, "expected checkpoint payload, got %T", s.EventAt(0).Data)
	want := time.Date(2025, 6, 2, 14, 5, 9, 0, time.UTC)
	assert.True(t, checkpoint.LastModified.Equal(want), "got %v", checkpoint.LastModified)
}

func TestEventAt_AutosavePayload(t *testing.T) {
	tests := []struct {
		name     string
		interval string
		want     time.Duration
	}{
		{name: "milliseconds", interval: "120000", want: 2 * time.Minute},
		{name: "duration string", interval: `"2m"`, want: 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`
steps:
  - event: autosave.enabled
    payload:
      interval: ` + tt.interval + `
`)

			s, err := Parse(data)
			require.NoError(t, err)
			assert.Equal(t, events.Autosave{Interval: tt.want}, s.EventAt(0).Data)
		})
	}
}

func TestEventAt_KernelFailurePayload(t *testing.T) {
	data := []byte(`
steps:
  - event: session.start_failed
    payload:
      short_message: Kernel error
      message: Failed to start the kernel
      traceback:
        - "Traceback (most recent call last):"
        - "ImportError: nope"
`)

	s, err := Parse(data)
	require.NoError(t, err)

	failure, ok := s.EventAt(0).Data.(events.KernelFailure)
	require.True(t, ok, "expected kernel failure payload, got %T", s.EventAt(0).Data)
	assert.Equal(t, "Kernel error", failure.ShortMessage)
	assert.Equal(t, "Failed to start the kernel", failure.Message)
	assert.Equal(t, []string{"Traceback (most recent call last):", "ImportError: nope"}, failure.Traceback)
}

func TestEventAt_NoPayload(t *testing.T) {
	data := []byte(`
steps:
  - event: kernel.idle
`)

	s, err := Parse(data)
	require.NoError(t, err)
	assert.Nil(t, s.EventAt(0).Data)
}
