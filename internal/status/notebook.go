package status

import (
	"fmt"
	"time"

	"github.com/jmylchreest/statui/internal/events"
)

// reduceNotebook maps one document lifecycle event onto presentation
// effects for the notebook widget. All rules are stateless; malformed
// payloads fall back to the generic text for the event.
func reduceNotebook(ev events.Event) []effect {
	switch ev.Type {
	case events.NotebookLoading:
		return []effect{display("Loading notebook", SeverityNone, 500*time.Millisecond)}

	case events.NotebookLoaded:
		return []effect{display("Notebook loaded", SeverityNone, 500*time.Millisecond)}

	case events.NotebookSaving:
		return []effect{display("Saving notebook", SeverityNone, 500*time.Millisecond)}

	case events.NotebookSaved:
		return []effect{display("Notebook saved", SeverityNone, 2*time.Second)}

	case events.NotebookSaveFailed:
		text := "Notebook save failed"
		if f, ok := saveFailureOf(ev.Data); ok && f.Reason != "" {
			text = f.Reason
		}
		return []effect{display(text, SeverityWarning, 0)}

	case events.CheckpointCreated:
		text := "Checkpoint created"
		if cp, ok := checkpointOf(ev.Data); ok && !cp.LastModified.IsZero() {
			// Server timestamps arrive in UTC; show the user's wall clock.
			text = fmt.Sprintf("%s: %s", text, cp.LastModified.Local().Format("15:04:05"))
		}
		return []effect{display(text, SeverityNone, 2*time.Second)}

	case events.CheckpointFailed:
		return []effect{display("Checkpoint failed", SeverityWarning, 0)}

	case events.CheckpointDeleted:
		return []effect{display("Checkpoint deleted", SeverityNone, 500*time.Millisecond)}

	case events.CheckpointDeleteFailed:
		return []effect{display("Checkpoint delete failed", SeverityWarning, 0)}

	case events.CheckpointRestoring:
		return []effect{display("Restoring to checkpoint...", SeverityNone, 500*time.Millisecond)}

	case events.CheckpointRestoreFailed:
		return []effect{display("Checkpoint restore failed", SeverityWarning, 0)}

	case events.AutosaveDisabled:
		return []effect{display("Autosave disabled", SeverityNone, 2*time.Second)}

	case events.AutosaveEnabled:
		text := "Autosave enabled"
		if a, ok := autosaveOf(ev.Data); ok && a.Interval > 0 {
			text = fmt.Sprintf("Saving every %ds", int(a.Interval.Seconds()))
		}
		return []effect{display(text, SeverityNone, time.Second)}
	}

	return nil
}

func saveFailureOf(data any) (events.SaveFailure, bool) {
	switch v := data.(type) {
	case events.SaveFailure:
		return v, true
	case *events.SaveFailure:
		if v != nil {
			return *v, true
		}
	}
	return events.SaveFailure{}, false
}

func checkpointOf(data any) (events.Checkpoint, bool) {
	switch v := data.(type) {
	case events.Checkpoint:
		return v, true
	case *events.Checkpoint:
		if v != nil {
			return *v, true
		}
	}
	return events.Checkpoint{}, false
}

func autosaveOf(data any) (events.Autosave, bool) {
	switch v := data.(type) {
	case events.Autosave:
		return v, true
	case *events.Autosave:
		if v != nil {
			return *v, true
		}
	}
	return events.Autosave{}, false
}
