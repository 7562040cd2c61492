package events

import "time"

// Kernel lifecycle events published by the kernel connection layer.
const (
	KernelCreated          = "kernel.created"
	KernelStarting         = "kernel.starting"
	KernelReady            = "kernel.ready"
	KernelIdle             = "kernel.idle"
	KernelBusy             = "kernel.busy"
	KernelRestarting       = "kernel.restarting"
	KernelAutorestarting   = "kernel.autorestarting"
	KernelInterrupting     = "kernel.interrupting"
	KernelReconnecting     = "kernel.reconnecting"
	KernelConnected        = "kernel.connected"
	KernelDisconnected     = "kernel.disconnected"
	KernelConnectionFailed = "kernel.connection_failed"
	KernelKilled           = "kernel.killed"
	KernelDead             = "kernel.dead"
)

// SessionStartFailed reports that the server could not start a kernel for
// the session. Unlike KernelDead it carries a KernelFailure payload.
const SessionStartFailed = "session.start_failed"

// Notebook document lifecycle events.
const (
	NotebookLoading    = "notebook.loading"
	NotebookLoaded     = "notebook.loaded"
	NotebookSaving     = "notebook.saving"
	NotebookSaved      = "notebook.saved"
	NotebookSaveFailed = "notebook.save_failed"
)

// Checkpoint events.
const (
	CheckpointCreated       = "checkpoint.created"
	CheckpointFailed        = "checkpoint.failed"
	CheckpointDeleted       = "checkpoint.deleted"
	CheckpointDeleteFailed  = "checkpoint.delete_failed"
	CheckpointRestoring     = "checkpoint.restoring"
	CheckpointRestoreFailed = "checkpoint.restore_failed"
)

// Autosave events.
const (
	AutosaveEnabled  = "autosave.enabled"
	AutosaveDisabled = "autosave.disabled"
)

// Editor mode events published by the frontend input layer.
const (
	ModeEdit    = "mode.edit"
	ModeCommand = "mode.command"
)

// Retry accompanies events the connection layer raises repeatedly while it
// recovers (automatic restart, reconnect). Attempt counts from 1.
type Retry struct {
	Attempt int
}

// SaveFailure carries the server-side reason a notebook save was rejected.
type SaveFailure struct {
	Reason string
}

// Checkpoint describes a checkpoint reported by the server.
type Checkpoint struct {
	LastModified time.Time
}

// Autosave carries the interval the autosaver settled on.
type Autosave struct {
	Interval time.Duration
}

// KernelFailure is the server-reported error for a kernel that could not be
// started. ShortMessage is suitable for the status area; Message and the
// optional Traceback lines belong in a dialog.
type KernelFailure struct {
	Message      string
	ShortMessage string
	Traceback    []string
}

// Info describes one recognized event for tooling output.
type Info struct {
	Name    string `json:"name" yaml:"name"`
	Group   string `json:"group" yaml:"group"`
	Payload string `json:"payload,omitempty" yaml:"payload,omitempty"`
	Summary string `json:"summary" yaml:"summary"`
}

var catalog = []Info{
	{KernelCreated, "kernel", "", "kernel process created"},
	{KernelStarting, "kernel", "", "kernel is starting up"},
	{KernelReady, "kernel", "", "kernel finished starting"},
	{KernelIdle, "kernel", "", "kernel returned to idle"},
	{KernelBusy, "kernel", "", "kernel is executing"},
	{KernelRestarting, "kernel", "", "user-requested restart in progress"},
	{KernelAutorestarting, "kernel", "attempt", "kernel died, automatic restart attempt"},
	{KernelInterrupting, "kernel", "", "interrupt signal sent to the kernel"},
	{KernelReconnecting, "kernel", "", "connection lost, reconnect in progress"},
	{KernelConnected, "kernel", "", "connection (re)established"},
	{KernelDisconnected, "kernel", "", "connection lost"},
	{KernelConnectionFailed, "kernel", "attempt", "reconnect attempt failed"},
	{KernelKilled, "kernel", "", "kernel was shut down"},
	{KernelDead, "kernel", "", "kernel died and automatic restart failed"},
	{SessionStartFailed, "session", "message, short_message, traceback", "server could not start the kernel"},
	{NotebookLoading, "notebook", "", "notebook is loading"},
	{NotebookLoaded, "notebook", "", "notebook finished loading"},
	{NotebookSaving, "notebook", "", "save in progress"},
	{NotebookSaved, "notebook", "", "save completed"},
	{NotebookSaveFailed, "notebook", "reason", "save rejected by the server"},
	{CheckpointCreated, "checkpoint", "last_modified", "checkpoint written"},
	{CheckpointFailed, "checkpoint", "", "checkpoint could not be written"},
	{CheckpointDeleted, "checkpoint", "", "checkpoint removed"},
	{CheckpointDeleteFailed, "checkpoint", "", "checkpoint removal failed"},
	{CheckpointRestoring, "checkpoint", "", "revert to checkpoint in progress"},
	{CheckpointRestoreFailed, "checkpoint", "", "revert to checkpoint failed"},
	{AutosaveEnabled, "autosave", "interval", "autosave turned on"},
	{AutosaveDisabled, "autosave", "", "autosave turned off"},
	{ModeEdit, "mode", "", "editor entered edit mode"},
	{ModeCommand, "mode", "", "editor entered command mode"},
}

// Catalog returns every event the status router recognizes, in stable
// order. The slice is a copy.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Known reports whether name is a recognized event name.
func Known(name string) bool {
	for _, info := range catalog {
		if info.Name == name {
			return true
		}
	}
	return false
}
