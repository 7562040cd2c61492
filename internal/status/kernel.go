package status

import (
	"time"

	"github.com/jmylchreest/statui/internal/events"
)

// KernelPhase is the connectivity and liveness state the status area
// currently reflects.
type KernelPhase int

const (
	PhaseUnknown KernelPhase = iota
	PhaseStarting
	PhaseIdle
	PhaseBusy
	PhaseReconnecting
	PhaseDisconnected
	PhaseDead
)

var phaseNames = map[KernelPhase]string{
	PhaseUnknown:      "unknown",
	PhaseStarting:     "starting",
	PhaseIdle:         "idle",
	PhaseBusy:         "busy",
	PhaseReconnecting: "reconnecting",
	PhaseDisconnected: "disconnected",
	PhaseDead:         "dead",
}

func (p KernelPhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// IconState names a kernel indicator rendering.
type IconState string

const (
	IconIdle         IconState = "idle"
	IconBusy         IconState = "busy"
	IconDead         IconState = "dead"
	IconDisconnected IconState = "disconnected"
)

// Indicator tooltips.
const (
	tooltipIdle         = "Kernel Idle"
	tooltipBusy         = "Kernel Busy"
	tooltipDead         = "Kernel Dead"
	tooltipDisconnected = "No Connection to Kernel"
	tooltipEditMode     = "Edit Mode"
	tooltipCommandMode  = "Command Mode"
)

// Mode is the editor input modality.
type Mode int

const (
	ModeCommand Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "command"
}

type effectKind int

const (
	fxDisplay effectKind = iota
	fxModal
	fxIcon
	fxTitlePrefix
	fxTitleRefresh
)

// effect is one presentation action produced by a rule. Effects are plain
// data so transitions can be compared in tests; the router resolves them
// into collaborator calls.
type effect struct {
	kind effectKind

	// fxDisplay
	text     string
	severity Severity
	timeout  time.Duration
	click    *dialog

	// fxModal
	dialog *dialog

	// fxIcon
	icon    IconState
	tooltip string

	// fxTitlePrefix
	prefix string
}

func display(text string, severity Severity, timeout time.Duration) effect {
	return effect{kind: fxDisplay, text: text, severity: severity, timeout: timeout}
}

// clickable is a sticky display whose activation replays d.
func clickable(text string, severity Severity, d dialog) effect {
	return effect{kind: fxDisplay, text: text, severity: severity, click: &d}
}

func modal(d dialog) effect {
	return effect{kind: fxModal, dialog: &d}
}

func icon(state IconState, tooltip string) effect {
	return effect{kind: fxIcon, icon: state, tooltip: tooltip}
}

func titlePrefix(p string) effect {
	return effect{kind: fxTitlePrefix, prefix: p}
}

func titleRefresh() effect {
	return effect{kind: fxTitleRefresh}
}

// buttonAction is the declarative result of pressing a dialog button.
type buttonAction int

const (
	actionDismiss buttonAction = iota
	actionStartSession
)

type dialogButton struct {
	label  string
	style  ButtonStyle
	action buttonAction
}

// dialog is the declarative form of a Modal. Button actions are resolved
// to collaborator calls when the router presents it, which keeps the
// reducer output comparable and makes click replay deterministic.
type dialog struct {
	title     string
	body      string
	traceback []string
	buttons   []dialogButton
}

func autorestartDialog() dialog {
	return dialog{
		title:   "Kernel Restarting",
		body:    "The kernel appears to have died. It will restart automatically.",
		buttons: []dialogButton{{label: "OK", style: ButtonPrimary}},
	}
}

func connectionFailedDialog() dialog {
	return dialog{
		title: "Connection failed",
		body: "A connection to the notebook server could not be established. " +
			"The notebook will continue trying to reconnect. Check your " +
			"network connection or notebook server configuration.",
		buttons: []dialogButton{{label: "OK", style: ButtonPrimary}},
	}
}

func deadKernelDialog() dialog {
	return dialog{
		title: "Dead kernel",
		body: "The kernel has died, and the automatic restart has failed. " +
			"It is possible the kernel cannot be restarted. If you are not able " +
			"to restart the kernel, you will still be able to save the notebook, " +
			"but running code will no longer work until the notebook is reopened.",
		buttons: []dialogButton{
			{label: "Manual Restart", style: ButtonDanger, action: actionStartSession},
			{label: "Don't restart", style: ButtonDefault, action: actionDismiss},
		},
	}
}

func startFailedDialog(failure events.KernelFailure) dialog {
	return dialog{
		title:     "Failed to start the kernel",
		body:      failure.Message,
		traceback: failure.Traceback,
		buttons:   []dialogButton{{label: "OK", style: ButtonPrimary}},
	}
}

// reduceKernel maps one kernel lifecycle event onto the next phase and the
// presentation effects to apply, in order. Events may arrive in any phase;
// unhandled event names return no effects.
func reduceKernel(phase KernelPhase, ev events.Event) (KernelPhase, []effect) {
	switch ev.Type {
	case events.KernelCreated:
		return phase, []effect{
			display("Kernel Created", SeverityInfo, 500*time.Millisecond),
			titleRefresh(),
		}

	case events.KernelReconnecting:
		return PhaseReconnecting, []effect{
			display("Connecting to kernel", SeverityWarning, 0),
			titleRefresh(),
		}

	case events.KernelConnected:
		return phase, []effect{
			display("Connected", SeverityInfo, 500*time.Millisecond),
			titleRefresh(),
		}

	case events.KernelRestarting:
		return phase, []effect{
			display("Restarting kernel", SeverityNone, 2*time.Second),
			titleRefresh(),
		}

	case events.KernelAutorestarting:
		var fx []effect
		if firstAttempt(ev.Data) {
			fx = append(fx, modal(autorestartDialog()))
		}
		fx = append(fx,
			display("Dead kernel", SeverityDanger, 0),
			icon(IconDead, tooltipDead),
			titleRefresh(),
		)
		return PhaseDead, fx

	case events.KernelInterrupting:
		return phase, []effect{
			display("Interrupting kernel", SeverityNone, 2*time.Second),
		}

	case events.KernelDisconnected:
		return PhaseDisconnected, []effect{
			icon(IconDisconnected, tooltipDisconnected),
			titleRefresh(),
		}

	case events.KernelConnectionFailed:
		var fx []effect
		if firstAttempt(ev.Data) {
			fx = append(fx, modal(connectionFailedDialog()))
		}
		fx = append(fx,
			display("Not Connected", SeverityDanger, 0),
			titleRefresh(),
		)
		return PhaseDisconnected, fx

	case events.KernelKilled:
		return PhaseDead, []effect{
			display("Dead kernel", SeverityDanger, 0),
			icon(IconDead, tooltipDead),
			titleRefresh(),
		}

	case events.KernelDead:
		// Shown immediately and replayed on widget click.
		d := deadKernelDialog()
		return PhaseDead, []effect{
			modal(d),
			clickable("Dead kernel", SeverityDanger, d),
			icon(IconDead, tooltipDead),
			titleRefresh(),
		}

	case events.SessionStartFailed:
		failure := failureOf(ev.Data)
		return PhaseDead, []effect{
			clickable(failure.ShortMessage, SeverityDanger, startFailedDialog(failure)),
			icon(IconDead, tooltipDead),
			titleRefresh(),
		}

	case events.KernelStarting:
		// Refresh first: it resets the base title the prefix applies to.
		return PhaseStarting, []effect{
			titleRefresh(),
			titlePrefix("(Starting) "),
			icon(IconBusy, tooltipBusy),
			display("Kernel starting, please wait...", SeverityNone, 0),
		}

	case events.KernelReady:
		return PhaseIdle, []effect{
			display("Kernel ready", SeverityInfo, 500*time.Millisecond),
			icon(IconIdle, tooltipIdle),
			titleRefresh(),
		}

	case events.KernelIdle:
		return PhaseIdle, []effect{
			icon(IconIdle, tooltipIdle),
		}

	case events.KernelBusy:
		return PhaseBusy, []effect{
			titlePrefix("(Busy) "),
			icon(IconBusy, tooltipBusy),
		}
	}

	return phase, nil
}

// firstAttempt reads the retry counter from a payload. A missing or
// malformed payload counts as the first attempt: an extra dialog is less
// harmful than a silent failure.
func firstAttempt(data any) bool {
	switch v := data.(type) {
	case events.Retry:
		return v.Attempt <= 1
	case *events.Retry:
		if v != nil {
			return v.Attempt <= 1
		}
	}
	return true
}

// failureOf normalizes a startup-failure payload, substituting fallback
// text for missing fields.
func failureOf(data any) events.KernelFailure {
	var failure events.KernelFailure
	switch v := data.(type) {
	case events.KernelFailure:
		failure = v
	case *events.KernelFailure:
		if v != nil {
			failure = *v
		}
	}
	if failure.ShortMessage == "" {
		failure.ShortMessage = "Dead kernel"
	}
	if failure.Message == "" {
		failure.Message = failure.ShortMessage
	}
	return failure
}
