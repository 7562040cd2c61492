package desktop

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"golang.org/x/time/rate"

	"github.com/jmylchreest/statui/internal/config"
	"github.com/jmylchreest/statui/internal/status"
)

const (
	// notifyInterface is the freedesktop notification interface name.
	notifyInterface = "org.freedesktop.Notifications"
	// notifyPath is the notification object path.
	notifyPath = "/org/freedesktop/Notifications"
)

// sender abstracts the notification daemon calls so tests can capture
// them without a session bus.
type sender interface {
	Notify(appName string, replacesID uint32, icon, summary string, urgency byte) (uint32, error)
	Close(id uint32) error
}

// Mirror forwards sticky warning and danger widget states to the desktop
// notification daemon. It implements status.Surface and sits behind
// status.Fanout alongside the terminal surface.
type Mirror struct {
	appName     string
	minInterval time.Duration
	logger      *slog.Logger

	mu       sync.Mutex
	send     sender
	limiter  *rate.Limiter
	replaces map[string]uint32    // widget name -> on-screen notification ID
	lastSent map[string]time.Time // widget name + text -> last forward time
}

// NewMirror creates a mirror connected to the session bus.
func NewMirror(cfg config.MirrorConfig, logger *slog.Logger) (*Mirror, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	m := newMirror(cfg, logger)
	m.send = &busSender{obj: conn.Object(notifyInterface, notifyPath)}
	return m, nil
}

func newMirror(cfg config.MirrorConfig, logger *slog.Logger) *Mirror {
	if logger == nil {
		logger = slog.Default()
	}
	appName := cfg.AppName
	if appName == "" {
		appName = config.DefaultMirrorAppName
	}
	return &Mirror{
		appName:     appName,
		minInterval: cfg.MinInterval.Duration(),
		logger:      logger,
		limiter:     rate.NewLimiter(rate.Every(time.Second), 3),
		replaces:    make(map[string]uint32),
		lastSent:    make(map[string]time.Time),
	}
}

// Apply forwards state to the desktop when it carries a sticky alert,
// and withdraws the widget's notification otherwise.
func (m *Mirror) Apply(state status.WidgetState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !mirrorable(state) {
		m.closeLocked(state.Name)
		return
	}

	// The same alert text repeating within minInterval is noise, but a
	// changed text always goes out so the on-screen notification never
	// lags the status area.
	key := state.Name + "\x00" + state.Text
	if last, ok := m.lastSent[key]; ok && time.Since(last) < m.minInterval {
		m.logger.Debug("desktop mirror rate-limited", "widget", state.Name, "text", state.Text)
		return
	}
	if !m.limiter.Allow() {
		m.logger.Debug("desktop mirror burst-limited", "widget", state.Name)
		return
	}

	icon := "dialog-warning"
	urgency := byte(1)
	if state.Severity == status.SeverityDanger {
		icon = "dialog-error"
		urgency = 2
	}

	id, err := m.send.Notify(m.appName, m.replaces[state.Name], icon, state.Text, urgency)
	if err != nil {
		m.logger.Warn("desktop notification failed", "widget", state.Name, "error", err)
		return
	}

	m.replaces[state.Name] = id
	m.lastSent[key] = time.Now()
	m.logger.Debug("mirrored alert to desktop", "widget", state.Name, "id", id)
}

// Close withdraws every notification the mirror has on screen.
func (m *Mirror) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name := range m.replaces {
		m.closeLocked(name)
	}
}

func (m *Mirror) closeLocked(name string) {
	id, ok := m.replaces[name]
	if !ok {
		return
	}
	delete(m.replaces, name)
	if err := m.send.Close(id); err != nil {
		m.logger.Debug("closing desktop notification failed", "widget", name, "error", err)
	}
}

// mirrorable reports whether a state warrants a desktop notification.
// Transient messages and informational updates stay in the terminal.
func mirrorable(state status.WidgetState) bool {
	if state.Text == "" || !state.Sticky {
		return false
	}
	return state.Severity >= status.SeverityWarning
}

// busSender performs the real D-Bus calls.
type busSender struct {
	obj dbus.BusObject
}

func (s *busSender) Notify(appName string, replacesID uint32, icon, summary string, urgency byte) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(urgency),
		"desktop-entry": dbus.MakeVariant(appName),
	}
	// Zero expiry keeps the notification up until we close it, matching
	// the sticky semantics of the mirrored alert.
	var id uint32
	call := s.obj.Call(notifyInterface+".Notify", 0,
		appName, replacesID, icon, summary, "", []string{}, hints, int32(0))
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *busSender) Close(id uint32) error {
	return s.obj.Call(notifyInterface+".CloseNotification", 0, id).Err
}
