package script

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmylchreest/statui/internal/config"
	"github.com/jmylchreest/statui/internal/events"
)

// RestartSequence returns the event sequence for a fresh kernel start.
// It backs the "Manual Restart" dialog button.
func RestartSequence() *Script {
	ms := func(n int) config.Duration { return config.Duration(time.Duration(n) * time.Millisecond) }
	return &Script{
		Name:        "restart",
		Description: "Kernel startup sequence.",
		Steps: []Step{
			{Event: events.KernelCreated},
			{Delay: ms(300), Event: events.KernelStarting},
			{Delay: ms(1200), Event: events.KernelReady},
			{Delay: ms(200), Event: events.KernelIdle},
		},
	}
}

// Starter replays the kernel startup sequence when a manual restart is
// requested. The context bounds the lifetime of the playback goroutine.
type Starter struct {
	ctx    context.Context
	bus    events.Bus
	logger *slog.Logger
}

// NewStarter creates a session starter publishing onto bus.
func NewStarter(ctx context.Context, bus events.Bus, logger *slog.Logger) *Starter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Starter{ctx: ctx, bus: bus, logger: logger}
}

// Start begins a kernel startup sequence in the background. Repeated
// calls overlap; the bus serialises their events.
func (s *Starter) Start() {
	s.logger.Debug("manual session start requested")
	player := NewPlayer(s.bus, RestartSequence(), 1, false, s.logger)
	go player.Run(s.ctx)
}
