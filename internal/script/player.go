package script

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmylchreest/statui/internal/events"
)

// loopPause separates iterations when a script plays on repeat.
const loopPause = 2 * time.Second

// Player publishes a script's events onto the bus with the recorded
// delays.
type Player struct {
	bus    events.Bus
	script *Script
	speed  float64
	loop   bool
	logger *slog.Logger
}

// NewPlayer creates a player for s. Speed scales delays (2.0 plays twice
// as fast); values at or below zero play at recorded speed.
func NewPlayer(bus events.Bus, s *Script, speed float64, loop bool, logger *slog.Logger) *Player {
	if speed <= 0 {
		speed = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		bus:    bus,
		script: s,
		speed:  speed,
		loop:   loop,
		logger: logger,
	}
}

// Run plays the script until it ends or ctx is cancelled. With looping
// enabled the script restarts from the top after a short pause.
func (p *Player) Run(ctx context.Context) {
	p.logger.Debug("starting script playback",
		"script", p.script.Name,
		"steps", len(p.script.Steps),
		"speed", p.speed,
		"loop", p.loop)

	for {
		if !p.playOnce(ctx) {
			return
		}
		if !p.loop {
			return
		}
		if !p.sleep(ctx, loopPause) {
			return
		}
	}
}

func (p *Player) playOnce(ctx context.Context) bool {
	for i := range p.script.Steps {
		delay := time.Duration(float64(p.script.Steps[i].Delay.Duration()) / p.speed)
		if !p.sleep(ctx, delay) {
			return false
		}
		ev := p.script.EventAt(i)
		p.logger.Debug("publishing scripted event", "event", ev.Type, "step", i+1)
		p.bus.Publish(ev)
	}
	return true
}

func (p *Player) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		// Still yield to cancellation between zero-delay steps.
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
