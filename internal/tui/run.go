package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/statui/internal/config"
	"github.com/jmylchreest/statui/internal/desktop"
	"github.com/jmylchreest/statui/internal/events"
	"github.com/jmylchreest/statui/internal/script"
	"github.com/jmylchreest/statui/internal/status"
	"github.com/jmylchreest/statui/internal/theme"
)

// RunOptions configures the TUI.
type RunOptions struct {
	Config *config.Config
	Script *script.Script // nil runs an idle status area
	Logger *slog.Logger
}

// Run wires the status area to an event bus, replays the script onto it
// and drives the terminal UI until the user quits.
func Run(opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	th, err := theme.Load(cfg.Theme.Name)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := events.NewBus()
	feed := NewFeed(logger)

	// The desktop mirror is optional; a missing notification daemon
	// degrades to terminal-only display.
	var mirror *desktop.Mirror
	if cfg.Mirror.Enabled {
		mirror, err = desktop.NewMirror(cfg.Mirror, logger)
		if err != nil {
			logger.Warn("desktop mirror unavailable", "error", err)
			mirror = nil
		} else {
			defer mirror.Close()
		}
	}

	registry := status.NewRegistry(func(string) status.Surface {
		if mirror != nil {
			return status.Fanout(feed, mirror)
		}
		return feed
	})

	starter := script.NewStarter(ctx, bus, logger)
	router := status.NewRouter(registry, feed, feed, feed, starter, logger)
	router.BindKernel()
	router.BindNotebook()
	go router.Run(ctx, bus)

	// Second bus subscription feeds the event log pane.
	logCh, cancelLog := bus.Subscribe(64)
	defer cancelLog()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-logCh:
				feed.Forward(ev)
			}
		}
	}()

	watcher := theme.NewWatcher(cfg.Theme.Name, feed.ReloadTheme)
	if err := watcher.Start(); err != nil {
		logger.Warn("theme hot reload unavailable", "error", err)
		watcher = nil
	}

	if opts.Script != nil {
		player := script.NewPlayer(bus, opts.Script, cfg.Replay.Speed, cfg.Replay.Loop, logger)
		go player.Run(ctx)
	}

	m := New(cfg, th, feed, registry, bus, starter)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()

	if watcher != nil {
		if stopErr := watcher.Stop(); stopErr != nil {
			logger.Warn("stopping theme watcher", "error", stopErr)
		}
	}
	return err
}
