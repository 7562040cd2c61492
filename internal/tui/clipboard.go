package tui

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/jmylchreest/statui/internal/config"
)

// clipboardTimeout bounds the copy helper process.
const clipboardTimeout = 5 * time.Second

// clipboardCandidates are probed in order when no command is configured.
var clipboardCandidates = []struct {
	binary  string
	command string
}{
	{"wl-copy", "wl-copy"},
	{"xclip", "xclip -selection clipboard"},
	{"xsel", "xsel --clipboard --input"},
}

// copyText pipes text into the system clipboard helper.
func copyText(text string, cfg *config.Config) error {
	command := detectClipboardCommand(cfg)
	if command == "" {
		return fmt.Errorf("no clipboard command available")
	}

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return fmt.Errorf("invalid clipboard command %q", command)
	}

	ctx, cancel := context.WithTimeout(context.Background(), clipboardTimeout)
	defer cancel()

	c := exec.CommandContext(ctx, parts[0], parts[1:]...)
	c.Stdin = strings.NewReader(text)
	return c.Run()
}

// detectClipboardCommand returns the configured clipboard command, or
// probes for a Wayland or X11 helper.
func detectClipboardCommand(cfg *config.Config) string {
	if cfg != nil && cfg.Clipboard.Command != "" {
		return cfg.Clipboard.Command
	}

	for _, candidate := range clipboardCandidates {
		if _, err := exec.LookPath(candidate.binary); err == nil {
			return candidate.command
		}
	}
	return ""
}
