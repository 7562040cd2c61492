package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/statui/internal/script"
	"github.com/jmylchreest/statui/internal/tui"
)

var tuiOpts struct {
	scriptRef string
	speed     float64
	loop      bool
	noScript  bool
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive status area",
	Long: `Launch the terminal status area and replay a session script onto it.

Scripts are YAML event lists; pass a bundled name (see 'statui scripts'),
a file path, or '-' to read from stdin.

Key bindings:
  tab         Switch focused widget
  enter       Activate a clickable alert or dialog button
  r           Restart the kernel
  i / esc     Edit mode / command mode
  c           Copy focused status text
  e           Toggle the event log
  ?           Show help
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVar(&tuiOpts.scriptRef, "script", "",
		"Replay script: bundled name, file path, or '-' for stdin (default from config)")
	tuiCmd.Flags().Float64Var(&tuiOpts.speed, "speed", 0,
		"Playback speed multiplier (overrides config when set)")
	tuiCmd.Flags().BoolVar(&tuiOpts.loop, "loop", false,
		"Restart the script when it finishes")
	tuiCmd.Flags().BoolVar(&tuiOpts.noScript, "no-script", false,
		"Start with an idle status area and no replay")
}

func runTUI(cmd *cobra.Command, args []string) error {
	runCfg := cfg

	if tuiOpts.speed > 0 {
		runCfg.Replay.Speed = tuiOpts.speed
	}
	if cmd.Flags().Changed("loop") {
		runCfg.Replay.Loop = tuiOpts.loop
	}

	var s *script.Script
	if !tuiOpts.noScript {
		ref := tuiOpts.scriptRef
		if ref == "" {
			ref = runCfg.Replay.Script
		}
		var err error
		s, err = script.Resolve(ref)
		if err != nil {
			return err
		}
	}

	return tui.Run(tui.RunOptions{
		Config: runCfg,
		Script: s,
		Logger: logger,
	})
}
