package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/statui/internal/events"
	"github.com/jmylchreest/statui/internal/output"
)

var eventsOpts struct {
	format string
	group  string
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the event catalog",
	Long: `List every event the status area reacts to, with its payload shape.

Useful when writing replay scripts: any event name not in this catalog
is rejected at script load.

Examples:
  # Human-readable catalog
  statui events

  # Only kernel lifecycle events
  statui events --group kernel

  # Machine-readable output
  statui events -o json
  statui events -o yaml

  # Bare names, for piping
  statui events -o names`,
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVarP(&eventsOpts.format, "output", "o", "plain",
		"Output format (plain, json, yaml, names)")
	eventsCmd.Flags().StringVar(&eventsOpts.group, "group", "",
		"Only list one group (kernel, session, notebook, checkpoint, autosave, mode)")
}

func runEvents(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(eventsOpts.format)
	if err != nil {
		return err
	}

	catalog := events.Catalog()
	if eventsOpts.group != "" {
		var filtered []events.Info
		for _, info := range catalog {
			if info.Group == eventsOpts.group {
				filtered = append(filtered, info)
			}
		}
		catalog = filtered
	}

	return output.NewFormatter(format).Format(os.Stdout, catalog)
}
