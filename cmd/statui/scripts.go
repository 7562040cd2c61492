package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/statui/internal/script"
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "List bundled replay scripts",
	Long: `List the replay scripts compiled into the binary.

Play one with 'statui tui --script <name>'. Your own scripts are plain
YAML files; pass their path instead of a name, or '-' for stdin.`,
	RunE: runScripts,
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
}

func runScripts(cmd *cobra.Command, args []string) error {
	for _, name := range script.ListBundled() {
		s, err := script.LoadBundled(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %3d steps  %s\n", name, len(s.Steps), s.Description)
	}
	return nil
}
