package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/statui/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List bundled and user themes. The active theme is marked with '*'.

User themes live in ~/.config/statui/themes/ and shadow bundled themes
of the same name. While the TUI runs, the active theme reloads
automatically when its file changes.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	infos := theme.List()
	if len(infos) == 0 {
		fmt.Println("no themes found")
		return nil
	}

	for _, info := range infos {
		marker := " "
		if info.Name == cfg.Theme.Name {
			marker = "*"
		}
		if info.Bundled {
			fmt.Printf("%s %-16s bundled\n", marker, info.Name)
			continue
		}
		fmt.Printf("%s %-16s %s (modified %s)\n", marker, info.Name, info.Path, humanize.Time(info.ModTime))
	}
	return nil
}
