package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/ctxmenu/internal/config"
	"github.com/jmylchreest/ctxmenu/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List bundled themes and themes found in the user themes directory
(~/.config/ctxmenu/themes/<name>.yaml). A user file overrides a bundled theme
of the same name.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	dir := config.ThemesDir()
	names, err := theme.ListAvailableThemes(dir)
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		marker := " "
		if name == cfg.Theme.Name {
			marker = "*"
		}

		source := "bundled"
		if info, err := os.Stat(filepath.Join(dir, name+".yaml")); err == nil {
			source = "user, modified " + humanize.Time(info.ModTime())
			if theme.IsEmbeddedTheme(name) {
				source += ", overrides bundled"
			}
		}
		fmt.Fprintf(out, "%s %-12s %s\n", marker, name, source)
	}
	return nil
}
