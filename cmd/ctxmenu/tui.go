package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ctxmenu/internal/config"
	"github.com/jmylchreest/ctxmenu/internal/tui"
)

var tuiOpts struct {
	theme   string
	explain bool
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive context menu demo",
	Long: `Launch the terminal user interface with one trigger per configured entry.

Mouse:
  right click   Open the trigger's menu at the pointer
  left click    Pick a menu item, or close the menu when outside it

Key bindings:
  esc         Close the open menu
  e           Outline the layout
  t           Switch to the next theme
  r           Reset selection counts
  ?           Show help
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVar(&tuiOpts.theme, "theme", "",
		"Theme name (overrides [theme] name in the config)")
	tuiCmd.Flags().BoolVar(&tuiOpts.explain, "explain", false,
		"Start with layout outlines drawn")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if tuiOpts.explain {
		cfg.TUI.Explain = true
	}

	// The TUI owns the terminal; without a log file, logs are dropped.
	tuiLogger := logger
	if globalOpts.logFile == "" {
		tuiLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return tui.Run(cmd.Context(), tui.RunOptions{
		Config:    cfg,
		Logger:    tuiLogger,
		ThemeName: tuiOpts.theme,
		ThemesDir: config.ThemesDir(),
	})
}
