package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/ctxmenu/internal/config"
	"github.com/jmylchreest/ctxmenu/internal/theme"
)

// RunOptions configures the TUI.
type RunOptions struct {
	Config    *config.Config
	Logger    *slog.Logger
	ThemeName string // Overrides Config.Theme.Name when set
	ThemesDir string // User themes directory (empty = bundled only)
}

// Run starts the TUI with the given options and blocks until it exits.
func Run(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	name := cfg.Theme.Name
	if opts.ThemeName != "" {
		name = opts.ThemeName
	}
	loader := theme.NewLoader(logger, opts.ThemesDir)
	if _, err := loader.Load(name); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
	}
	if cfg.TUI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(cfg, loader, logger), progOpts...)

	// Theme hot reload
	if cfg.Theme.Watch && opts.ThemesDir != "" {
		w, err := theme.NewWatcher(loader, logger)
		if err != nil {
			logger.Warn("failed to create theme watcher", "error", err)
		} else {
			w.SetChangeCallback(func(th *theme.Theme) {
				p.Send(ThemeChangedMsg{Theme: th})
			})
			if err := w.Start(ctx); err != nil {
				logger.Debug("theme watcher not started", "dir", opts.ThemesDir, "error", err)
			}
			defer func() { _ = w.Stop() }()
		}
	}

	_, err := p.Run()
	return err
}
