package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/mdashik24x7/portfolio/internal/config"
	"github.com/mdashik24x7/portfolio/internal/db"
	"github.com/mdashik24x7/portfolio/internal/termchart"
	"github.com/mdashik24x7/portfolio/internal/theme"
)

// terminalTheme builds a theme controller for terminal commands. The
// preference is kept in the database's preferences table when one is
// configured; the terminal background is the ambient signal.
func terminalTheme(ctx context.Context, cfg config.Config, logger *slog.Logger) (*theme.Controller, func()) {
	ambient := func() (theme.Mode, bool) {
		if !termchart.IsTerminal(os.Stdout) {
			return theme.Dark, false
		}
		return theme.Mode(lipgloss.HasDarkBackground()), true
	}

	if cfg.DatabasePath == "" {
		return theme.NewController(nil, ambient, logger), func() {}
	}
	database, err := db.Open(ctx, cfg.DatabasePath, logger)
	if err != nil {
		logger.Warn("preferences unavailable", "err", err)
		return theme.NewController(nil, ambient, logger), func() {}
	}
	return theme.NewController(database.Preferences(), ambient, logger), func() { database.Close() }
}
