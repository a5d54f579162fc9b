// Command portfolio serves the personal portfolio site and offers terminal
// views of the same skill charts.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/mdashik24x7/portfolio/internal/config"
	"github.com/mdashik24x7/portfolio/internal/content"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site with skill proficiency charts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.Path(),
		"config file (env PORTFOLIO_CONFIG)")

	cmd.AddCommand(
		newServeCmd(flags),
		newSkillsCmd(flags),
		newBrowseCmd(flags),
		newExportCmd(flags),
	)
	return cmd
}

// load reads config and content, and builds the logger. Terminal commands
// log to stderr so chart output on stdout stays clean.
func (f *rootFlags) load(logOut io.Writer) (config.Config, *content.Tables, *slog.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger(cfg, logOut)
	slog.SetDefault(logger)

	tables, err := content.LoadFile(cfg.ContentPath)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("loading content: %w", err)
	}
	return cfg, tables, logger, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Mode == "debug" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
