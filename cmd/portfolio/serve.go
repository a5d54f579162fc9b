package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mdashik24x7/portfolio/internal/analytics"
	"github.com/mdashik24x7/portfolio/internal/contact"
	"github.com/mdashik24x7/portfolio/internal/db"
	"github.com/mdashik24x7/portfolio/internal/web"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, tables, logger, err := flags.load(os.Stdout)
			if err != nil {
				return err
			}

			var tracker *analytics.Tracker
			if cfg.Tracking.Enabled && cfg.DatabasePath != "" {
				database, err := db.Open(ctx, cfg.DatabasePath, logger)
				if err != nil {
					return fmt.Errorf("opening database: %w", err)
				}
				defer database.Close()

				tracker, err = analytics.NewTracker(database.SQL(), logger)
				if err != nil {
					return fmt.Errorf("creating tracker: %w", err)
				}
				logger.Info("visitor tracking enabled",
					"db", cfg.DatabasePath, "retention_days", cfg.Tracking.RetentionDays)
			} else {
				logger.Info("visitor tracking disabled")
			}

			var mailer contact.Mailer
			if cfg.Contact.Enabled() {
				mailer = contact.NewSMTPMailer(cfg.Contact, logger)
				logger.Info("contact form enabled", "smtp", cfg.Contact.Host)
			}

			srv, err := web.New(web.Options{
				Config:  cfg,
				Tables:  tables,
				Tracker: tracker,
				Mailer:  mailer,
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.Run(gctx)
			})
			if tracker != nil {
				g.Go(func() error {
					return tracker.RunCleanup(gctx, cfg.Tracking.Retention(), cfg.Tracking.CleanupInterval)
				})
			}
			return g.Wait()
		},
	}
}
