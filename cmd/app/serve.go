package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shortener-go/internal/i18n"
	"shortener-go/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the reconciliation job",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication()
		if err != nil {
			return err
		}
		defer app.Close()

		bundle, err := i18n.InitI18n("en")
		if err != nil {
			return err
		}

		engine, err := server.NewEngine(app.cfg, app.urls, bundle, app.logger)
		if err != nil {
			return err
		}

		scheduler, err := server.NewScheduler(app.cfg.Reconcile.Schedule, app.urls)
		if err != nil {
			app.logger.Error("Failed to schedule cron job", zap.Error(err))
			return err
		}
		scheduler.Start()
		defer func() {
			<-scheduler.Stop().Done()
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app.logger.Info("Application started", zap.String("title", app.cfg.App.Title))
		return server.Run(ctx, app.cfg.Addr(), engine, app.cfg.Server.ShutdownPeriod)
	},
}
