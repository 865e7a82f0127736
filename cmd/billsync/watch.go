package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"billsync/internal/metrics"
	"billsync/internal/scheduler"
	"billsync/internal/service"
	"billsync/internal/source/congress"
	"billsync/internal/storage/postgres"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Sync bills on a fixed interval",
	Long: `Run a sync immediately and then once per sync.interval until interrupted.
Prometheus metrics are exposed on metrics.addr while the scheduler runs.`,
	Run: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntP("congress", "c", 0, "Congress number (overrides sync.congress)")
	watchCmd.Flags().Duration("interval", 0, "Time between runs (overrides sync.interval)")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, logger := bootstrap(cmd)

	if cmd.Flags().Changed("congress") {
		cfg.Sync.Congress, _ = cmd.Flags().GetInt("congress")
	}
	if cmd.Flags().Changed("interval") {
		cfg.Sync.Interval, _ = cmd.Flags().GetDuration("interval")
	}

	schedCfg := scheduler.Config{
		Congress:   cfg.Sync.Congress,
		DaysBack:   cfg.Sync.DaysBack,
		Interval:   cfg.Sync.Interval,
		RunTimeout: cfg.Sync.RunTimeout,
	}
	if err := schedCfg.Validate(); err != nil {
		fatal(logger, "invalid sync schedule", err)
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	db, err := connectDB(ctx, cfg.Database, logger)
	if err != nil {
		fatal(logger, "failed to connect to database", err)
	}
	defer db.Close()

	syncMetrics := metrics.New()

	client, err := newClient(cfg, congress.Recorders{postgres.NewAPILogStore(db), syncMetrics}, logger)
	if err != nil {
		fatal(logger, "failed to create api client", err)
	}

	pub, err := newPublisher(cfg.RabbitMQ, logger)
	if err != nil {
		fatal(logger, "failed to connect to rabbitmq", err)
	}
	if pub != nil {
		defer pub.Close()
	}

	syncService := service.NewSyncService(client, newStores(db), pub, syncMetrics, logger, cfg.Sync)

	metricsServer := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           syncMetrics.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("metrics server listening", "addr", cfg.Metrics.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	sched := scheduler.NewScheduler(syncService, schedCfg, logger)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown failed", "error", err)
	}

	logger.Info("shutdown complete")
}
