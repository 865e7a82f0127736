package main

import (
	"github.com/spf13/cobra"

	"billsync/internal/handlers"
	"billsync/internal/metrics"
	"billsync/internal/source/congress"
	"billsync/internal/storage/postgres"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve synced bills over a read-only JSON API",
	Long: `Start an HTTP server exposing the stored bills, their related records,
the sync state of each congress and recent upstream calls.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides server.port)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, logger := bootstrap(cmd)

	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	db, err := connectDB(ctx, cfg.Database, logger)
	if err != nil {
		fatal(logger, "failed to connect to database", err)
	}
	defer db.Close()

	apiMetrics := metrics.New()

	app := handlers.NewApp(handlers.Dependencies{
		Bills:      postgres.NewBillStore(db),
		Subjects:   postgres.NewSubjectStore(db),
		Actions:    postgres.NewActionStore(db),
		Cosponsors: postgres.NewCosponsorStore(db),
		SyncStates: postgres.NewSyncStateStore(db),
		APILogs:    postgres.NewAPILogStore(db),
		DB:         db,
		Metrics:    apiMetrics.Handler(),
		Requests:   apiMetrics,
		Service:    congress.ServiceName,
	})

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("server listening", "addr", cfg.Server.Addr())
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		fatal(logger, "server failed", err)
	}
	logger.Info("shutdown complete")
}
