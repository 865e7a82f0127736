package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"billsync/internal/config"
	"billsync/internal/publisher"
	"billsync/internal/service"
	"billsync/internal/source/congress"
	"billsync/internal/storage/postgres"
)

var errMissingAPIKey = errors.New("api key is not configured (set api.api_key or CONGRESS_API_KEY)")

func connectDB(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database", "host", cfg.Host, "dbname", cfg.DBName)
	return db, nil
}

func newClient(cfg *config.Config, recorder congress.CallRecorder, logger *slog.Logger) (*congress.Client, error) {
	if cfg.API.APIKey == "" {
		return nil, errMissingAPIKey
	}
	return congress.New(congress.Config{
		BaseURL:   cfg.API.BaseURL,
		APIKey:    cfg.API.APIKey,
		UserAgent: cfg.API.UserAgent,
		Timeout:   cfg.API.Timeout,
	}, recorder, logger), nil
}

// newPublisher returns nil when publishing is disabled.
func newPublisher(cfg config.RabbitMQConfig, logger *slog.Logger) (service.Publisher, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	pub, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.URL,
		Exchange:   cfg.Exchange,
		RoutingKey: cfg.RoutingKey,
		QueueName:  cfg.QueueName,
	}, logger)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

func newStores(db *sqlx.DB) service.Stores {
	return service.Stores{
		Bills:      postgres.NewBillStore(db),
		Subjects:   postgres.NewSubjectStore(db),
		Actions:    postgres.NewActionStore(db),
		Cosponsors: postgres.NewCosponsorStore(db),
		SyncState:  postgres.NewSyncStateStore(db),
		Tx:         postgres.NewTransactionManager(db),
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Info("received shutdown signal", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
