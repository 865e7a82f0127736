package main

import (
	"github.com/spf13/cobra"

	"billsync/migrations"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Run:   runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back every migration instead of applying them")
}

func runMigrate(cmd *cobra.Command, args []string) {
	cfg, logger := bootstrap(cmd)

	ctx, cancel := signalContext(logger)
	defer cancel()

	db, err := connectDB(ctx, cfg.Database, logger)
	if err != nil {
		fatal(logger, "failed to connect to database", err)
	}
	defer db.Close()

	if migrateDown {
		if err := migrations.Down(db.DB); err != nil {
			fatal(logger, "failed to roll back migrations", err)
		}
		logger.Info("migrations rolled back")
		return
	}

	if err := migrations.Up(db.DB); err != nil {
		fatal(logger, "failed to apply migrations", err)
	}
	logger.Info("migrations applied")
}
