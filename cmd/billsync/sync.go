package main

import (
	"os"

	"github.com/spf13/cobra"

	"billsync/internal/service"
	"billsync/internal/storage/postgres"
)

var (
	syncCongress int
	syncDaysBack int
	syncDryRun   bool
	syncDetails  bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync recent bills from Congress.gov once",
	Long: `Fetch the most recently updated bills of a congress session and upsert
them into the database, then print a summary of what changed.

Examples:
  # Sync the 118th congress
  billsync sync --congress 118

  # Check the API connection without writing anything
  billsync sync --dry-run

  # Also pull actions, cosponsors and subjects for every bill
  billsync sync --details`,
	Run: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().IntVarP(&syncCongress, "congress", "c", 118, "Congress number")
	syncCmd.Flags().IntVarP(&syncDaysBack, "days-back", "d", 7, "Number of days back to sync")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Show what would be synced without making changes")
	syncCmd.Flags().BoolVar(&syncDetails, "details", false, "Fetch actions, cosponsors and subjects for each bill")
}

func runSync(cmd *cobra.Command, args []string) {
	cfg, logger := bootstrap(cmd)

	if !cmd.Flags().Changed("congress") {
		syncCongress = cfg.Sync.Congress
	}
	if !cmd.Flags().Changed("days-back") {
		syncDaysBack = cfg.Sync.DaysBack
	}
	if cmd.Flags().Changed("details") {
		cfg.Sync.FetchDetails = syncDetails
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	WriteStart(os.Stdout, syncCongress, syncDaysBack, syncDryRun)

	if syncDryRun {
		client, err := newClient(cfg, nil, logger)
		if err != nil {
			fatal(logger, "failed to create api client", err)
		}
		preview, err := service.NewDryRunService(client, logger).Preview(ctx, syncCongress)
		WritePreview(os.Stdout, preview, err)
		return
	}

	db, err := connectDB(ctx, cfg.Database, logger)
	if err != nil {
		fatal(logger, "failed to connect to database", err)
	}
	defer db.Close()

	client, err := newClient(cfg, postgres.NewAPILogStore(db), logger)
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

	syncService := service.NewSyncService(client, newStores(db), pub, nil, logger, cfg.Sync)
	outcome := syncService.SyncRecentBills(ctx, syncCongress, syncDaysBack)

	WriteSummary(os.Stdout, outcome)
}
