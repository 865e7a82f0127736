package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"billsync/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "billsync",
	Short: "Sync federal legislative bills from the Congress.gov API",
	Long: `billsync pulls recently updated bills from the Congress.gov v3 API and
reconciles them into PostgreSQL. It can run once, on a schedule, or serve the
stored bills over a read-only JSON API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file. A missing default file falls back to
// built-in defaults; a missing file named with --config is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("config") {
			return nil, err
		}
		cfg = config.Default()
	}

	if cfg.API.APIKey == "" {
		cfg.API.APIKey = os.Getenv("CONGRESS_API_KEY")
	}
	return cfg, nil
}

// bootstrap loads configuration and builds the logger, exiting on failure.
func bootstrap(cmd *cobra.Command) (*config.Config, *slog.Logger) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fatal(setupLogger(config.Default()), "failed to load config", err)
	}
	return cfg, setupLogger(cfg)
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			Compress:   true,
		}
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(out, opts)
	return slog.New(handler)
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
