// Package cli implements the command-line interface for pocketcube.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/config"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	logLevel   string
	verbose    bool

	cfgFile *config.File
	logger  zerolog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "2x2x2 Pocket Cube solver",
	Long: `pocketcube - A CLI tool for solving and analyzing 2x2x2 Pocket Cube scrambles.

Scramble a cube, solve it with a bidirectional breadth-first search that
meets in the middle, and keep a history of solves to compare and replay.`,
	Version:           version,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.pocketcube/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.pocketcube/pocketcube.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the config file and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		cfgFile, err = config.NewFile(configPath)
	} else {
		cfgFile, err = config.NewDefaultFile()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg := cfgFile.Config()
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level := cfg.Level()
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	return nil
}

// settings returns the effective configuration.
func settings() config.Config {
	if cfgFile == nil {
		return config.Default()
	}
	return cfgFile.Config()
}

// getDBPath returns the database path from flag, then config, else default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return settings().DBPath
}

// openDB opens the database and applies migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	path := getDBPath()
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug().Str("path", db.Path()).Msg("database opened")
	return db, nil
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
