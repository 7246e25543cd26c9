package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/trainlog/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	dbPath     string
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trainlog",
	Short: "Personal training log with a weekly load stoplight",
	Long: `A personal training-log CLI: record planned vs. actual workout metrics
plus subjective wellness, and get a weekly training-load assessment.

Each session is scored 0-100 across duration, heart-rate zone, RPE and
pace adherence; a week rolls up into a stoplight (Green/Yellow/Red) with
a suggested volume/intensity adjustment.

Quick Start:
  trainlog add --template easy50 --actual-minutes 52 --rpe 4   # Log a session
  trainlog week                                                # Weekly stoplight
  trainlog list --month 2026-08                                # Month view
  trainlog backup --out backup.json                            # Export snapshot

For detailed usage, see: https://github.com/iksnae/trainlog`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Custom database location")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig reads the optional config file. Config problems are warned
// about, never fatal.
func loadConfig() internal.Config {
	path := configPath
	if path == "" {
		var err error
		path, err = internal.DefaultConfigPath()
		if err != nil {
			internal.LogWarn("Failed to resolve config path: %v", err)
			return internal.Config{}
		}
	}
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		internal.LogWarn("Failed to load config %s: %v", path, err)
		return internal.Config{}
	}
	return cfg
}

// openStore resolves the database location (flag, then config file, then
// default) and returns a ready store plus a close func.
func openStore() (internal.SessionStore, func(), error) {
	cfg := loadConfig()

	path := dbPath
	if path == "" {
		path = cfg.DBPath
	}
	if path == "" {
		var err error
		path, err = internal.DefaultDBPath()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := internal.OpenDatabase(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	internal.LogDebug("Opened database %s", path)

	return internal.NewSQLiteStore(db), closeQuietly(db), nil
}

func closeQuietly(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			internal.LogWarn("Failed to close database: %v", err)
		}
	}
}

// templatesPath resolves the user template catalog location.
func templatesPath(cfg internal.Config) string {
	if cfg.TemplatesPath != "" {
		return cfg.TemplatesPath
	}
	path, err := internal.DefaultTemplatesPath()
	if err != nil {
		internal.LogWarn("Failed to resolve templates path: %v", err)
		return ""
	}
	return path
}
