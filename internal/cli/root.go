// Package cli implements the loci CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loci-app/loci/internal/config"
	"github.com/loci-app/loci/internal/gamify"
	"github.com/loci-app/loci/internal/logging"
	"github.com/loci-app/loci/internal/store"
)

var (
	dbPath     string
	configPath string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "loci",
	Short: "Memory palace trainer with spaced repetition",
	Long:  "A memory palace trainer. Place facts at loci, review them when they come due. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $LOCI_DB or ~/.loci/loci.db)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.loci/config.toml)")
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

func openStore(cfg *config.Config) *store.SQLiteStore {
	s, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		exitErr("open store", err)
	}
	return s
}

func newLogger(cfg *config.Config) *zap.Logger {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		exitErr("init logging", err)
	}
	return logger
}

func openLedger(cfg *config.Config) *gamify.Ledger {
	ledger, err := gamify.Load(cfg.XPPath)
	if err != nil {
		exitErr("load xp ledger", err)
	}
	return ledger
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
