package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tradelog/config"
	"tradelog/ledger"
	"tradelog/storage"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A personal trading-performance journal",
	Long: `Tradelog keeps a daily profit-and-loss journal on your own machine.

It provides tools for:
  - Logging each trading day's P&L with optional notes
  - A dashboard with balance, win rate and total P&L
  - Monthly calendar summaries
  - CSV export and import of the journal

All state lives in local storage; there is no server and no account.`,

	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tradelog/config.yaml)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".tradelog", "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return config.LoadFromFile(path)
		}
	}
	return config.Default(), nil
}

// app wires the configured backend, the persistence adapter and the ledger
// store together for the lifetime of one command.
type app struct {
	cfg   *config.Config
	store *ledger.Store

	backend storage.Backend
}

func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var backend storage.Backend
	switch cfg.Storage.Type {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
		backend, err = storage.NewSQLite(cfg.Storage.DBPath)
	case "file":
		backend, err = storage.NewFile(cfg.Storage.Dir)
	default:
		err = fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	adapter := storage.NewAdapter(backend)
	snap, err := adapter.Load()
	if err != nil {
		// Fail-soft: the adapter already fell back to the default snapshot.
		fmt.Fprintf(os.Stderr, "warning: %v, starting from defaults\n", err)
	}

	return &app{
		cfg:     cfg,
		store:   ledger.NewStore(snap, adapter),
		backend: backend,
	}, nil
}

func (a *app) close() {
	_ = a.backend.Close()
}

// warnSaveFailed reports a failed persistence write. The in-memory mutation
// stands either way, so the command itself does not fail.
func warnSaveFailed(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: save failed: %v; changes are not persisted\n", err)
	}
}
