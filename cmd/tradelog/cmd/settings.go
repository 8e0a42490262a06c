package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tradelog/stats"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change account settings",
	Long: `Without flags, print the current settings. With flags, replace the
display name and/or the initial balance.

The initial balance is the baseline for all percentage metrics and must be
positive.

Examples:
  tradelog settings
  tradelog settings --name "Ana" --initial-balance 5000`,
	RunE: runSettings,
}

var (
	settingsName    string
	settingsInitial string
)

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.Flags().StringVar(&settingsName, "name", "", "display name")
	settingsCmd.Flags().StringVar(&settingsInitial, "initial-balance", "", "starting capital (must be > 0)")
}

func runSettings(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	snap := a.store.Snapshot()

	if settingsName == "" && settingsInitial == "" {
		name := snap.Settings.Name
		if name == "" {
			name = "(not set)"
		}
		fmt.Printf("Name:            %s\n", name)
		fmt.Printf("Initial balance: %s\n",
			stats.FormatCurrency(snap.Settings.InitialBalance, a.cfg.Display.CurrencySymbol))
		return nil
	}

	next := snap.Settings
	if settingsName != "" {
		next.Name = settingsName
	}
	if settingsInitial != "" {
		initial, err := decimal.NewFromString(settingsInitial)
		if err != nil {
			return fmt.Errorf("parse initial balance %q: %w", settingsInitial, err)
		}
		// The store does not validate; the gate lives here.
		if !initial.IsPositive() {
			return fmt.Errorf("initial balance must be positive, got %s", initial)
		}
		next.InitialBalance = initial
	}

	_, saveErr := a.store.ReplaceSettings(next)
	warnSaveFailed(saveErr)

	fmt.Println("Settings updated")
	return nil
}
