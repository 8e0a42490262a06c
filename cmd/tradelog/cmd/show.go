package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradelog/ledger"
	"tradelog/stats"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the performance dashboard",
	Long: `Summarize the journal: account value, today's change, win rate and
total P&L against the initial balance.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	snap := a.store.Snapshot()
	symbol := a.cfg.Display.CurrencySymbol

	name := snap.Settings.Name
	if name == "" {
		name = "Trader"
	}

	today := ledger.Key(time.Now())
	total := stats.TotalPnl(snap.Trades)
	balance := stats.CurrentBalance(snap.Settings, total)
	daily := stats.DailyChange(snap.Trades, today)

	fmt.Printf("Welcome, %s\n\n", name)
	fmt.Printf("  Account Value:  %s\n", stats.FormatCurrency(balance, symbol))
	fmt.Printf("  Daily Change:   %s (%s)\n",
		stats.FormatCurrency(daily, symbol),
		stats.FormatPercentage(stats.DailyChangePercent(daily, balance)))
	fmt.Printf("  Win Rate:       %.1f%% over %d trading days\n",
		stats.WinRate(snap.Trades), stats.TradingDays(snap.Trades))
	fmt.Printf("  Total P&L:      %s (%s of initial)\n",
		stats.FormatCurrency(total, symbol),
		stats.FormatPercentage(stats.PercentageOfInitial(total, snap.Settings.InitialBalance)))

	return nil
}
