package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradelog/stats"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Show one calendar month of the journal",
	Long: `List every entry of a month with its P&L and notes, followed by the
month's totals. Defaults to the current month.

Example:
  tradelog month 2024-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	year, month := time.Now().Year(), time.Now().Month()
	if len(args) == 1 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("parse month %q (want YYYY-MM): %w", args[0], err)
		}
		year, month = t.Year(), t.Month()
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	snap := a.store.Snapshot()
	symbol := a.cfg.Display.CurrencySymbol
	sum := stats.MonthSummary(snap.Trades, year, month)

	fmt.Printf("%s %d\n\n", month, year)

	if sum.Days == 0 {
		fmt.Println("  no entries")
		return nil
	}

	for _, t := range sum.Trades {
		line := fmt.Sprintf("  %s  %12s", t.Date, stats.FormatCurrency(t.Pnl, symbol))
		if t.Notes != "" {
			line += "  " + t.Notes
		}
		fmt.Println(line)
	}

	fmt.Printf("\n  Total: %s over %d days (%d wins, %d losses, %d flat, %.1f%% win rate)\n",
		stats.FormatCurrency(sum.TotalPnl, symbol),
		sum.Days, sum.Wins, sum.Losses, sum.Flat, sum.WinRate)

	return nil
}
