package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tradelog/ledger"
	"tradelog/stats"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a day's P&L in the journal",
	Long: `Record one calendar day's trading result. An existing entry for the
same date is overwritten. Logging a zero P&L with no notes clears the day,
which is also what "tradelog rm" does.

Examples:
  tradelog log -p 150.50 -n "good day"
  tradelog log -d 2024-01-11 -p -40
  tradelog log -d 2024-01-11 -p 0        # clears 2024-01-11`,
	RunE: runLog,
}

var (
	logDate  string
	logPnl   string
	logNotes string
)

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "trading day, YYYY-MM-DD (default today)")
	logCmd.Flags().StringVarP(&logPnl, "pnl", "p", "", "signed P&L amount (required)")
	logCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "free-text notes for the day")

	logCmd.MarkFlagRequired("pnl")
}

func runLog(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(logDate)
	if err != nil {
		return err
	}

	pnl, err := decimal.NewFromString(logPnl)
	if err != nil {
		return fmt.Errorf("parse pnl %q: %w", logPnl, err)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	trade := ledger.Trade{Date: date, Pnl: pnl, Notes: logNotes}
	cleared := trade.Empty()

	_, saveErr := a.store.UpsertTrade(date, trade)
	warnSaveFailed(saveErr)

	if cleared {
		fmt.Printf("Cleared %s\n", date)
	} else {
		fmt.Printf("Logged %s: %s\n", date, stats.FormatCurrency(pnl, a.cfg.Display.CurrencySymbol))
	}
	return nil
}

// resolveDate normalizes the --date flag, defaulting to today in local time.
// Ledger keys and "today" lookups both go through here, so they can never
// disagree on which calendar day an instant belongs to.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return ledger.Key(time.Now()), nil
	}
	t, err := time.ParseInLocation(ledger.KeyLayout, flag, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse date %q (want YYYY-MM-DD): %w", flag, err)
	}
	return ledger.Key(t), nil
}
