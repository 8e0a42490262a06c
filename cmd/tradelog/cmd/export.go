package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradelog/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal as CSV",
	Long: `Write every journal entry as CSV (date,pnl,notes), sorted by date.

Example:
  tradelog export -o journal.csv`,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import journal entries from CSV",
	Long: `Read entries from a CSV previously produced by "tradelog export" and
upsert them into the journal. Existing entries for the same dates are
overwritten; rows with zero P&L and no notes clear their day.

Example:
  tradelog import -i journal.csv`,
	RunE: runImport,
}

var (
	exportOut string
	importIn  string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	importCmd.Flags().StringVarP(&importIn, "in", "i", "", "input CSV file (required)")
	importCmd.MarkFlagRequired("in")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	snap := a.store.Snapshot()

	w := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := export.WriteCSV(w, snap.Trades); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if exportOut != "" {
		fmt.Printf("Exported %d entries to %s\n", len(snap.Trades), exportOut)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(importIn)
	if err != nil {
		return err
	}
	defer f.Close()

	trades, err := export.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	for _, t := range trades {
		_, saveErr := a.store.UpsertTrade(t.Date, t)
		warnSaveFailed(saveErr)
	}

	fmt.Printf("Imported %d entries from %s\n", len(trades), importIn)
	return nil
}
