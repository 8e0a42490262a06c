package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove a day's entry from the journal",
	Long: `Remove the entry for a trading day. Internally this submits the same
zero-P&L, no-notes record that "tradelog log -p 0" does.

Example:
  tradelog rm -d 2024-01-10`,
	RunE: runRm,
}

var rmDate string

func init() {
	rootCmd.AddCommand(rmCmd)

	rmCmd.Flags().StringVarP(&rmDate, "date", "d", "", "trading day, YYYY-MM-DD (default today)")
}

func runRm(cmd *cobra.Command, args []string) error {
	date, err := resolveDate(rmDate)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	_, saveErr := a.store.RemoveTrade(date)
	warnSaveFailed(saveErr)

	fmt.Printf("Removed %s\n", date)
	return nil
}
