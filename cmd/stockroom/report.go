// Report command prints the full inventory listing.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a report of every item and quantity",
	Long: `Report prints a human-readable listing of the whole inventory, or an
explicit notice when it is empty.

Example:
  stockroom report
  stockroom report --json`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	inv, err := store.Inventory()
	if err != nil {
		return err
	}

	if flagJSON {
		output, err := json.MarshalIndent(inv, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal inventory: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	inv.Report(os.Stdout)
	return nil
}
