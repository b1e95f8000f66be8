// Low command lists items below a stock threshold.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var lowThreshold int

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "List items below a stock threshold",
	Long: `Low lists the items whose quantity is strictly below the threshold,
in the order they were first added.

The threshold defaults to the low_stock_threshold config value.

Example:
  stockroom low
  stockroom low --threshold 10
  stockroom low --json`,
	RunE: runLow,
}

func init() {
	lowCmd.Flags().IntVar(&lowThreshold, "threshold", 0, "stock threshold (default: low_stock_threshold from config)")
}

func runLow(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	inv, err := store.Inventory()
	if err != nil {
		return err
	}

	threshold := lowThreshold
	if !cmd.Flags().Changed("threshold") {
		threshold = configThreshold
	}

	items := inv.LowStock(threshold)
	if flagJSON {
		if items == nil {
			items = []string{}
		}
		output, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("marshal low-stock items: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if len(items) == 0 {
		fmt.Printf("No items below %d\n", threshold)
		return nil
	}
	for _, name := range items {
		fmt.Printf("%s -> %d\n", name, inv.Quantity(name))
	}
	return nil
}
