// Get command prints an item's current quantity.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Print the quantity of an item",
	Long: `Get prints the current quantity of the named item. Unknown items
report 0 rather than an error.

Example:
  stockroom get apple
  stockroom get apple --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	inv, err := store.Inventory()
	if err != nil {
		return err
	}

	qty := inv.Quantity(args[0])
	if flagJSON {
		return printItemJSON(args[0], qty)
	}
	fmt.Printf("%s -> %d\n", args[0], qty)
	return nil
}
