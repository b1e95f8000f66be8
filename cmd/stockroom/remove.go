// Remove command decrements an item's stock.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove NAME QTY",
	Short: "Remove stock for an item",
	Long: `Remove decrements the quantity of the named item. When the quantity
drops to zero or below the item is deleted from the inventory.

Example:
  stockroom remove apple 3`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func init() {
	// Stop flag parsing at the first positional so a negative QTY is not
	// mistaken for a shorthand flag.
	removeCmd.Flags().SetInterspersed(false)
}

func runRemove(cmd *cobra.Command, args []string) error {
	qty, err := parseQuantity(args[1])
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	inv, err := store.Inventory()
	if err != nil {
		return err
	}
	if err := inv.Remove(args[0], qty); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}

	remaining := inv.Quantity(args[0])
	if flagJSON {
		return printItemJSON(args[0], remaining)
	}
	if remaining == 0 {
		fmt.Printf("Removed %d of %s (item deleted)\n", qty, args[0])
	} else {
		fmt.Printf("Removed %d of %s (now %d)\n", qty, args[0], remaining)
	}
	return nil
}
