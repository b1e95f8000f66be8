// Add command increments an item's stock.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add NAME QTY",
	Short: "Add stock for an item",
	Long: `Add increments the quantity of the named item, creating it when absent.

Example:
  stockroom add apple 10
  stockroom add "olive oil" 3`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	// Stop flag parsing at the first positional so a negative QTY is not
	// mistaken for a shorthand flag.
	addCmd.Flags().SetInterspersed(false)
}

func runAdd(cmd *cobra.Command, args []string) error {
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
	if err := inv.Add(args[0], qty); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}

	if flagJSON {
		return printItemJSON(args[0], inv.Quantity(args[0]))
	}
	fmt.Printf("Added %d of %s (now %d)\n", qty, args[0], inv.Quantity(args[0]))
	return nil
}
