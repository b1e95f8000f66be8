// Demo command runs a scripted walkthrough of the inventory operations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/jsonfile"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demonstration of the inventory operations",
	Long: `Demo exercises add, remove, query, persistence, and reporting in
sequence against a throwaway store, printing diagnostics to stdout. The
configured inventory is not touched.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	dataDir, err := os.MkdirTemp("", "stockroom-demo-")
	if err != nil {
		return fmt.Errorf("create demo dir: %w", err)
	}
	defer os.RemoveAll(dataDir)

	store := jsonfile.NewStore()
	if err := store.Attach(types.Config{Backend: types.BackendJSON, DataDir: dataDir}); err != nil {
		return fmt.Errorf("attach demo store: %w", err)
	}
	defer store.Detach()

	inv, err := store.Inventory()
	if err != nil {
		return err
	}

	journal := types.NewJournal()
	inv.SetJournal(journal)

	// Mutations with validation failures reported inline.
	attempt(inv.Add("apple", 10))
	attempt(inv.Add("banana", -2)) // rejected: negative quantity
	attempt(inv.Remove("apple", 3))
	attempt(inv.Remove("orange", 1)) // rejected: not in inventory

	// Queries.
	fmt.Printf("Apple stock: %d\n", inv.Quantity("apple"))
	fmt.Printf("Low items: %v\n", inv.LowStock(types.DefaultLowStockThreshold))

	// Persistence round-trip.
	if err := store.Save(); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := store.Load(); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	inv, err = store.Inventory()
	if err != nil {
		return err
	}
	inv.Report(os.Stdout)

	fmt.Println("Journal:")
	for _, entry := range journal.Entries() {
		fmt.Printf("  %s\n", entry)
	}

	fmt.Println("System demonstration completed successfully")
	return nil
}

// attempt reports a mutation failure without aborting the walkthrough.
func attempt(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, types.ErrItemNotFound):
		fmt.Printf("Error removing item: %v\n", err)
	default:
		fmt.Printf("Error: %v\n", err)
	}
}
