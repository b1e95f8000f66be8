// Init command prepares the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the stockroom directories",
	Long: `Init creates the configuration directory with a default config.yaml,
creates the data directory, and writes an empty snapshot.

Example:
  stockroom init
  stockroom init --data-dir ./warehouse`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and default config.yaml were created by PersistentPreRunE.
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.Save(); err != nil {
		return fmt.Errorf("write empty snapshot: %w", err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	fmt.Printf("Initialized stockroom\n  config: %s\n  data:   %s\n", configDir, dataDir)
	return nil
}
