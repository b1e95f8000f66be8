// Shared helpers for stockroom CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/stockroom/internal/jsonfile"
	"github.com/mesh-intelligence/stockroom/internal/sqlite"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// attachStore resolves the data directory, creates a store for the
// configured backend, and attaches it. The caller must defer
// store.Detach().
func attachStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:  configBackend,
		DataDir:  dataDir,
		Snapshot: configSnapshot,
	}

	store, err := newStore(cfg.Backend)
	if err != nil {
		return nil, err
	}
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// newStore returns an unattached store for the given backend name.
func newStore(backend string) (types.Store, error) {
	switch backend {
	case types.BackendJSON:
		return jsonfile.NewStore(), nil
	case types.BackendSQLite:
		return sqlite.NewStore(), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}
}

// itemOutput is the machine-readable result of item-level commands.
type itemOutput struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// printItemJSON writes an item and its quantity as a JSON object. The name
// goes through encoding/json so every valid item name stays parseable.
func printItemJSON(item string, qty int) error {
	output, err := json.Marshal(itemOutput{Item: item, Quantity: qty})
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// parseQuantity converts a CLI argument to an integer quantity. The value
// is validated by the inventory itself; this only rejects non-integers.
func parseQuantity(arg string) (int, error) {
	qty, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("quantity must be an integer: %w", err)
	}
	return qty, nil
}
