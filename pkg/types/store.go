package types

import "errors"

// Store defines the interface for backend-agnostic inventory persistence.
// Callers attach to a backend, mutate the in-memory Inventory, and persist
// it with Save. Load replaces the in-memory state with the stored snapshot.
type Store interface {
	// Inventory returns the in-memory inventory held by the store.
	// Returns ErrStoreDetached if the store is not attached.
	Inventory() (*Inventory, error)

	// Load replaces the in-memory inventory with the parsed snapshot.
	// A missing snapshot resets the inventory to empty and returns
	// ErrSnapshotMissing. A malformed snapshot returns an error and
	// leaves the in-memory inventory untouched.
	Load() error

	// Save persists the current in-memory inventory atomically.
	Save() error

	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist and loads the snapshot
	// when one is present. Returns ErrAlreadyAttached if called while
	// already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// ErrSnapshotMissing reports that no snapshot exists at the configured
// location. The in-memory inventory is reset to empty when Load hits this.
var ErrSnapshotMissing = errors.New("snapshot not found")
