// Package jsonfile implements the JSON file backend for the Stockroom
// storage system. The snapshot is a single pretty-printed JSON object whose
// keys are item names in insertion order.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// DefaultSnapshotName is the snapshot file name used when the Config does
// not override it.
const DefaultSnapshotName = "inventory.json"

// Store implements types.Store with a JSON object file as the source of
// truth. The in-memory inventory is loaded on Attach and persisted
// atomically on Save.
type Store struct {
	mu       sync.Mutex
	attached bool
	path     string
	inv      *types.Inventory
}

// NewStore creates a new JSON file store. The store is not attached; call
// Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration. Creates
// DataDir if it does not exist and loads the snapshot when one is present;
// a missing snapshot leaves the inventory empty without error.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	snapshot := config.Snapshot
	if snapshot == "" {
		snapshot = DefaultSnapshotName
	}

	s.path = filepath.Join(dataDir, snapshot)
	s.inv = types.NewInventory()
	s.attached = true

	if err := s.load(); err != nil && !errors.Is(err, types.ErrSnapshotMissing) {
		s.attached = false
		return err
	}
	return nil
}

// Detach releases the store. Idempotent: multiple calls succeed.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attached = false
	s.inv = nil
	return nil
}

// Inventory returns the in-memory inventory held by the store.
func (s *Store) Inventory() (*types.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.inv, nil
}

// Load replaces the in-memory inventory with the parsed snapshot. A missing
// snapshot resets the inventory to empty and returns ErrSnapshotMissing. A
// malformed snapshot returns an error and leaves the in-memory inventory
// untouched.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	return s.load()
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.inv = types.NewInventory()
		return types.ErrSnapshotMissing
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	loaded := types.NewInventory()
	if err := json.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}
	s.inv = loaded
	return nil
}

// Save persists the current inventory to the snapshot file using the
// temp-file, fsync, rename pattern.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	data, err := json.MarshalIndent(s.inv, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}
	return writeAtomic(s.path, append(data, '\n'))
}

// writeAtomic writes data to path via a temp file in the same directory,
// syncing before the rename so a crash never leaves a partial snapshot.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".inventory-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
