// Package sqlite implements the SQLite backend for the Stockroom storage
// system. The inventory is snapshotted into a single items table; the
// database file is the source of truth.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// DefaultSnapshotName is the database file name used when the Config does
// not override it.
const DefaultSnapshotName = "stockroom.db"

// Store implements types.Store on a SQLite database.
type Store struct {
	mu       sync.Mutex
	attached bool
	db       *sql.DB
	inv      *types.Inventory

	// hasSnapshot is false until the database file existed at Attach or a
	// Save has completed; Load on a fresh database reports
	// ErrSnapshotMissing like a missing JSON file would.
	hasSnapshot bool
}

// NewStore creates a new SQLite store. The store is not attached; call
// Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration. Creates
// DataDir if needed, opens the database, applies the schema, and loads the
// snapshot when the database file already existed.
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
	dbPath := filepath.Join(dataDir, snapshot)

	_, statErr := os.Stat(dbPath)
	existed := statErr == nil

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}

	s.db = db
	s.inv = types.NewInventory()
	s.hasSnapshot = existed
	s.attached = true

	if existed {
		if err := s.load(); err != nil {
			db.Close()
			s.db = nil
			s.attached = false
			return err
		}
	}
	return nil
}

// Detach closes the database. Idempotent: multiple calls succeed.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	s.attached = false
	s.inv = nil

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
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

// Load replaces the in-memory inventory with the stored snapshot. A fresh
// database that has never been saved resets the inventory to empty and
// returns ErrSnapshotMissing. A query failure returns an error and leaves
// the in-memory inventory untouched.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if !s.hasSnapshot {
		s.inv = types.NewInventory()
		return types.ErrSnapshotMissing
	}
	return s.load()
}

func (s *Store) load() error {
	rows, err := s.db.Query("SELECT name, quantity FROM items ORDER BY position")
	if err != nil {
		return fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	loaded := types.NewInventory()
	for rows.Next() {
		var name string
		var qty int
		if err := rows.Scan(&name, &qty); err != nil {
			return fmt.Errorf("scanning item row: %w", err)
		}
		if err := loaded.Add(name, qty); err != nil {
			return fmt.Errorf("restoring item %q: %w", name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading item rows: %w", err)
	}

	s.inv = loaded
	return nil
}

// Save replaces the items table with the current inventory in a single
// transaction.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing items: %w", err)
	}
	for pos, item := range s.inv.Items() {
		if _, err := tx.Exec(
			"INSERT INTO items (name, quantity, position) VALUES (?, ?, ?)",
			item.Name, item.Quantity, pos,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting item %q: %w", item.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}

	s.hasSnapshot = true
	return nil
}
