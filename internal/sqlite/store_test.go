package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func sqliteConfig(dataDir string) types.Config {
	return types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
}

func TestStoreLifecycle(t *testing.T) {
	dataDir := t.TempDir()
	s := NewStore()

	_, err := s.Inventory()
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	require.NoError(t, s.Attach(sqliteConfig(dataDir)))
	assert.ErrorIs(t, s.Attach(sqliteConfig(dataDir)), types.ErrAlreadyAttached)

	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach())
	assert.ErrorIs(t, s.Save(), types.ErrStoreDetached)
}

func TestStoreAttachRejectsBadConfig(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Attach(types.Config{Backend: "redis"}), types.ErrBackendUnknown)
}

func TestStoreLoadFreshDatabase(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Attach(sqliteConfig(t.TempDir())))
	defer s.Detach()

	inv, err := s.Inventory()
	require.NoError(t, err)
	require.NoError(t, inv.Add("apple", 7))

	err = s.Load()
	assert.ErrorIs(t, err, types.ErrSnapshotMissing)

	inv, err = s.Inventory()
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Len(), "load on a never-saved database resets to empty")
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	s := NewStore()
	require.NoError(t, s.Attach(sqliteConfig(dataDir)))

	inv, err := s.Inventory()
	require.NoError(t, err)
	require.NoError(t, inv.Add("banana", 2))
	require.NoError(t, inv.Add("apple", 7))
	require.NoError(t, s.Save())
	require.NoError(t, s.Detach())

	fresh := NewStore()
	require.NoError(t, fresh.Attach(sqliteConfig(dataDir)))
	defer fresh.Detach()

	restored, err := fresh.Inventory()
	require.NoError(t, err)
	assert.Equal(t, []types.Stock{
		{Name: "banana", Quantity: 2},
		{Name: "apple", Quantity: 7},
	}, restored.Items(), "insertion order must survive the round-trip")
}

func TestStoreSaveReplacesPriorSnapshot(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Attach(sqliteConfig(t.TempDir())))
	defer s.Detach()

	inv, err := s.Inventory()
	require.NoError(t, err)
	require.NoError(t, inv.Add("apple", 7))
	require.NoError(t, s.Save())

	require.NoError(t, inv.Remove("apple", 7))
	require.NoError(t, inv.Add("banana", 2))
	require.NoError(t, s.Save())

	require.NoError(t, s.Load())
	inv, err = s.Inventory()
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Quantity("apple"))
	assert.Equal(t, 2, inv.Quantity("banana"))
	assert.Equal(t, 1, inv.Len())
}
