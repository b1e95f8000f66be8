package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryAdd(t *testing.T) {
	tests := []struct {
		name    string
		item    string
		qty     int
		wantErr error
		wantQty int
	}{
		{
			name:    "add new item",
			item:    "apple",
			qty:     10,
			wantQty: 10,
		},
		{
			name:    "add zero to absent item stores no entry",
			item:    "apple",
			qty:     0,
			wantQty: 0,
		},
		{
			name:    "empty item rejected",
			item:    "",
			qty:     5,
			wantErr: ErrEmptyItem,
		},
		{
			name:    "negative quantity rejected",
			item:    "banana",
			qty:     -2,
			wantErr: ErrNegativeQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInventory()

			err := inv.Add(tt.item, tt.qty)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, inv.Len(), "inventory should not change on error")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantQty, inv.Quantity(tt.item))
				if tt.wantQty == 0 {
					assert.Equal(t, 0, inv.Len(), "no zero entry may be stored")
				}
			}
		})
	}
}

func TestInventoryAddAccumulates(t *testing.T) {
	inv := NewInventory()

	require.NoError(t, inv.Add("apple", 10))
	require.NoError(t, inv.Add("apple", 5))
	require.NoError(t, inv.Add("apple", 0))

	assert.Equal(t, 15, inv.Quantity("apple"))
	assert.Equal(t, 1, inv.Len())
}

func TestInventoryRemove(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		qty      int
		wantErr  error
		wantQty  int
		wantGone bool
	}{
		{
			name:    "partial removal",
			item:    "apple",
			qty:     3,
			wantQty: 7,
		},
		{
			name:     "exact removal deletes entry",
			item:     "apple",
			qty:      10,
			wantGone: true,
		},
		{
			name:     "over-removal deletes entry",
			item:     "apple",
			qty:      25,
			wantGone: true,
		},
		{
			name:    "absent item rejected",
			item:    "orange",
			qty:     1,
			wantErr: ErrItemNotFound,
		},
		{
			name:    "negative quantity rejected",
			item:    "apple",
			qty:     -1,
			wantErr: ErrNegativeQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInventory()
			require.NoError(t, inv.Add("apple", 10))

			err := inv.Remove(tt.item, tt.qty)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 10, inv.Quantity("apple"), "inventory should not change on error")
				return
			}
			assert.NoError(t, err)
			if tt.wantGone {
				assert.Equal(t, 0, inv.Quantity(tt.item))
				assert.Equal(t, 0, inv.Len(), "entry must be deleted, not retained at zero")
			} else {
				assert.Equal(t, tt.wantQty, inv.Quantity(tt.item))
			}
		})
	}
}

func TestInventoryQuantityUnknownItem(t *testing.T) {
	inv := NewInventory()
	assert.Equal(t, 0, inv.Quantity("ghost"))
}

func TestInventoryLowStock(t *testing.T) {
	inv := NewInventory()
	require.NoError(t, inv.Add("apple", 7))
	require.NoError(t, inv.Add("banana", 2))
	require.NoError(t, inv.Add("pear", 4))

	assert.Equal(t, []string{"banana", "pear"}, inv.LowStock(DefaultLowStockThreshold))
	assert.Equal(t, []string{"banana"}, inv.LowStock(3))
	assert.Nil(t, inv.LowStock(0))
}

func TestInventoryLowStockInsertionOrder(t *testing.T) {
	inv := NewInventory()
	require.NoError(t, inv.Add("zebra", 1))
	require.NoError(t, inv.Add("apple", 1))
	require.NoError(t, inv.Add("mango", 1))

	assert.Equal(t, []string{"zebra", "apple", "mango"}, inv.LowStock(5),
		"order must follow insertion, not lexicographic sorting")
}

func TestInventoryItems(t *testing.T) {
	inv := NewInventory()
	require.NoError(t, inv.Add("apple", 10))
	require.NoError(t, inv.Add("banana", 2))

	assert.Equal(t, []Stock{
		{Name: "apple", Quantity: 10},
		{Name: "banana", Quantity: 2},
	}, inv.Items())
}

func TestInventoryReport(t *testing.T) {
	t.Run("populated", func(t *testing.T) {
		inv := NewInventory()
		require.NoError(t, inv.Add("apple", 7))
		require.NoError(t, inv.Add("banana", 2))

		var sb strings.Builder
		inv.Report(&sb)

		sep := strings.Repeat("-", 30)
		want := "Items Report\n" + sep + "\napple -> 7\nbanana -> 2\n" + sep + "\n"
		assert.Equal(t, want, sb.String())
	})

	t.Run("empty", func(t *testing.T) {
		var sb strings.Builder
		NewInventory().Report(&sb)

		assert.Contains(t, sb.String(), "No items in inventory")
		assert.Contains(t, sb.String(), strings.Repeat("-", 30))
	})
}

func TestInventoryJournal(t *testing.T) {
	inv := NewInventory()
	journal := NewJournal()
	inv.SetJournal(journal)

	require.NoError(t, inv.Add("apple", 10))
	require.Error(t, inv.Add("banana", -2))
	require.NoError(t, inv.Remove("apple", 3))

	require.Equal(t, 1, journal.Len(), "only successful adds are journaled")
	entry := journal.Entries()[0]
	assert.Equal(t, "Added 10 of apple", entry.Message)
	assert.NotEmpty(t, entry.EntryID)
	assert.False(t, entry.At.IsZero())
	assert.Contains(t, entry.String(), "Added 10 of apple")
}

func TestInventoryMarshalJSON(t *testing.T) {
	inv := NewInventory()
	require.NoError(t, inv.Add("banana", 2))
	require.NoError(t, inv.Add("apple", 7))

	data, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.Equal(t, `{"banana":2,"apple":7}`, string(data),
		"keys must follow insertion order")

	pretty, err := json.MarshalIndent(inv, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"banana\": 2,\n  \"apple\": 7\n}", string(pretty))
}

func TestInventoryUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Stock
		wantErr bool
	}{
		{
			name:  "preserves document order",
			input: `{"banana": 2, "apple": 7}`,
			want:  []Stock{{Name: "banana", Quantity: 2}, {Name: "apple", Quantity: 7}},
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  []Stock{},
		},
		{
			name:  "non-positive entries dropped",
			input: `{"apple": 7, "ghost": 0, "debt": -3}`,
			want:  []Stock{{Name: "apple", Quantity: 7}},
		},
		{
			name:    "array rejected",
			input:   `[1, 2]`,
			wantErr: true,
		},
		{
			name:    "string quantity rejected",
			input:   `{"apple": "seven"}`,
			wantErr: true,
		},
		{
			name:    "fractional quantity rejected",
			input:   `{"apple": 2.5}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInventory()

			err := json.Unmarshal([]byte(tt.input), inv)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, inv.Items())
			assert.Equal(t, len(tt.want), inv.Len())
		})
	}
}

func TestInventoryRoundTrip(t *testing.T) {
	inv := NewInventory()
	require.NoError(t, inv.Add("apple", 7))
	require.NoError(t, inv.Add("banana", 2))
	require.NoError(t, inv.Add("cherry", 40))

	data, err := json.Marshal(inv)
	require.NoError(t, err)

	restored := NewInventory()
	require.NoError(t, json.Unmarshal(data, restored))
	assert.Equal(t, inv.Items(), restored.Items())
}
