package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Inventory operation errors.
var (
	ErrEmptyItem        = errors.New("item name must not be empty")
	ErrNegativeQuantity = errors.New("quantity must be non-negative")
	ErrItemNotFound     = errors.New("item not found")
)

// DefaultLowStockThreshold is the threshold used by low-stock queries when
// the caller does not supply one.
const DefaultLowStockThreshold = 5

// reportSeparatorWidth is the width of the dashed line bounding a report.
const reportSeparatorWidth = 30

// Stock is a single (item, quantity) pair in an inventory snapshot.
type Stock struct {
	Name     string
	Quantity int
}

// Inventory maps item names to positive integer quantities.
// Iteration order is insertion order. No stored entry has quantity <= 0;
// a removal that drives a quantity to zero or below deletes the entry.
//
// Inventory is not safe for concurrent use; callers in a concurrent
// context must serialize access externally.
type Inventory struct {
	names      []string
	quantities map[string]int
	journal    *Journal
}

// NewInventory returns an empty inventory with no journal attached.
func NewInventory() *Inventory {
	return &Inventory{quantities: make(map[string]int)}
}

// SetJournal attaches a journal that receives one entry per successful Add.
// A nil journal detaches. The journal is owned by the caller and is never
// persisted with the inventory.
func (inv *Inventory) SetJournal(j *Journal) {
	inv.journal = j
}

// Add increments the quantity of item by qty, creating the entry at qty if
// absent. Returns ErrEmptyItem or ErrNegativeQuantity without mutating on
// invalid input. Adding 0 to an absent item succeeds without creating a
// zero entry. On success a timestamped entry is appended to the attached
// journal, if any.
func (inv *Inventory) Add(item string, qty int) error {
	if item == "" {
		return ErrEmptyItem
	}
	if qty < 0 {
		return ErrNegativeQuantity
	}

	if _, ok := inv.quantities[item]; ok {
		inv.quantities[item] += qty
	} else if qty > 0 {
		inv.names = append(inv.names, item)
		inv.quantities[item] = qty
	}

	if inv.journal != nil {
		inv.journal.Record(fmt.Sprintf("Added %d of %s", qty, item))
	}
	return nil
}

// Remove decrements the quantity of item by qty. Returns ErrItemNotFound
// when the item is absent and ErrNegativeQuantity when qty < 0. When the
// resulting quantity is <= 0 the entry is deleted entirely; zero-quantity
// entries are never retained.
func (inv *Inventory) Remove(item string, qty int) error {
	if _, ok := inv.quantities[item]; !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, item)
	}
	if qty < 0 {
		return ErrNegativeQuantity
	}

	inv.quantities[item] -= qty
	if inv.quantities[item] <= 0 {
		inv.delete(item)
	}
	return nil
}

// Quantity returns the current quantity of item, or 0 when absent.
func (inv *Inventory) Quantity(item string) int {
	return inv.quantities[item]
}

// LowStock returns the names of items with quantity strictly below
// threshold, in insertion order.
func (inv *Inventory) LowStock(threshold int) []string {
	var result []string
	for _, name := range inv.names {
		if inv.quantities[name] < threshold {
			result = append(result, name)
		}
	}
	return result
}

// Items returns an ordered snapshot of every (name, quantity) pair.
func (inv *Inventory) Items() []Stock {
	items := make([]Stock, len(inv.names))
	for i, name := range inv.names {
		items[i] = Stock{Name: name, Quantity: inv.quantities[name]}
	}
	return items
}

// Len returns the number of distinct items.
func (inv *Inventory) Len() int {
	return len(inv.names)
}

// Report writes a human-readable listing of every item and quantity to w,
// bounded by fixed-width separator lines. An empty inventory produces an
// explicit notice instead of a listing.
func (inv *Inventory) Report(w io.Writer) {
	sep := strings.Repeat("-", reportSeparatorWidth)
	fmt.Fprintln(w, "Items Report")
	fmt.Fprintln(w, sep)
	if len(inv.names) == 0 {
		fmt.Fprintln(w, "No items in inventory")
	} else {
		for _, name := range inv.names {
			fmt.Fprintf(w, "%s -> %d\n", name, inv.quantities[name])
		}
	}
	fmt.Fprintln(w, sep)
}

// delete removes item from both the map and the ordered name list.
func (inv *Inventory) delete(item string) {
	delete(inv.quantities, item)
	for i, name := range inv.names {
		if name == item {
			inv.names = append(inv.names[:i], inv.names[i+1:]...)
			return
		}
	}
}

// MarshalJSON encodes the inventory as a JSON object with keys in insertion
// order. The stdlib object encoder sorts map keys, so the object is built
// by hand from the ordered name list.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range inv.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", inv.quantities[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of item names to integer quantities,
// preserving the document's key order. Non-object documents and non-integer
// quantities are rejected. Entries with quantity <= 0 are dropped so the
// inventory invariant holds even for hand-edited snapshots.
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding inventory: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decoding inventory: expected JSON object, got %v", tok)
	}

	names := make([]string, 0)
	quantities := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding inventory key: %w", err)
		}
		name := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding inventory value: %w", err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return fmt.Errorf("decoding inventory: quantity for %q is not a number", name)
		}
		qty, err := num.Int64()
		if err != nil {
			return fmt.Errorf("decoding inventory: quantity for %q is not an integer: %w", name, err)
		}
		if qty <= 0 {
			continue
		}
		if _, seen := quantities[name]; !seen {
			names = append(names, name)
		}
		quantities[name] = int(qty)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding inventory: %w", err)
	}

	inv.names = names
	inv.quantities = quantities
	return nil
}
