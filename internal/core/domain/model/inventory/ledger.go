// Package inventory provides the stock ledger: per-ingredient quantity
// counters grouped into a closed set of categories, with bounded adjustment
// and one-shot low-stock alerting.
//
// The ledger is a singleton aggregate. Quantities are floor-clamped at zero,
// so a large negative adjustment can never drive the ledger negative. Each
// entry owns its own alerted flag, persisted alongside the quantity, so the
// at-most-once low-stock alert survives process restarts.
package inventory

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// InitialQuantity is the stock level assigned to a newly added ingredient.
	InitialQuantity = 20

	// LowStockThreshold is the quantity below which a low-stock alert fires.
	LowStockThreshold = 10
)

// ErrLedgerIsNotConstructed is returned when a Ledger instance was not
// created through NewLedger or RestoreLedger.
var ErrLedgerIsNotConstructed = errors.New("Ledger must be created via NewLedger or RestoreLedger constructor")

// Entry is one stock lot of an ingredient: a name, its remaining quantity,
// and whether a low-stock alert has already been sent for it.
type Entry struct {
	name     string
	quantity int
	alerted  bool
}

// NewEntry creates a fresh entry with the initial stock quantity.
func NewEntry(name string) (Entry, error) {
	if name == "" {
		return Entry{}, errs.NewValueIsRequiredError("name")
	}
	return Entry{name: name, quantity: InitialQuantity}, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(name string, quantity int, alerted bool) Entry {
	return Entry{name: name, quantity: quantity, alerted: alerted}
}

// Name returns the ingredient name.
func (e Entry) Name() string { return e.name }

// Quantity returns the remaining stock count.
func (e Entry) Quantity() int { return e.quantity }

// Alerted reports whether a low-stock alert was already sent for this entry.
func (e Entry) Alerted() bool { return e.alerted }

// Adjustment is the outcome of a quantity adjustment on a single entry.
type Adjustment struct {
	// Entry is the entry state after the adjustment was applied.
	Entry Entry

	// LowStock is true when this adjustment crossed the alert threshold for
	// the first time and a notification should be sent.
	LowStock bool
}

// Ledger is the singleton aggregate holding all ingredient stock, one ordered
// entry list per category. Entries are not deduplicated by name: adding an
// existing name creates a second stock lot, and adjustments address the first
// lot with a matching name.
type Ledger struct { //nolint:recvcheck //using for validation
	base    []Entry
	sauce   []Entry
	cheese  []Entry
	veggies []Entry
	meat    []Entry

	guard guard.ConstructorGuard
}

// NewLedger creates an empty ledger with all five categories present.
func NewLedger() *Ledger {
	return &Ledger{
		base:    []Entry{},
		sauce:   []Entry{},
		cheese:  []Entry{},
		veggies: []Entry{},
		meat:    []Entry{},
		guard:   guard.NewConstructorGuard(),
	}
}

// RestoreLedger reconstructs the ledger from persistence.
func RestoreLedger(base, sauce, cheese, veggies, meat []Entry) *Ledger {
	l := NewLedger()
	l.base = base
	l.sauce = sauce
	l.cheese = cheese
	l.veggies = veggies
	l.meat = meat
	return l
}

// Validate ensures the Ledger was created through one of its constructors.
func (l *Ledger) Validate() error {
	if l == nil {
		return ErrLedgerIsNotConstructed
	}
	return l.guard.Validate(ErrLedgerIsNotConstructed)
}

// section dispatches a category to its backing entry list. This is the single
// lookup point for all mutations, keeping the "invalid category is an error"
// contract in one place.
func (l *Ledger) section(category Category) (*[]Entry, error) {
	switch category {
	case CategoryBase:
		return &l.base, nil
	case CategorySauce:
		return &l.sauce, nil
	case CategoryCheese:
		return &l.cheese, nil
	case CategoryVeggies:
		return &l.veggies, nil
	case CategoryMeat:
		return &l.meat, nil
	case CategoryUnknown:
		fallthrough
	default:
		return nil, category.Validate()
	}
}

// Entries returns a copy of the entry list for one category.
func (l *Ledger) Entries(category Category) ([]Entry, error) {
	section, err := l.section(category)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(*section))
	copy(entries, *section)
	return entries, nil
}

// AddEntry appends a new stock lot with the initial quantity. Names are not
// deduplicated; the same ingredient may exist as multiple lots.
func (l *Ledger) AddEntry(category Category, name string) error {
	section, err := l.section(category)
	if err != nil {
		return err
	}

	entry, err := NewEntry(name)
	if err != nil {
		return err
	}

	*section = append(*section, entry)
	return nil
}

// RenameEntry renames the first entry matching oldName, preserving its
// quantity and alert state.
func (l *Ledger) RenameEntry(category Category, oldName, newName string) error {
	section, err := l.section(category)
	if err != nil {
		return err
	}
	if newName == "" {
		return errs.NewValueIsRequiredError("newName")
	}

	for idx := range *section {
		if (*section)[idx].name == oldName {
			(*section)[idx].name = newName
			return nil
		}
	}
	return errs.NewObjectNotFoundError("ingredient", oldName)
}

// AdjustQuantity applies a delta to the first entry matching name, clamping
// the result at zero. When the clamped quantity drops below
// LowStockThreshold and the entry has not alerted before, the returned
// Adjustment asks the caller to send a notification and the entry's alerted
// flag is set, making the alert one-shot for the entry's lifetime.
func (l *Ledger) AdjustQuantity(category Category, name string, delta int) (Adjustment, error) {
	section, err := l.section(category)
	if err != nil {
		return Adjustment{}, err
	}

	for idx := range *section {
		if (*section)[idx].name != name {
			continue
		}

		entry := &(*section)[idx]
		entry.quantity += delta
		if entry.quantity < 0 {
			entry.quantity = 0
		}

		lowStock := entry.quantity < LowStockThreshold && !entry.alerted
		if lowStock {
			entry.alerted = true
		}

		return Adjustment{Entry: *entry, LowStock: lowStock}, nil
	}

	return Adjustment{}, errs.NewObjectNotFoundError("ingredient", name)
}
