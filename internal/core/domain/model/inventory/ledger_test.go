package inventory_test

import (
	"testing"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Run("valid_categories", func(t *testing.T) {
		tests := map[string]inventory.Category{
			"base":    inventory.CategoryBase,
			"sauce":   inventory.CategorySauce,
			"cheese":  inventory.CategoryCheese,
			"veggies": inventory.CategoryVeggies,
			"meat":    inventory.CategoryMeat,
		}

		for text, expected := range tests {
			category, err := inventory.ParseCategory(text)

			require.NoError(t, err)
			assert.Equal(t, expected, category)
		}
	})

	t.Run("invalid_category", func(t *testing.T) {
		_, err := inventory.ParseCategory("toppings")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewLedger(t *testing.T) {
	l := inventory.NewLedger()

	require.NoError(t, l.Validate())
	for _, category := range inventory.Categories() {
		entries, err := l.Entries(category)
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}

func TestLedger_AddEntry(t *testing.T) {
	t.Run("new_entry_starts_at_initial_quantity", func(t *testing.T) {
		l := inventory.NewLedger()

		require.NoError(t, l.AddEntry(inventory.CategoryCheese, "Mozzarella"))

		entries, err := l.Entries(inventory.CategoryCheese)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Mozzarella", entries[0].Name())
		assert.Equal(t, inventory.InitialQuantity, entries[0].Quantity())
		assert.False(t, entries[0].Alerted())
	})

	t.Run("duplicate_names_create_separate_lots", func(t *testing.T) {
		l := inventory.NewLedger()

		require.NoError(t, l.AddEntry(inventory.CategoryCheese, "Mozzarella"))
		require.NoError(t, l.AddEntry(inventory.CategoryCheese, "Mozzarella"))

		entries, err := l.Entries(inventory.CategoryCheese)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("invalid_category_is_rejected", func(t *testing.T) {
		l := inventory.NewLedger()

		err := l.AddEntry(inventory.CategoryUnknown, "Mozzarella")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("name_is_required", func(t *testing.T) {
		l := inventory.NewLedger()

		err := l.AddEntry(inventory.CategoryCheese, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestLedger_RenameEntry(t *testing.T) {
	t.Run("renames_in_place_preserving_quantity", func(t *testing.T) {
		l := inventory.NewLedger()
		require.NoError(t, l.AddEntry(inventory.CategorySauce, "Marinara"))
		_, err := l.AdjustQuantity(inventory.CategorySauce, "Marinara", -3)
		require.NoError(t, err)

		require.NoError(t, l.RenameEntry(inventory.CategorySauce, "Marinara", "Napoli"))

		entries, err := l.Entries(inventory.CategorySauce)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Napoli", entries[0].Name())
		assert.Equal(t, 17, entries[0].Quantity())
	})

	t.Run("missing_entry_is_not_found", func(t *testing.T) {
		l := inventory.NewLedger()

		err := l.RenameEntry(inventory.CategorySauce, "Marinara", "Napoli")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("invalid_category_is_rejected", func(t *testing.T) {
		l := inventory.NewLedger()

		err := l.RenameEntry(inventory.Category(42), "Marinara", "Napoli")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLedger_AdjustQuantity(t *testing.T) {
	t.Run("applies_delta", func(t *testing.T) {
		l := inventory.NewLedger()
		require.NoError(t, l.AddEntry(inventory.CategoryVeggies, "Onion"))

		adj, err := l.AdjustQuantity(inventory.CategoryVeggies, "Onion", -5)

		require.NoError(t, err)
		assert.Equal(t, 15, adj.Entry.Quantity())
		assert.False(t, adj.LowStock)
	})

	t.Run("quantity_never_goes_negative", func(t *testing.T) {
		l := inventory.NewLedger()
		require.NoError(t, l.AddEntry(inventory.CategoryVeggies, "Onion"))

		adj, err := l.AdjustQuantity(inventory.CategoryVeggies, "Onion", -500)

		require.NoError(t, err)
		assert.Equal(t, 0, adj.Entry.Quantity())
	})

	t.Run("low_stock_alert_fires_exactly_once", func(t *testing.T) {
		l := inventory.NewLedger()
		require.NoError(t, l.AddEntry(inventory.CategoryCheese, "Mozzarella"))

		adj, err := l.AdjustQuantity(inventory.CategoryCheese, "Mozzarella", -15)
		require.NoError(t, err)
		assert.Equal(t, 5, adj.Entry.Quantity())
		assert.True(t, adj.LowStock)

		adj, err = l.AdjustQuantity(inventory.CategoryCheese, "Mozzarella", -1)
		require.NoError(t, err)
		assert.Equal(t, 4, adj.Entry.Quantity())
		assert.False(t, adj.LowStock)
	})

	t.Run("threshold_is_strictly_below_ten", func(t *testing.T) {
		l := inventory.NewLedger()
		require.NoError(t, l.AddEntry(inventory.CategoryCheese, "Cheddar"))

		adj, err := l.AdjustQuantity(inventory.CategoryCheese, "Cheddar", -10)
		require.NoError(t, err)
		assert.Equal(t, inventory.LowStockThreshold, adj.Entry.Quantity())
		assert.False(t, adj.LowStock)

		adj, err = l.AdjustQuantity(inventory.CategoryCheese, "Cheddar", -1)
		require.NoError(t, err)
		assert.True(t, adj.LowStock)
	})

	t.Run("restock_above_threshold_does_not_rearm_alert", func(t *testing.T) {
		l := inventory.NewLedger()
		require.NoError(t, l.AddEntry(inventory.CategoryMeat, "Pepperoni"))

		adj, err := l.AdjustQuantity(inventory.CategoryMeat, "Pepperoni", -15)
		require.NoError(t, err)
		require.True(t, adj.LowStock)

		_, err = l.AdjustQuantity(inventory.CategoryMeat, "Pepperoni", +20)
		require.NoError(t, err)

		adj, err = l.AdjustQuantity(inventory.CategoryMeat, "Pepperoni", -20)
		require.NoError(t, err)
		assert.False(t, adj.LowStock)
	})

	t.Run("missing_entry_is_not_found", func(t *testing.T) {
		l := inventory.NewLedger()

		_, err := l.AdjustQuantity(inventory.CategoryMeat, "Pepperoni", -1)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("invalid_category_is_rejected", func(t *testing.T) {
		l := inventory.NewLedger()

		_, err := l.AdjustQuantity(inventory.CategoryUnknown, "Pepperoni", -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreLedger(t *testing.T) {
	base := []inventory.Entry{inventory.RestoreEntry("Thin Crust", 8, true)}
	l := inventory.RestoreLedger(base, nil, nil, nil, nil)

	require.NoError(t, l.Validate())

	entries, err := l.Entries(inventory.CategoryBase)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 8, entries[0].Quantity())
	assert.True(t, entries[0].Alerted())

	// restored alerted flag keeps the alert one-shot across restarts
	adj, err := l.AdjustQuantity(inventory.CategoryBase, "Thin Crust", -1)
	require.NoError(t, err)
	assert.False(t, adj.LowStock)
}
