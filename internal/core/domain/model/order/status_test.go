package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		tests := map[string]order.Status{
			"Placed":         order.StatusPlaced,
			"Preparing":      order.StatusPreparing,
			"OutForDelivery": order.StatusOutForDelivery,
			"Delivered":      order.StatusDelivered,
			"Cancelled":      order.StatusCancelled,
		}

		for text, expected := range tests {
			status, err := order.ParseStatus(text)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := order.ParseStatus("Shipped")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown_is_not_parseable", func(t *testing.T) {
		_, err := order.ParseStatus("Unknown")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses_pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPlaced,
			order.StatusPreparing,
			order.StatusOutForDelivery,
			order.StatusDelivered,
			order.StatusCancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown_and_out_of_range_fail", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())

	assert.False(t, order.StatusPlaced.IsTerminal())
	assert.False(t, order.StatusPreparing.IsTerminal())
	assert.False(t, order.StatusOutForDelivery.IsTerminal())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Placed", order.StatusPlaced.String())
	assert.Equal(t, "OutForDelivery", order.StatusOutForDelivery.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}
