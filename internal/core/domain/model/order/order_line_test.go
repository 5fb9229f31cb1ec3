package order_test

import (
	"strings"
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderLine(t *testing.T) {
	t.Run("creates_valid_line", func(t *testing.T) {
		line, err := order.NewOrderLine("Apple", "Phone", decimal.RequireFromString("999.99"), 2)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, "Apple", line.Brand())
		assert.Equal(t, "Phone", line.Model())
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, int64(0), line.ID())
	})

	t.Run("requires_brand_and_model", func(t *testing.T) {
		_, err := order.NewOrderLine("", "", decimal.Zero, 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("enforces_length_bounds", func(t *testing.T) {
		_, err := order.NewOrderLine(strings.Repeat("a", 26), "Phone", decimal.Zero, 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewOrderLine("Apple", strings.Repeat("a", 26), decimal.Zero, 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_negative_cost", func(t *testing.T) {
		_, err := order.NewOrderLine("Apple", "Phone", decimal.RequireFromString("-0.01"), 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_cost_with_more_than_two_fractional_digits", func(t *testing.T) {
		_, err := order.NewOrderLine("Apple", "Phone", decimal.RequireFromString("9.999"), 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		_, err := order.NewOrderLine("Apple", "Phone", decimal.Zero, -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_cost_and_quantity_are_allowed", func(t *testing.T) {
		_, err := order.NewOrderLine("Apple", "Phone", decimal.Zero, 0)
		require.NoError(t, err)
	})
}

func TestOrderLine_LineTotal(t *testing.T) {
	t.Run("multiplies_cost_by_quantity", func(t *testing.T) {
		line, err := order.NewOrderLine("Apple", "Tablet", decimal.RequireFromString("5000"), 2)
		require.NoError(t, err)

		assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("10000.00")),
			"line total was %s", line.LineTotal())
	})

	t.Run("rounds_half_up_to_two_decimals", func(t *testing.T) {
		// 0.33 * 35 = 11.55; 0.07 * 15 = 1.05
		line, err := order.NewOrderLine("Acme", "Widget", decimal.RequireFromString("0.07"), 15)
		require.NoError(t, err)

		assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("1.05")),
			"line total was %s", line.LineTotal())
	})
}

func TestRestoreOrderLine(t *testing.T) {
	line, err := order.RestoreOrderLine(11, "Apple", "Phone", decimal.RequireFromString("1000"), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(11), line.ID())
}
