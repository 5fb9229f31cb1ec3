package http

import (
	"encoding/json"
	"testing"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8080"

func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	address, err := order.NewAddress("2213 Camelback Rd", "Apt 2", "Phoenix", "AZ", "85017")
	require.NoError(t, err)

	line, err := order.NewOrderLine("Apple", "Phone", decimal.NewFromInt(1000), 1)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		42,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		status,
		"Marie", "Curie", "marie.curie@gmail.com", "",
		address, []order.OrderLine{line},
		decimal.NewFromInt(100), decimal.NewFromInt(50),
	)
	require.NoError(t, err)
	return aggregate
}

func TestAssembleOrder(t *testing.T) {
	t.Run("processing_order_has_lifecycle_links", func(t *testing.T) {
		response := assembleOrder(testOrder(t, order.Processing), testBaseURL)

		assert.Equal(t, "http://localhost:8080/orders/42", response.Links["self"].Href)
		assert.Equal(t, "http://localhost:8080/orders", response.Links["orders"].Href)
		assert.Equal(t, "http://localhost:8080/orders/42/cancel", response.Links["cancel"].Href)
		assert.Equal(t, "http://localhost:8080/orders/42/complete", response.Links["complete"].Href)
	})

	t.Run("completed_order_has_only_self_and_orders", func(t *testing.T) {
		response := assembleOrder(testOrder(t, order.Completed), testBaseURL)

		assert.Len(t, response.Links, 2)
		assert.Contains(t, response.Links, "self")
		assert.Contains(t, response.Links, "orders")
	})

	t.Run("canceled_order_has_only_self_and_orders", func(t *testing.T) {
		response := assembleOrder(testOrder(t, order.Canceled), testBaseURL)

		assert.Len(t, response.Links, 2)
		assert.NotContains(t, response.Links, "cancel")
		assert.NotContains(t, response.Links, "complete")
	})

	t.Run("fields_and_derived_totals", func(t *testing.T) {
		response := assembleOrder(testOrder(t, order.Processing), testBaseURL)

		assert.Equal(t, int64(42), response.ID)
		assert.Equal(t, "2024-03-01", response.Date)
		assert.Equal(t, "PROCESSING", response.Status)
		assert.Equal(t, "Marie", response.FirstName)
		assert.Equal(t, "Phoenix", response.Address.City)
		require.Len(t, response.OrderLines, 1)
		assert.Equal(t, "Apple", response.OrderLines[0].Brand)
		assert.True(t, decimal.NewFromInt(1000).Equal(response.Subtotal.Decimal()))
		assert.True(t, decimal.NewFromInt(1150).Equal(response.Total.Decimal()))
	})

	t.Run("amounts_serialize_as_two_decimal_numbers", func(t *testing.T) {
		response := assembleOrder(testOrder(t, order.Processing), testBaseURL)

		raw, err := json.Marshal(response)
		require.NoError(t, err)

		assert.Contains(t, string(raw), `"subtotal":1000.00`)
		assert.Contains(t, string(raw), `"total":1150.00`)
		assert.Contains(t, string(raw), `"tax":100.00`)
		assert.Contains(t, string(raw), `"shipping":50.00`)
	})
}

func TestAssembleOrders(t *testing.T) {
	aggregates := []*order.Order{
		testOrder(t, order.Processing),
		testOrder(t, order.Completed),
	}

	response := assembleOrders(aggregates, testBaseURL)

	require.Len(t, response.Orders, 2)
	assert.Equal(t, "http://localhost:8080/orders", response.Links["self"].Href)
	assert.Contains(t, response.Orders[0].Links, "cancel")
	assert.NotContains(t, response.Orders[1].Links, "cancel")
}

func TestAssembleOrders_Empty(t *testing.T) {
	response := assembleOrders(nil, testBaseURL)

	assert.NotNil(t, response.Orders)
	assert.Empty(t, response.Orders)
	assert.Contains(t, response.Links, "self")
}
