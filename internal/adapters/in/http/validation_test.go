package http

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *OrderRequest {
	tax := decimal.NewFromInt(100)
	shipping := decimal.NewFromInt(50)
	cost := decimal.NewFromInt(1000)
	quantity := 1

	return &OrderRequest{
		FirstName: "Marie",
		LastName:  "Curie",
		Email:     "marie.curie@gmail.com",
		Phone:     "(213) 454-1324",
		Address: &AddressRequest{
			Address1: "2213 Camelback Rd",
			Address2: "Apt 2",
			City:     "Phoenix",
			State:    "AZ",
			Zip:      "85017",
		},
		OrderLines: []OrderLineRequest{
			{Brand: "Apple", Model: "Phone", Cost: &cost, Quantity: &quantity},
		},
		Tax:      &tax,
		Shipping: &shipping,
	}
}

func TestRequestValidator_ValidRequest(t *testing.T) {
	rv := NewRequestValidator()
	assert.Nil(t, rv.Validate(validRequest()))
}

func TestRequestValidator_EmptyRequest(t *testing.T) {
	rv := NewRequestValidator()

	report := rv.Validate(&OrderRequest{})
	require.NotNil(t, report)

	assert.Equal(t, "First name is required.", report["firstName"])
	assert.Equal(t, "Last name is required.", report["lastName"])
	assert.Equal(t, "Email is required.", report["email"])
	assert.Equal(t, "Tax is required.", report["tax"])
	assert.Equal(t, "Shipping is required.", report["shipping"])
	assert.Equal(t, "Address is required.", report["address"])
	assert.Equal(t, "Order lines is required.", report["orderLines"])
	assert.NotContains(t, report, "phone")
}

func TestRequestValidator_NestedFieldPaths(t *testing.T) {
	rv := NewRequestValidator()

	request := validRequest()
	request.Address.City = ""
	request.Address.State = "Arizona"
	request.OrderLines[0].Brand = ""
	request.OrderLines[0].Cost = nil

	report := rv.Validate(request)
	require.NotNil(t, report)

	assert.Equal(t, "City is required.", report["address.city"])
	assert.Equal(t, "State must be 2 characters.", report["address.state"])
	assert.Equal(t, "Brand is required.", report["orderLines[0].brand"])
	assert.Equal(t, "Cost is required.", report["orderLines[0].cost"])
}

func TestRequestValidator_SizeBounds(t *testing.T) {
	rv := NewRequestValidator()
	tooLong := "This is more than twenty five characters, even more than 50!"

	request := validRequest()
	request.FirstName = tooLong
	request.LastName = tooLong
	request.Address.Address1 = tooLong
	request.Address.Address2 = tooLong
	request.Address.Zip = "123"
	request.OrderLines[0].Model = tooLong

	report := rv.Validate(request)
	require.NotNil(t, report)

	assert.Equal(t, "First name cannot be greater than 25 characters.", report["firstName"])
	assert.Equal(t, "Last name cannot be greater than 25 characters.", report["lastName"])
	assert.Equal(t, "Address1 must be less than 50 characters, inclusive.", report["address.address1"])
	assert.Equal(t, "Address2 must be less than 25 characters, inclusive.", report["address.address2"])
	assert.Equal(t, "Zip code must be between 5 and 10 characters, inclusive.", report["address.zip"])
	assert.Equal(t, "Model must be between 1 and 25 characters, inclusive.", report["orderLines[0].model"])
}

func TestRequestValidator_Formats(t *testing.T) {
	rv := NewRequestValidator()

	t.Run("bad_email", func(t *testing.T) {
		request := validRequest()
		request.Email = "not-an-email"

		report := rv.Validate(request)
		require.NotNil(t, report)
		assert.Equal(t, "Email format is invalid.", report["email"])
	})

	t.Run("bad_phone", func(t *testing.T) {
		request := validRequest()
		request.Phone = "12"

		report := rv.Validate(request)
		require.NotNil(t, report)
		assert.Contains(t, report["phone"], "Phone number format is invalid.")
	})

	t.Run("accepted_phone_formats", func(t *testing.T) {
		for _, phone := range []string{"", "2134541324", "(213) 454-1324", "+111 (213) 454-1324", "213-454-1324"} {
			request := validRequest()
			request.Phone = phone
			assert.Nilf(t, rv.Validate(request), "phone %q should be accepted", phone)
		}
	})
}

func TestRequestValidator_NegativeAmounts(t *testing.T) {
	rv := NewRequestValidator()
	negative := decimal.NewFromInt(-1)
	negativeQuantity := -1

	request := validRequest()
	request.Tax = &negative
	request.Shipping = &negative
	request.OrderLines[0].Cost = &negative
	request.OrderLines[0].Quantity = &negativeQuantity

	report := rv.Validate(request)
	require.NotNil(t, report)

	assert.Equal(t, "Tax must be positive or zero.", report["tax"])
	assert.Equal(t, "Shipping must be positive or zero.", report["shipping"])
	assert.Equal(t, "Cost must be positive or zero.", report["orderLines[0].cost"])
	assert.Equal(t, "Quantity must be positive or zero.", report["orderLines[0].quantity"])
}

func TestRequestValidator_CostPrecision(t *testing.T) {
	rv := NewRequestValidator()

	t.Run("more_than_2_decimal_places_is_reported_on_the_line_path", func(t *testing.T) {
		cost := decimal.RequireFromString("10.555")

		request := validRequest()
		request.OrderLines[0].Cost = &cost

		report := rv.Validate(request)
		require.NotNil(t, report)
		assert.Equal(t, "Cost cannot have more than 2 decimal places.", report["orderLines[0].cost"])
	})

	t.Run("2_decimal_places_is_valid", func(t *testing.T) {
		cost := decimal.RequireFromString("10.55")

		request := validRequest()
		request.OrderLines[0].Cost = &cost

		assert.Nil(t, rv.Validate(request))
	})
}

func TestRequestValidator_ZeroAmountsAreValid(t *testing.T) {
	rv := NewRequestValidator()
	zero := decimal.Zero
	zeroQuantity := 0

	request := validRequest()
	request.Tax = &zero
	request.Shipping = &zero
	request.OrderLines[0].Cost = &zero
	request.OrderLines[0].Quantity = &zeroQuantity

	assert.Nil(t, rv.Validate(request))
}
