package http

import (
	"github.com/shopspring/decimal"
)

// Amount is a money value that serializes as a plain JSON number with two
// fractional digits (e.g. 1150.00), the way clients expect totals.
type Amount decimal.Decimal

// NewAmount wraps a decimal for response serialization.
func NewAmount(value decimal.Decimal) Amount {
	return Amount(value)
}

// MarshalJSON renders the amount as an unquoted 2-decimal number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).StringFixed(2)), nil
}

// UnmarshalJSON parses a JSON number back into the amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var value decimal.Decimal
	if err := value.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = Amount(value)
	return nil
}

// Decimal returns the wrapped decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

// Link is a single hypermedia link.
type Link struct {
	Href string `json:"href"`
}

// Links maps a relation name (self, orders, cancel, complete) to its link.
type Links map[string]Link

// AddressRequest carries the shipping address of an inbound order payload.
type AddressRequest struct {
	Address1 string `json:"address1" validate:"required,max=50"`
	Address2 string `json:"address2" validate:"max=25"`
	City     string `json:"city" validate:"required,max=25"`
	State    string `json:"state" validate:"required,len=2"`
	Zip      string `json:"zip" validate:"required,min=5,max=10"`
}

// OrderLineRequest carries one line item of an inbound order payload.
// Cost and quantity are pointers so a missing field and a zero value are
// reported differently.
type OrderLineRequest struct {
	Brand    string           `json:"brand" validate:"required,max=25"`
	Model    string           `json:"model" validate:"required,max=25"`
	Cost     *decimal.Decimal `json:"cost" validate:"required,gte=0,decimal2"`
	Quantity *int             `json:"quantity" validate:"required,gte=0"`
}

// OrderRequest is the payload for order creation and update. The status
// field is ignored on creation (new orders always start PROCESSING) and
// trusted as-is on update.
type OrderRequest struct {
	Status     string             `json:"status" validate:"omitempty,oneof=PROCESSING COMPLETED CANCELED"`
	FirstName  string             `json:"firstName" validate:"required,max=25"`
	LastName   string             `json:"lastName" validate:"required,max=25"`
	Email      string             `json:"email" validate:"required,email_format"`
	Phone      string             `json:"phone" validate:"phone_format"`
	Address    *AddressRequest    `json:"address" validate:"required"`
	OrderLines []OrderLineRequest `json:"orderLines" validate:"required,min=1,dive"`
	Tax        *decimal.Decimal   `json:"tax" validate:"required,gte=0"`
	Shipping   *decimal.Decimal   `json:"shipping" validate:"required,gte=0"`
}

// AddressResponse is the outward representation of a shipping address.
type AddressResponse struct {
	ID       int64  `json:"id"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// OrderLineResponse is the outward representation of one line item.
type OrderLineResponse struct {
	ID       int64  `json:"id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Cost     Amount `json:"cost"`
	Quantity int    `json:"quantity"`
}

// OrderResponse is the outward representation of an order. Subtotal and
// total are the recomputed derived values; _links carries the lifecycle
// affordances (cancel/complete present only while PROCESSING).
type OrderResponse struct {
	ID         int64               `json:"id"`
	Date       string              `json:"date"`
	Status     string              `json:"status"`
	FirstName  string              `json:"firstName"`
	LastName   string              `json:"lastName"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	Address    AddressResponse     `json:"address"`
	OrderLines []OrderLineResponse `json:"orderLines"`
	Tax        Amount              `json:"tax"`
	Shipping   Amount              `json:"shipping"`
	Subtotal   Amount              `json:"subtotal"`
	Total      Amount              `json:"total"`
	Links      Links               `json:"_links"`
}

// OrdersResponse is the outward representation of the order collection.
type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Links  Links           `json:"_links"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
