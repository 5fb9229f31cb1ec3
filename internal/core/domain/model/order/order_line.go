package order

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine was not created
// through NewOrderLine or RestoreOrderLine.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")

// OrderLine is one line item (brand/model/cost/quantity) owned by exactly
// one order. Insertion order is irrelevant to totals but preserved for
// display.
//
// Field constraints:
//   - brand, model: required, 1..25 characters
//   - cost: required, non-negative, at most 2 fractional digits
//   - quantity: required, non-negative integer
type OrderLine struct { //nolint:recvcheck //using for validation
	id       int64
	brand    string
	model    string
	cost     decimal.Decimal
	quantity int

	guard guard.ConstructorGuard
}

// NewOrderLine creates a validated OrderLine. The identifier is zero until
// the owning order is persisted.
func NewOrderLine(brand, model string, cost decimal.Decimal, quantity int) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setBrand(brand),
		line.setModel(model),
		line.setCost(cost),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// RestoreOrderLine rebuilds an OrderLine from storage, including its
// storage-assigned identifier.
func RestoreOrderLine(id int64, brand, model string, cost decimal.Decimal, quantity int) (OrderLine, error) {
	line, err := NewOrderLine(brand, model, cost, quantity)
	if err != nil {
		return OrderLine{}, err
	}

	line.id = id
	return line, nil
}

// Validate ensures the OrderLine was created through a constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ID returns the storage-assigned identifier (zero before first save).
func (l OrderLine) ID() int64 {
	return l.id
}

// Brand returns the product brand.
func (l OrderLine) Brand() string {
	return l.brand
}

// Model returns the product model.
func (l OrderLine) Model() string {
	return l.model
}

// Cost returns the per-unit cost.
func (l OrderLine) Cost() decimal.Decimal {
	return l.cost
}

// Quantity returns the ordered quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// LineTotal returns cost multiplied by quantity, rounded to 2 decimal
// places half-up. Rounding per line matches how totals were computed in
// every released version of this service; do not fold it into the subtotal
// rounding.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.cost.Mul(decimal.NewFromInt(int64(l.quantity))).Round(2)
}

func (l *OrderLine) setBrand(brand string) error {
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	if utf8.RuneCountInString(brand) > 25 {
		return errs.NewValueIsOutOfRangeError("brand", brand, 1, 25)
	}
	l.brand = brand
	return nil
}

func (l *OrderLine) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if utf8.RuneCountInString(model) > 25 {
		return errs.NewValueIsOutOfRangeError("model", model, 1, 25)
	}
	l.model = model
	return nil
}

func (l *OrderLine) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost",
			fmt.Errorf("%s is negative", cost))
	}
	if cost.Exponent() < -2 {
		return errs.NewValueIsInvalidErrorWithCause("cost",
			fmt.Errorf("%s has more than 2 fractional digits", cost))
	}
	l.cost = cost
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	l.quantity = quantity
	return nil
}
