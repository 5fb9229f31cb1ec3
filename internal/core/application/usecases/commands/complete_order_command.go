package commands

import (
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// CompleteOrderCommand identifies the order to complete.
type CompleteOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a validated command for order completion.
func NewCompleteOrderCommand(orderID int64) (CompleteOrderCommand, error) {
	if orderID <= 0 {
		return CompleteOrderCommand{}, errs.NewValueIsInvalidError("orderID")
	}

	return CompleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c *CompleteOrderCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("CompleteOrderCommand"))
}

// OrderID returns the identifier of the order to complete.
func (c *CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}
