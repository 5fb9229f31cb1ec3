package commands

import (
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// CancelOrderCommand identifies the order to cancel.
type CancelOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a validated command for order cancellation.
func NewCancelOrderCommand(orderID int64) (CancelOrderCommand, error) {
	if orderID <= 0 {
		return CancelOrderCommand{}, errs.NewValueIsInvalidError("orderID")
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c *CancelOrderCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("CancelOrderCommand"))
}

// OrderID returns the identifier of the order to cancel.
func (c *CancelOrderCommand) OrderID() int64 {
	return c.orderID
}
