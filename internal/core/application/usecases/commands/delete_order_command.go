package commands

import (
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// DeleteOrderCommand identifies the order to delete.
type DeleteOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a validated command for order deletion.
func NewDeleteOrderCommand(orderID int64) (DeleteOrderCommand, error) {
	if orderID <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsInvalidError("orderID")
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c *DeleteOrderCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("DeleteOrderCommand"))
}

// OrderID returns the identifier of the order to delete.
func (c *DeleteOrderCommand) OrderID() int64 {
	return c.orderID
}
