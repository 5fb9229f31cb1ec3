package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// UpdateOrderCommand carries the replacement data for an existing order.
// Only status, customer name, shipping address and order lines can be
// changed; contact details and charges stay as they were recorded at
// creation time.
type UpdateOrderCommand struct {
	orderID    int64
	status     order.Status
	firstName  string
	lastName   string
	address    order.Address
	orderLines []order.OrderLine

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a validated command for order update.
//
// Parameters:
//   - orderID: identifier of the order to update, must be positive.
//   - status: the status to record, taken as-is from the caller.
//   - firstName: customer first name, required.
//   - lastName: customer last name, required.
//   - address: shipping address, must be a valid Address.
//   - orderLines: replacement line items, at least one required.
//
// Returns the command or a joined validation error.
func NewUpdateOrderCommand(
	orderID int64,
	status order.Status,
	firstName string,
	lastName string,
	address order.Address,
	orderLines []order.OrderLine,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
		cmd.setAddress(address),
		cmd.setOrderLines(orderLines),
	)
	if err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through its constructor.
func (c *UpdateOrderCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("UpdateOrderCommand"))
}

// OrderID returns the identifier of the order to update.
func (c *UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the status to record on the order.
func (c *UpdateOrderCommand) Status() order.Status {
	return c.status
}

// FirstName returns the customer first name.
func (c *UpdateOrderCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer last name.
func (c *UpdateOrderCommand) LastName() string {
	return c.lastName
}

// Address returns the replacement shipping address.
func (c *UpdateOrderCommand) Address() order.Address {
	return c.address
}

// OrderLines returns the replacement line items.
func (c *UpdateOrderCommand) OrderLines() []order.OrderLine {
	return c.orderLines
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	c.firstName = firstName
	return nil
}

func (c *UpdateOrderCommand) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.lastName = lastName
	return nil
}

func (c *UpdateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *UpdateOrderCommand) setOrderLines(orderLines []order.OrderLine) error {
	if len(orderLines) == 0 {
		return errs.NewValueIsRequiredError("orderLines")
	}
	for i := range orderLines {
		if err := orderLines[i].Validate(); err != nil {
			return err
		}
	}
	c.orderLines = orderLines
	return nil
}
