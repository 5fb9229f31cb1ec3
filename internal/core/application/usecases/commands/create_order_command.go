package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order.
// Whatever status the client supplied has already been discarded by the
// time this command exists: creation always yields a PROCESSING order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Marie", "Curie", "marie.curie@gmail.com", "",
//	    address, lines, tax, shipping)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	firstName  string
	lastName   string
	email      string
	phone      string
	address    order.Address
	orderLines []order.OrderLine
	tax        decimal.Decimal
	shipping   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The address and lines must be constructed domain values; name and email
// are required; tax and shipping must be non-negative.
func NewCreateOrderCommand(
	firstName, lastName, email, phone string,
	address order.Address,
	orderLines []order.OrderLine,
	tax, shipping decimal.Decimal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setAddress(address),
		cmd.setOrderLines(orderLines),
		cmd.setTax(tax),
		cmd.setShipping(shipping),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// FirstName returns the customer's first name.
func (c CreateOrderCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c CreateOrderCommand) LastName() string {
	return c.lastName
}

// Email returns the customer's email address.
func (c CreateOrderCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number (may be empty).
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Address returns the shipping address.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// OrderLines returns the line items.
func (c CreateOrderCommand) OrderLines() []order.OrderLine {
	return c.orderLines
}

// Tax returns the tax amount.
func (c CreateOrderCommand) Tax() decimal.Decimal {
	return c.tax
}

// Shipping returns the shipping amount.
func (c CreateOrderCommand) Shipping() decimal.Decimal {
	return c.shipping
}

func (c *CreateOrderCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	c.firstName = firstName
	return nil
}

func (c *CreateOrderCommand) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.lastName = lastName
	return nil
}

func (c *CreateOrderCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setOrderLines(orderLines []order.OrderLine) error {
	if len(orderLines) == 0 {
		return errs.NewValueIsRequiredError("orderLines")
	}
	for _, line := range orderLines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	c.orderLines = orderLines
	return nil
}

func (c *CreateOrderCommand) setTax(tax decimal.Decimal) error {
	if tax.IsNegative() {
		return errs.NewValueIsInvalidError("tax")
	}
	c.tax = tax
	return nil
}

func (c *CreateOrderCommand) setShipping(shipping decimal.Decimal) error {
	if shipping.IsNegative() {
		return errs.NewValueIsInvalidError("shipping")
	}
	c.shipping = shipping
	return nil
}
