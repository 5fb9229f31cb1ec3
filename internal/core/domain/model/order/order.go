package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// emailRegexp is an RFC-5322-like pattern. It deliberately excludes | and '.
var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9_!#$%&*+/=?` + "`" + `{}~^.-]+@[a-zA-Z0-9.-]+$`)

// phoneRegexp accepts a flexible international format: an optional country
// code followed by a 3-3-4 digit grouping with optional separators, e.g.
// 2134541324, (213) 454-1324, +111 (213) 454-1324. The empty string matches
// because phone is optional.
var phoneRegexp = regexp.MustCompile(`^((\+\d{1,3}( )?)?((\(\d{3}\))|\d{3})[- .]?\d{3}[- .]?\d{4})?$`)

// Order is the aggregate root for a customer purchase. It owns one Address
// and an ordered collection of OrderLines and manages the order lifecycle
// from creation through completion or cancellation.
//
// Order maintains these invariants:
//   - status transitions follow the rules defined on Status
//   - subtotal and total are always consistent with the current lines,
//     tax, and shipping (recomputed on every mutation and rehydration)
//   - the owned Address and OrderLines cannot outlive the order
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	id        int64
	date      time.Time
	status    Status
	firstName string
	lastName  string
	email     string
	phone     string
	address   Address
	lines     []OrderLine
	tax       decimal.Decimal
	shipping  decimal.Decimal

	// subtotal and total are derived, never persisted.
	subtotal decimal.Decimal
	total    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with validation. Status is forced to
// Processing regardless of anything the caller's client supplied, and the
// creation date is set to the given time.
//
// Returns the created order, or a joined validation error if any field is
// invalid.
func NewOrder(
	date time.Time,
	firstName, lastName, email, phone string,
	address Address,
	lines []OrderLine,
	tax, shipping decimal.Decimal,
) (*Order, error) {
	o := &Order{
		date:   date,
		status: Processing,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setFirstName(firstName),
		o.setLastName(lastName),
		o.setEmail(email),
		o.setPhone(phone),
		o.setAddress(address),
		o.setLines(lines),
		o.setTax(tax),
		o.setShipping(shipping),
	); err != nil {
		return nil, err
	}

	o.recalculateTotals()
	return o, nil
}

// RestoreOrder rebuilds an Order from storage. Unlike NewOrder it accepts
// the persisted status and identifier, and recomputes subtotal/total from
// the restored lines — totals are never read from storage.
func RestoreOrder(
	id int64,
	date time.Time,
	status Status,
	firstName, lastName, email, phone string,
	address Address,
	lines []OrderLine,
	tax, shipping decimal.Decimal,
) (*Order, error) {
	o, err := NewOrder(date, firstName, lastName, email, phone, address, lines, tax, shipping)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the storage-assigned identifier (zero before first save).
func (o *Order) ID() int64 {
	return o.id
}

// AssignID records the identifier assigned by storage on first save.
// Reassigning an already-identified order is an error.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order already has identifier %d", o.id))
	}
	o.id = id
	return nil
}

// Date returns the creation date.
func (o *Order) Date() time.Time {
	return o.date
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// FirstName returns the customer's first name.
func (o *Order) FirstName() string {
	return o.firstName
}

// LastName returns the customer's last name.
func (o *Order) LastName() string {
	return o.lastName
}

// Email returns the customer's email address.
func (o *Order) Email() string {
	return o.email
}

// Phone returns the customer's phone number (may be empty).
func (o *Order) Phone() string {
	return o.phone
}

// Address returns the owned shipping address.
func (o *Order) Address() Address {
	return o.address
}

// OrderLines returns a copy of the owned line items in display order.
func (o *Order) OrderLines() []OrderLine {
	lines := make([]OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Tax returns the tax amount.
func (o *Order) Tax() decimal.Decimal {
	return o.tax
}

// Shipping returns the shipping amount.
func (o *Order) Shipping() decimal.Decimal {
	return o.shipping
}

// Subtotal returns the derived sum of the line totals.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// Total returns subtotal + tax + shipping.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Name returns the virtual full name "{firstName} {lastName}".
func (o *Order) Name() string {
	return o.firstName + " " + o.lastName
}

// SetName splits a full name on the first space: the first part becomes the
// first name, the remainder (possibly empty) becomes the last name. A
// single-word name therefore yields an empty last name, which fails the
// "last name required" constraint on the next validation; this mirrors the
// long-standing behavior of the service and is pinned by test.
func (o *Order) SetName(name string) {
	parts := strings.SplitN(name, " ", 2)
	o.firstName = parts[0]
	o.lastName = ""
	if len(parts) == 2 {
		o.lastName = parts[1]
	}
}

// Cancel transitions the order from Processing to Canceled.
//
// Returns a *errs.StatusTransitionError naming the current status when the
// order is not in Processing. Completed and Canceled orders are left
// unchanged.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete transitions the order from Processing to Completed.
//
// Returns a *errs.StatusTransitionError naming the current status when the
// order is not in Processing. Completed and Canceled orders are left
// unchanged.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Replace overwrites status, name, address and order lines from an update
// payload, then recomputes the totals. Email, phone, tax and shipping are
// untouched: updates have always been scoped to these fields.
//
// Unlike creation, the caller-supplied status is trusted — an update may set
// any valid status directly without going through Cancel/Complete. This
// asymmetry is deliberate, preserved from the observed behavior of the
// service rather than any documented intent.
func (o *Order) Replace(status Status, firstName, lastName string, address Address, lines []OrderLine) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		o.setFirstName(firstName),
		o.setLastName(lastName),
		o.setAddress(address),
		o.setLines(lines),
	); err != nil {
		return err
	}

	o.status = status
	o.recalculateTotals()
	return nil
}

// recalculateTotals derives subtotal and total from the current lines, tax,
// and shipping. Each line total and the running subtotal are rounded to 2
// decimal places half-up after every step.
func (o *Order) recalculateTotals() {
	subtotal := decimal.Zero.Round(2)
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.LineTotal()).Round(2)
	}

	o.subtotal = subtotal
	o.total = subtotal.Add(o.tax).Add(o.shipping)
}

func (o *Order) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if utf8.RuneCountInString(firstName) > 25 {
		return errs.NewValueIsOutOfRangeError("firstName", firstName, 1, 25)
	}
	o.firstName = firstName
	return nil
}

func (o *Order) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	if utf8.RuneCountInString(lastName) > 25 {
		return errs.NewValueIsOutOfRangeError("lastName", lastName, 1, 25)
	}
	o.lastName = lastName
	return nil
}

func (o *Order) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if utf8.RuneCountInString(email) > 50 || !emailRegexp.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	o.email = email
	return nil
}

func (o *Order) setPhone(phone string) error {
	if !phoneRegexp.MatchString(phone) {
		return errs.NewValueIsInvalidError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("orderLines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]OrderLine, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setTax(tax decimal.Decimal) error {
	if tax.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("tax", fmt.Errorf("%s is negative", tax))
	}
	o.tax = tax
	return nil
}

func (o *Order) setShipping(shipping decimal.Decimal) error {
	if shipping.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("shipping", fmt.Errorf("%s is negative", shipping))
	}
	o.shipping = shipping
	return nil
}
