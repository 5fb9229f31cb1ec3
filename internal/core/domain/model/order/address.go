package order

import (
	"errors"
	"unicode/utf8"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping address owned by exactly one order. It is created
// and destroyed together with its order.
//
// Field constraints (string length bounds are inclusive):
//   - address line 1: required, at most 50 characters
//   - address line 2: optional, at most 25 characters
//   - city: required, 1..25 characters
//   - state: required, exactly 2 characters
//   - zip: required, 5..10 characters
type Address struct { //nolint:recvcheck //using for validation
	id       int64
	address1 string
	address2 string
	city     string
	state    string
	zip      string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. The identifier is zero until the
// owning order is persisted.
func NewAddress(address1, address2, city, state, zip string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setAddress1(address1),
		address.setAddress2(address2),
		address.setCity(city),
		address.setState(state),
		address.setZip(zip),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// RestoreAddress rebuilds an Address from storage, including its
// storage-assigned identifier.
func RestoreAddress(id int64, address1, address2, city, state, zip string) (Address, error) {
	address, err := NewAddress(address1, address2, city, state, zip)
	if err != nil {
		return Address{}, err
	}

	address.id = id
	return address, nil
}

// Validate ensures the Address was created through a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the storage-assigned identifier (zero before first save).
func (a Address) ID() int64 {
	return a.id
}

// Address1 returns the first address line.
func (a Address) Address1() string {
	return a.address1
}

// Address2 returns the optional second address line.
func (a Address) Address2() string {
	return a.address2
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// State returns the 2-character state code.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code.
func (a Address) Zip() string {
	return a.zip
}

func (a *Address) setAddress1(address1 string) error {
	if address1 == "" {
		return errs.NewValueIsRequiredError("address1")
	}
	if utf8.RuneCountInString(address1) > 50 {
		return errs.NewValueIsOutOfRangeError("address1", address1, 1, 50)
	}
	a.address1 = address1
	return nil
}

func (a *Address) setAddress2(address2 string) error {
	if utf8.RuneCountInString(address2) > 25 {
		return errs.NewValueIsOutOfRangeError("address2", address2, 0, 25)
	}
	a.address2 = address2
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if utf8.RuneCountInString(city) > 25 {
		return errs.NewValueIsOutOfRangeError("city", city, 1, 25)
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	if utf8.RuneCountInString(state) != 2 {
		return errs.NewValueIsOutOfRangeError("state", state, 2, 2)
	}
	a.state = state
	return nil
}

func (a *Address) setZip(zip string) error {
	if zip == "" {
		return errs.NewValueIsRequiredError("zip")
	}
	if utf8.RuneCountInString(zip) < 5 || utf8.RuneCountInString(zip) > 10 {
		return errs.NewValueIsOutOfRangeError("zip", zip, 5, 10)
	}
	a.zip = zip
	return nil
}
