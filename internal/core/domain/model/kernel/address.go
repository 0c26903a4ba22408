package kernel

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object describing a delivery destination.
// Every field is required: an incomplete address cannot be delivered to, so
// incompleteness is rejected at construction rather than discovered at
// dispatch time.
//
// Example:
//
//	addr, err := kernel.NewAddress("Asha Rao", "9876543210", "12 MG Road", "Bengaluru", "560001")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	street  string
	city    string
	pincode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. Each field must be non-empty.
func NewAddress(name, phone, street, city, pincode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setField(&addr.name, "name", name),
		addr.setField(&addr.phone, "phone", phone),
		addr.setField(&addr.street, "street", street),
		addr.setField(&addr.city, "city", city),
		addr.setField(&addr.pincode, "pincode", pincode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was created through NewAddress.
// The zero value fails this check.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Name returns the recipient name.
func (a Address) Name() string { return a.name }

// Phone returns the contact phone number.
func (a Address) Phone() string { return a.phone }

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// Pincode returns the postal code.
func (a Address) Pincode() string { return a.pincode }

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.name == other.name &&
		a.phone == other.phone &&
		a.street == other.street &&
		a.city == other.city &&
		a.pincode == other.pincode
}

// String returns a single-line rendering suitable for logs.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s (%s)", a.name, a.street, a.city, a.pincode, a.phone)
}

func (a *Address) setField(target *string, paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*target = value
	return nil
}
