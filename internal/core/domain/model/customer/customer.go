// Package customer provides the slice of the customer profile the order flow
// needs: the saved delivery address. Authentication, credentials, and the
// rest of the profile live outside this core.
package customer

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer holds a customer identity and the optionally saved delivery
// address reused by subsequent orders.
type Customer struct { //nolint:recvcheck //using for validation
	identity string
	address  *kernel.Address

	guard guard.ConstructorGuard
}

// NewCustomer creates a profile with no saved address.
func NewCustomer(identity string) (*Customer, error) {
	if identity == "" {
		return nil, errs.NewValueIsRequiredError("identity")
	}

	return &Customer{
		identity: identity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a profile from persistence.
func RestoreCustomer(identity string, address *kernel.Address) (*Customer, error) {
	c, err := NewCustomer(identity)
	if err != nil {
		return nil, err
	}

	if address != nil {
		if err = address.Validate(); err != nil {
			return nil, err
		}
		c.address = address
	}
	return c, nil
}

// Validate ensures the Customer was created through one of its constructors.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Identity returns the customer identity.
func (c *Customer) Identity() string { return c.identity }

// Address returns the saved delivery address, or nil when none is stored.
func (c *Customer) Address() *kernel.Address { return c.address }

// SetAddress stores a validated delivery address, replacing any previous one.
func (c *Customer) SetAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = &address
	return nil
}
