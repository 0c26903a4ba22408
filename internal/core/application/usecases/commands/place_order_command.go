package commands

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)

	// ErrDeliveryAddressIsRequired is returned when a command carries neither
	// an explicit address nor a request to use the saved one.
	ErrDeliveryAddressIsRequired = errors.New("a delivery address or useSavedAddress is required")
)

// PlaceOrderCommand represents an accepted payment confirmation turning into
// a stored order. The product snapshot and total price arrive from the
// checkout flow and are frozen into the order as-is.
//
// The delivery address comes from exactly one of two sources: an explicit
// complete address, or the customer's saved profile address when
// useSavedAddress is set.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderRef        string
	paymentRef      string
	customer        string
	product         order.ProductSnapshot
	address         *kernel.Address
	useSavedAddress bool
	totalPrice      float64
	placedAt        time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. The order and
// payment references are required; an empty customer identity places a guest
// order. An explicit address must be complete (the kernel.Address constructor
// enforces that); pass nil with useSavedAddress to reuse the profile address.
func NewPlaceOrderCommand(
	orderRef string,
	paymentRef string,
	customer string,
	product order.ProductSnapshot,
	address *kernel.Address,
	useSavedAddress bool,
	totalPrice float64,
	placedAt time.Time,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customer:        customer,
		product:         product,
		useSavedAddress: useSavedAddress,
		placedAt:        placedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderRef(orderRef),
		cmd.setPaymentRef(paymentRef),
		cmd.setAddress(address, useSavedAddress),
		cmd.setTotalPrice(totalPrice),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderRef returns the caller-assigned globally unique order reference.
func (c PlaceOrderCommand) OrderRef() string {
	return c.orderRef
}

// PaymentRef returns the opaque payment confirmation reference.
func (c PlaceOrderCommand) PaymentRef() string {
	return c.paymentRef
}

// Customer returns the customer identity, empty for guest checkouts.
func (c PlaceOrderCommand) Customer() string {
	return c.customer
}

// Product returns the product snapshot to freeze into the order.
func (c PlaceOrderCommand) Product() order.ProductSnapshot {
	return c.product
}

// Address returns the explicit delivery address, or nil when the saved
// profile address is to be used.
func (c PlaceOrderCommand) Address() *kernel.Address {
	return c.address
}

// UseSavedAddress reports whether the saved profile address should be used.
func (c PlaceOrderCommand) UseSavedAddress() bool {
	return c.useSavedAddress
}

// TotalPrice returns the order total.
func (c PlaceOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

// PlacedAt returns the order creation time anchoring the delivery schedule.
func (c PlaceOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

func (c *PlaceOrderCommand) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return errs.NewValueIsRequiredError("orderRef")
	}

	c.orderRef = orderRef
	return nil
}

func (c *PlaceOrderCommand) setPaymentRef(paymentRef string) error {
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}

	c.paymentRef = paymentRef
	return nil
}

func (c *PlaceOrderCommand) setAddress(address *kernel.Address, useSavedAddress bool) error {
	if address == nil {
		if !useSavedAddress {
			return ErrDeliveryAddressIsRequired
		}
		return nil
	}

	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}

	c.totalPrice = totalPrice
	return nil
}
