package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// GuestCustomer is the sentinel customer identity for unauthenticated orders.
	GuestCustomer = "guest"

	// MaxProgress is the delivery progress value at which the order is delivered.
	MaxProgress = 100

	// ProgressStep is the amount delivery progress advances per scheduled tick.
	ProgressStep = 10

	// MinFeedbackRating and MaxFeedbackRating bound the feedback scale.
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsFinalized is returned when an autonomous transition is applied
	// to an order whose status is terminal (Delivered or Cancelled).
	ErrOrderIsFinalized = errors.New("order is in a terminal status")
)

// Order represents a paid customer order and is the aggregate root for the
// delivery lifecycle. It is created when a payment confirmation is accepted
// and is never deleted; its status and progress are mutated either by the
// autonomous delivery schedule or by an administrative override.
//
// Order maintains these invariants:
//   - Order reference and payment reference are non-empty
//   - Total price is never negative
//   - Progress stays within [0, MaxProgress]
//   - Feedback, when set, is within [MinFeedbackRating, MaxFeedbackRating]
//   - Autonomous transitions never fire on a terminal order
type Order struct { //nolint:recvcheck //using for validation
	orderRef   string
	paymentRef string
	customer   string
	product    ProductSnapshot
	address    kernel.Address
	totalPrice float64
	status     Status
	progress   int
	feedback   *int
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a freshly placed order with status Placed and progress 0.
// An empty customer identity is replaced by the GuestCustomer sentinel.
func NewOrder(
	orderRef string,
	paymentRef string,
	customer string,
	product ProductSnapshot,
	address kernel.Address,
	totalPrice float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    StatusPlaced,
		progress:  0,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setOrderRef(orderRef),
		o.setPaymentRef(paymentRef),
		o.setAddress(address),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	o.product = product
	o.customer = customer
	if o.customer == "" {
		o.customer = GuestCustomer
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its mutable
// lifecycle fields. Used exclusively by repository adapters.
func RestoreOrder(
	orderRef string,
	paymentRef string,
	customer string,
	product ProductSnapshot,
	address kernel.Address,
	totalPrice float64,
	status Status,
	progress int,
	feedback *int,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(orderRef, paymentRef, customer, product, address, totalPrice, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.progress = progress
	o.feedback = feedback
	return o, nil
}

// Validate ensures the Order was created through one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// OrderRef returns the caller-assigned globally unique order reference.
func (o *Order) OrderRef() string { return o.orderRef }

// PaymentRef returns the opaque payment confirmation reference.
func (o *Order) PaymentRef() string { return o.paymentRef }

// Customer returns the owning customer identity, or GuestCustomer.
func (o *Order) Customer() string { return o.customer }

// Product returns the immutable product snapshot captured at checkout.
func (o *Order) Product() ProductSnapshot { return o.product }

// Address returns the delivery address snapshot.
func (o *Order) Address() kernel.Address { return o.address }

// TotalPrice returns the order total.
func (o *Order) TotalPrice() float64 { return o.totalPrice }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Progress returns the delivery progress. Meaningful only in OutForDelivery.
func (o *Order) Progress() int { return o.progress }

// Feedback returns the recorded rating, or nil when none was given.
func (o *Order) Feedback() *int { return o.feedback }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// IsOwnedBy reports whether the order belongs to the given customer identity.
func (o *Order) IsOwnedBy(customer string) bool {
	return o.customer == customer
}

// BeginPreparation is the first autonomous transition: the kitchen starts on
// the order. Returns ErrOrderIsFinalized when the order is terminal.
func (o *Order) BeginPreparation() error {
	if o.status.IsTerminal() {
		return ErrOrderIsFinalized
	}

	o.status = StatusPreparing
	return nil
}

// Dispatch is the second autonomous transition: the order leaves the store
// and progress tracking starts at zero.
// Returns ErrOrderIsFinalized when the order is terminal.
func (o *Order) Dispatch() error {
	if o.status.IsTerminal() {
		return ErrOrderIsFinalized
	}

	o.status = StatusOutForDelivery
	o.progress = 0
	return nil
}

// AdvanceDelivery moves delivery progress one step forward. When progress
// reaches exactly MaxProgress the order transitions to Delivered and the
// simulation for this order is over. Reports whether the order was delivered
// by this step. Returns ErrOrderIsFinalized when the order is terminal.
func (o *Order) AdvanceDelivery() (bool, error) {
	if o.status.IsTerminal() {
		return false, ErrOrderIsFinalized
	}

	o.progress += ProgressStep
	if o.progress >= MaxProgress {
		o.progress = MaxProgress
		o.status = StatusDelivered
		return true, nil
	}
	return false, nil
}

// SetStatus performs an administrative status override. The write is
// unconditional: it does not consult pending schedule state and may move the
// order backwards. Stopping future autonomous ticks is left to the
// terminal-status guard in the scheduler.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// SetProgress performs an administrative progress override within [0, MaxProgress].
func (o *Order) SetProgress(progress int) error {
	if progress < 0 || progress > MaxProgress {
		return errs.NewValueIsOutOfRangeError("progress", progress, 0, MaxProgress)
	}

	o.progress = progress
	return nil
}

// RecordFeedback stores a rating between MinFeedbackRating and
// MaxFeedbackRating, overwriting any previous value.
func (o *Order) RecordFeedback(rating int) error {
	if rating < MinFeedbackRating || rating > MaxFeedbackRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinFeedbackRating, MaxFeedbackRating)
	}

	o.feedback = &rating
	return nil
}

func (o *Order) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return errs.NewValueIsRequiredError("orderRef")
	}
	o.orderRef = orderRef
	return nil
}

func (o *Order) setPaymentRef(paymentRef string) error {
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}
	o.paymentRef = paymentRef
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}
	o.totalPrice = totalPrice
	return nil
}
