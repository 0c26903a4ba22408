package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)

	// ErrNotOrderOwner is returned when the requestor asks for an order that
	// belongs to a different customer.
	ErrNotOrderOwner = errors.New("order belongs to a different customer")
)

// GetOrderQuery retrieves a single order on behalf of a requestor. Ownership
// is enforced here: the requestor only sees their own orders. Administrative
// reads go through GetAllOrdersQuery instead.
type GetOrderQuery struct {
	requestor string
	orderRef  string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch one order for its owner.
func NewGetOrderQuery(requestor, orderRef string) (GetOrderQuery, error) {
	if requestor == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("requestor")
	}
	if orderRef == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderRef")
	}

	return GetOrderQuery{
		requestor: requestor,
		orderRef:  orderRef,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Requestor returns the identity asking for the order.
func (q GetOrderQuery) Requestor() string {
	return q.requestor
}

// OrderRef returns the reference of the order to fetch.
func (q GetOrderQuery) OrderRef() string {
	return q.orderRef
}
