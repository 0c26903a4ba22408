package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history on behalf of a
// requestor. The requestor must be the customer themselves.
type GetCustomerOrdersQuery struct {
	requestor string
	customer  string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(requestor, customer string) (GetCustomerOrdersQuery, error) {
	if requestor == "" {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("requestor")
	}
	if customer == "" {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customer")
	}

	return GetCustomerOrdersQuery{
		requestor: requestor,
		customer:  customer,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Requestor returns the identity asking for the history.
func (q GetCustomerOrdersQuery) Requestor() string {
	return q.requestor
}

// Customer returns the identity whose orders are requested.
func (q GetCustomerOrdersQuery) Customer() string {
	return q.customer
}
