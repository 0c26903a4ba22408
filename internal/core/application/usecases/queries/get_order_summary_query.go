package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves aggregate order figures for the dashboard.
type GetOrderSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for the order summary.
func NewGetOrderSummaryQuery() GetOrderSummaryQuery {
	return GetOrderSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// GetOrderSummaryQueryResponse holds the dashboard totals.
type GetOrderSummaryQueryResponse struct {
	TotalOrders  int64
	TotalRevenue float64
}
