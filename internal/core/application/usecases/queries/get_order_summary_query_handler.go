package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler computes order totals in the database.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for the order summary.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle returns the order count and the revenue sum across all orders.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	var resp GetOrderSummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_price), 0)
		FROM orders
	`).Row()

	if err := row.Scan(&resp.TotalOrders, &resp.TotalRevenue); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	return resp, nil
}
