// Package queries contains read-only operations against the database.
// Query handlers bypass the domain model and repositories, reading rows
// directly for presentation. State changes stay in the commands package.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/order"
)

// OrderResponse is the read model for a single order, shared by the order
// queries. Status is rendered as its string form for presentation.
type OrderResponse struct {
	OrderRef   string
	PaymentRef string
	Customer   string
	Product    ProductResponse
	Address    AddressResponse
	TotalPrice float64
	Status     string
	Progress   int
	Feedback   *int
	CreatedAt  time.Time
}

// ProductResponse mirrors the product snapshot frozen into the order.
type ProductResponse struct {
	Base     string             `json:"base"`
	Sauce    string             `json:"sauce"`
	Cheese   string             `json:"cheese"`
	Veggies  []string           `json:"veggies"`
	Size     string             `json:"size"`
	Quantity int                `json:"quantity"`
	Items    []CartItemResponse `json:"items,omitempty"`
}

// CartItemResponse is one cart line, used both inside product snapshots and
// by the cart query.
type CartItemResponse struct {
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size"`
	Image       string  `json:"image,omitempty"`
}

// AddressResponse is the delivery address read model.
type AddressResponse struct {
	Name    string
	Phone   string
	Street  string
	City    string
	Pincode string
}

// orderColumns is the select list every order query scans; keep it in sync
// with scanOrder.
const orderColumns = `
		order_ref,
		payment_ref,
		customer,
		product,
		addr_name,
		addr_phone,
		addr_street,
		addr_city,
		addr_pincode,
		total_price,
		status,
		progress,
		feedback,
		created_at`

// scanOrder reads one order row into the shared read model. The product
// snapshot is stored as a JSON document and decoded here.
func scanOrder(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var product []byte
	var status int
	var feedback sql.NullInt64

	err := rows.Scan(
		&resp.OrderRef,
		&resp.PaymentRef,
		&resp.Customer,
		&product,
		&resp.Address.Name,
		&resp.Address.Phone,
		&resp.Address.Street,
		&resp.Address.City,
		&resp.Address.Pincode,
		&resp.TotalPrice,
		&status,
		&resp.Progress,
		&feedback,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if len(product) > 0 {
		if err = json.Unmarshal(product, &resp.Product); err != nil {
			return OrderResponse{}, err
		}
	}

	resp.Status = order.Status(status).String()
	if feedback.Valid {
		rating := int(feedback.Int64)
		resp.Feedback = &rating
	}

	return resp, nil
}
