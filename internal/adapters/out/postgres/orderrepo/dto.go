// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The product snapshot is stored as a single JSON document; the address is
// flattened into prefixed columns so queries can read it without decoding.
type OrderDTO struct {
	OrderRef   string     `gorm:"primaryKey;column:order_ref"`
	PaymentRef string     `gorm:"not null"`
	Customer   string     `gorm:"index;not null"`
	Product    ProductDTO `gorm:"type:jsonb;serializer:json"`
	Address    AddressDTO `gorm:"embedded;embeddedPrefix:addr_"`
	TotalPrice float64
	Status     int `gorm:"index"`
	Progress   int
	Feedback   *int
	CreatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO is the JSON document form of the product snapshot. The JSON
// field names are part of the stored format; the query layer decodes them.
type ProductDTO struct {
	Base     string    `json:"base"`
	Sauce    string    `json:"sauce"`
	Cheese   string    `json:"cheese"`
	Veggies  []string  `json:"veggies"`
	Size     string    `json:"size"`
	Quantity int       `json:"quantity"`
	Items    []ItemDTO `json:"items,omitempty"`
}

// ItemDTO is one cart line inside a stored product snapshot.
type ItemDTO struct {
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size"`
}

// AddressDTO represents the embedded delivery address columns.
type AddressDTO struct {
	Name    string
	Phone   string
	Street  string
	City    string
	Pincode string
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	product := aggregate.Product()
	items := make([]ItemDTO, 0, len(product.Items))
	for _, item := range product.Items {
		items = append(items, ItemDTO{
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Size:        item.Size,
		})
	}

	address := aggregate.Address()

	return OrderDTO{
		OrderRef:   aggregate.OrderRef(),
		PaymentRef: aggregate.PaymentRef(),
		Customer:   aggregate.Customer(),
		Product: ProductDTO{
			Base:     product.Base,
			Sauce:    product.Sauce,
			Cheese:   product.Cheese,
			Veggies:  product.Veggies,
			Size:     product.Size,
			Quantity: product.Quantity,
			Items:    items,
		},
		Address: AddressDTO{
			Name:    address.Name(),
			Phone:   address.Phone(),
			Street:  address.Street(),
			City:    address.City(),
			Pincode: address.Pincode(),
		},
		TotalPrice: aggregate.TotalPrice(),
		Status:     int(aggregate.Status()),
		Progress:   aggregate.Progress(),
		Feedback:   aggregate.Feedback(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	address, err := kernel.NewAddress(
		dto.Address.Name,
		dto.Address.Phone,
		dto.Address.Street,
		dto.Address.City,
		dto.Address.Pincode,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.SnapshotItem, 0, len(dto.Product.Items))
	for _, item := range dto.Product.Items {
		items = append(items, order.SnapshotItem{
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Size:        item.Size,
		})
	}

	product := order.ProductSnapshot{
		Base:     dto.Product.Base,
		Sauce:    dto.Product.Sauce,
		Cheese:   dto.Product.Cheese,
		Veggies:  dto.Product.Veggies,
		Size:     dto.Product.Size,
		Quantity: dto.Product.Quantity,
		Items:    items,
	}

	return order.RestoreOrder(
		dto.OrderRef,
		dto.PaymentRef,
		dto.Customer,
		product,
		address,
		dto.TotalPrice,
		order.Status(dto.Status),
		dto.Progress,
		dto.Feedback,
		dto.CreatedAt,
	)
}
