// Package cartrepo persists cart aggregates as one JSON document per
// customer. The whole line list is rewritten on every mutation, so readers
// never observe a partially updated cart.
package cartrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
)

// CartDTO represents the database structure for persisting carts.
type CartDTO struct {
	Customer  string    `gorm:"primaryKey"`
	Items     []ItemDTO `gorm:"type:jsonb;serializer:json"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// ItemDTO is one cart line in the stored JSON document.
type ItemDTO struct {
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size"`
	Image       string  `json:"image,omitempty"`
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Size:        item.Size(),
			Image:       item.Image(),
		})
	}

	return CartDTO{
		Customer:  aggregate.Customer(),
		Items:     items,
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	items := make([]cart.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		restored, err := cart.NewItem(item.ProductName, item.UnitPrice, item.Quantity, item.Size, item.Image)
		if err != nil {
			return nil, err
		}
		items = append(items, restored)
	}

	return cart.RestoreCart(dto.Customer, items, dto.UpdatedAt)
}
