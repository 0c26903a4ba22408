// Package customerrepo persists the customer-profile slice the order flow
// owns: the identity and its optional saved delivery address.
package customerrepo

import (
	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for customer profiles.
// The address is a nullable JSON document since most of the profile lives
// outside this service.
type CustomerDTO struct {
	Identity string      `gorm:"primaryKey"`
	Address  *AddressDTO `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for customer profiles.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is the stored JSON form of a saved delivery address.
type AddressDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{Identity: aggregate.Identity()}

	if address := aggregate.Address(); address != nil {
		dto.Address = &AddressDTO{
			Name:    address.Name(),
			Phone:   address.Phone(),
			Street:  address.Street(),
			City:    address.City(),
			Pincode: address.Pincode(),
		}
	}

	return dto
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	var address *kernel.Address
	if dto.Address != nil {
		restored, err := kernel.NewAddress(
			dto.Address.Name,
			dto.Address.Phone,
			dto.Address.Street,
			dto.Address.City,
			dto.Address.Pincode,
		)
		if err != nil {
			return nil, err
		}
		address = &restored
	}

	return customer.RestoreCustomer(dto.Identity, address)
}
