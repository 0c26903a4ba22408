// Package inventoryrepo persists the stock ledger as a single-row document
// with one JSON column per category. Rewriting the row on every change keeps
// a ledger save atomic without row-per-ingredient bookkeeping.
package inventoryrepo

import (
	"storefront/internal/core/domain/model/inventory"
)

// ledgerRowID is the fixed primary key of the singleton ledger row.
const ledgerRowID = 1

// LedgerDTO represents the database structure for the stock ledger.
type LedgerDTO struct {
	ID      int        `gorm:"primaryKey"`
	Base    []EntryDTO `gorm:"type:jsonb;serializer:json"`
	Sauce   []EntryDTO `gorm:"type:jsonb;serializer:json"`
	Cheese  []EntryDTO `gorm:"type:jsonb;serializer:json"`
	Veggies []EntryDTO `gorm:"type:jsonb;serializer:json"`
	Meat    []EntryDTO `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for the ledger.
func (LedgerDTO) TableName() string {
	return "inventories"
}

// EntryDTO is one stock lot in the stored JSON documents.
type EntryDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Alerted  bool   `json:"alerted"`
}

func entriesFromDomain(entries []inventory.Entry) []EntryDTO {
	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, EntryDTO{
			Name:     entry.Name(),
			Quantity: entry.Quantity(),
			Alerted:  entry.Alerted(),
		})
	}
	return dtos
}

func entriesToDomain(dtos []EntryDTO) []inventory.Entry {
	entries := make([]inventory.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, inventory.RestoreEntry(dto.Name, dto.Quantity, dto.Alerted))
	}
	return entries
}

func fromDomain(aggregate *inventory.Ledger) (LedgerDTO, error) {
	dto := LedgerDTO{ID: ledgerRowID}

	sections := []struct {
		category inventory.Category
		dest     *[]EntryDTO
	}{
		{inventory.CategoryBase, &dto.Base},
		{inventory.CategorySauce, &dto.Sauce},
		{inventory.CategoryCheese, &dto.Cheese},
		{inventory.CategoryVeggies, &dto.Veggies},
		{inventory.CategoryMeat, &dto.Meat},
	}

	for _, section := range sections {
		entries, err := aggregate.Entries(section.category)
		if err != nil {
			return LedgerDTO{}, err
		}
		*section.dest = entriesFromDomain(entries)
	}

	return dto, nil
}

func toDomain(dto LedgerDTO) *inventory.Ledger {
	return inventory.RestoreLedger(
		entriesToDomain(dto.Base),
		entriesToDomain(dto.Sauce),
		entriesToDomain(dto.Cheese),
		entriesToDomain(dto.Veggies),
		entriesToDomain(dto.Meat),
	)
}
