package inventory

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Category is the closed enumeration of ingredient sections in the ledger.
// An unrecognized category name is a reportable error, never a silent miss.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryBase holds pizza bases.
	CategoryBase

	// CategorySauce holds sauces.
	CategorySauce

	// CategoryCheese holds cheeses.
	CategoryCheese

	// CategoryVeggies holds vegetable toppings.
	CategoryVeggies

	// CategoryMeat holds meat toppings.
	CategoryMeat
)

func categoryStrings() map[Category]string {
	return map[Category]string{
		CategoryBase:    "base",
		CategorySauce:   "sauce",
		CategoryCheese:  "cheese",
		CategoryVeggies: "veggies",
		CategoryMeat:    "meat",
	}
}

// Categories returns all valid categories in their canonical order.
func Categories() []Category {
	return []Category{CategoryBase, CategorySauce, CategoryCheese, CategoryVeggies, CategoryMeat}
}

// ParseCategory converts the lowercase category name used on the wire and in
// storage into a Category. Returns an error for unrecognized names.
func ParseCategory(s string) (Category, error) {
	for category, str := range categoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid ingredient category", s))
}

// Validate checks if the Category is one of the five valid sections.
func (c Category) Validate() error {
	if _, ok := categoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the lowercase category name.
// Implements fmt.Stringer and is safe to call on any value.
func (c Category) String() string {
	if str, ok := categoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}
