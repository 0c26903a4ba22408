package order

// ProductSnapshot captures the product configuration at checkout time.
// The snapshot is embedded in the order and never changes afterwards, so the
// order history stays accurate even when the catalog or the cart is edited.
//
// A snapshot either describes a single configured product (base, sauce,
// cheese, veggies) or a whole cart checkout via Items, or both.
type ProductSnapshot struct {
	Base     string
	Sauce    string
	Cheese   string
	Veggies  []string
	Size     string
	Quantity int
	Items    []SnapshotItem
}

// SnapshotItem is one cart line captured inside a product snapshot.
type SnapshotItem struct {
	ProductName string
	UnitPrice   float64
	Quantity    int
	Size        string
}
