package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProductCategory groups products in the catalog.
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryClothing    ProductCategory = "clothing"
	CategoryFood        ProductCategory = "food"
	CategoryBooks       ProductCategory = "books"
	CategoryToys        ProductCategory = "toys"
	CategorySports      ProductCategory = "sports"
)

// Members lists the declared categories.
func (ProductCategory) Members() []ProductCategory {
	return []ProductCategory{
		CategoryElectronics,
		CategoryClothing,
		CategoryFood,
		CategoryBooks,
		CategoryToys,
		CategorySports,
	}
}

// Label returns the display name of the category, e.g. "Electronics".
func (c ProductCategory) Label() string {
	return cases.Title(language.English).String(string(c))
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Members lists the declared statuses.
func (OrderStatus) Members() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

// Terminal reports whether no further status change is allowed.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
