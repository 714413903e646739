package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the fields of a new product.
type CreateProductRequest struct {
	Name          string          `json:"name" yaml:"name"`
	Description   string          `json:"description" yaml:"description"`
	Price         decimal.Decimal `json:"price" yaml:"-"`
	StockQuantity int             `json:"stock_quantity" yaml:"stock_quantity"`
	Category      ProductCategory `json:"category" yaml:"category"`
}

// CreateOrderRequest carries the fields of a new order.
type CreateOrderRequest struct {
	CustomerName    string                   `json:"customer_name"`
	CustomerEmail   string                   `json:"customer_email"`
	ShippingAddress string                   `json:"shipping_address"`
	Items           []CreateOrderItemRequest `json:"items"`
}

type CreateOrderItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}
