package catalog

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

var maxProductPrice = decimal.RequireFromString("999999.99")

// Product is a catalog entry.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      ProductCategory `json:"category"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProduct validates every argument and reports all failures at once.
func NewProduct(id uuid.UUID, name, description string, price decimal.Decimal, stock int, category ProductCategory) (*Product, error) {
	name, nameErr := productName(name)
	description, descErr := productDescription(description)
	price, priceErr := productPrice(price)

	if err := guard.Collect(
		guard.Err(guard.DefaultStruct("id", id)),
		nameErr,
		descErr,
		priceErr,
		guard.Err(guard.Negative("stock_quantity", stock)),
		guard.Err(guard.NotInEnum("category", category)),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Product{
		ID:            id,
		Name:          name,
		Description:   description,
		Price:         price,
		StockQuantity: stock,
		Category:      category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// UpdatePrice sets a new price in (0, 999999.99].
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	price, err := productPrice(price)
	if err != nil {
		return err
	}
	p.Price = price
	p.touch()
	return nil
}

// UpdateStock replaces the stock quantity.
func (p *Product) UpdateStock(quantity int) error {
	quantity, err := guard.Negative("quantity", quantity)
	if err != nil {
		return err
	}
	p.StockQuantity = quantity
	p.touch()
	return nil
}

// AddStock puts quantity more items into stock. The resulting stock must fit
// in an int.
func (p *Product) AddStock(quantity int) error {
	quantity, err := guard.NegativeOrZero("quantity", quantity)
	if err != nil {
		return err
	}
	if _, err := guard.GreaterThan("quantity", quantity, math.MaxInt-p.StockQuantity,
		guard.WithMessage(fmt.Sprintf("cannot add %d items: stock would overflow", quantity)),
	); err != nil {
		return err
	}
	p.StockQuantity += quantity
	p.touch()
	return nil
}

// RemoveStock takes quantity items out of stock. It fails without changes
// when fewer are available.
func (p *Product) RemoveStock(quantity int) error {
	quantity, err := guard.NegativeOrZero("quantity", quantity)
	if err != nil {
		return err
	}
	if err := guard.Condition("quantity", quantity <= p.StockQuantity,
		guard.WithMessage(fmt.Sprintf("cannot remove %d items: only %d available", quantity, p.StockQuantity)),
	); err != nil {
		return err
	}
	p.StockQuantity -= quantity
	p.touch()
	return nil
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now().UTC()
}

func productName(name string) (string, error) {
	name, err := guard.NullOrWhiteSpace("name", name)
	if err != nil {
		return "", err
	}
	return guard.InvalidLength("name", name, 3, 100)
}

func productDescription(description string) (string, error) {
	description, err := guard.NullOrEmpty("description", description)
	if err != nil {
		return "", err
	}
	return guard.InvalidLength("description", description, 10, 500)
}

func productPrice(price decimal.Decimal) (decimal.Decimal, error) {
	price, err := guard.NegativeOrZeroCmp("price", price)
	if err != nil {
		return decimal.Zero, err
	}
	return guard.GreaterThanCmp("price", price, maxProductPrice)
}
