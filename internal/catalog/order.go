package catalog

import (
	"regexp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

var (
	emailFormat    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	maxOrderAmount = decimal.NewFromInt(1_000_000)
)

// OrderItem is a product line within an order. Name and price are captured
// at order time.
type OrderItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// NewOrderItem validates a single order line.
func NewOrderItem(productID uuid.UUID, productName string, price decimal.Decimal, quantity int) (OrderItem, error) {
	if err := guard.Collect(
		guard.Err(guard.DefaultStruct("product_id", productID)),
		guard.Err(guard.NullOrWhiteSpace("product_name", productName)),
		guard.Err(guard.NegativeOrZeroCmp("price", price)),
		guard.Err(guard.NegativeOrZero("quantity", quantity)),
	); err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Price:       price,
		Quantity:    quantity,
	}, nil
}

// Subtotal is price times quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a customer order.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	ShippingAddress string          `json:"shipping_address"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	OrderDate       time.Time       `json:"order_date"`
}

// NewOrder validates the customer details and items and computes the total,
// which must be in (0, 1000000].
func NewOrder(id uuid.UUID, customerName, customerEmail, shippingAddress string, items []OrderItem) (*Order, error) {
	customerName, nameErr := boundedText("customer_name", customerName, 2, 100)
	shippingAddress, addrErr := boundedText("shipping_address", shippingAddress, 10, 500)

	items, itemsErr := guard.NullOrEmptySlice("items", items)
	if err := guard.Collect(
		guard.Err(guard.DefaultStruct("id", id)),
		nameErr,
		guard.Err(guard.InvalidFormatRegexp("customer_email", customerEmail, emailFormat)),
		addrErr,
		itemsErr,
	); err != nil {
		return nil, err
	}

	total, err := orderTotal(items)
	if err != nil {
		return nil, err
	}

	return &Order{
		ID:              id,
		CustomerName:    customerName,
		CustomerEmail:   customerEmail,
		ShippingAddress: shippingAddress,
		Items:           slices.Clone(items),
		TotalAmount:     total,
		Status:          StatusPending,
		OrderDate:       time.Now().UTC(),
	}, nil
}

// UpdateStatus moves the order to status. Delivered and cancelled orders
// are final; re-applying the current status is a no-op.
func (o *Order) UpdateStatus(status OrderStatus) error {
	status, err := guard.NotInEnum("status", status)
	if err != nil {
		return err
	}
	if status == o.Status {
		return nil
	}
	if err := guard.Condition("status", o.Status != StatusCancelled,
		guard.WithMessage("cannot change status of a cancelled order"),
	); err != nil {
		return err
	}
	if err := guard.Condition("status", o.Status != StatusDelivered,
		guard.WithMessage("cannot change status of a delivered order"),
	); err != nil {
		return err
	}
	o.Status = status
	return nil
}

// AddItem appends an item for a product not yet in the order. The new total
// must stay within the order limit.
func (o *Order) AddItem(item *OrderItem) error {
	item, err := guard.Null("item", item)
	if err != nil {
		return err
	}
	exists := slices.ContainsFunc(o.Items, func(i OrderItem) bool { return i.ProductID == item.ProductID })
	if err := guard.Condition("item", !exists, guard.WithMessage("product already exists in the order")); err != nil {
		return err
	}

	items := append(slices.Clone(o.Items), *item)
	total, err := orderTotal(items)
	if err != nil {
		return err
	}
	o.Items = items
	o.TotalAmount = total
	return nil
}

func orderTotal(items []OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	total, err := guard.NegativeOrZeroCmp("total_amount", total)
	if err != nil {
		return decimal.Zero, err
	}
	return guard.GreaterThanCmp("total_amount", total, maxOrderAmount)
}

func boundedText(field, value string, minLength, maxLength int) (string, error) {
	value, err := guard.NullOrWhiteSpace(field, value)
	if err != nil {
		return "", err
	}
	return guard.InvalidLength(field, value, minLength, maxLength)
}
