package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

// OrderService keeps orders in memory. It is safe for concurrent use.
type OrderService struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*Order
}

func NewOrderService() *OrderService {
	return &OrderService{orders: make(map[uuid.UUID]*Order)}
}

// Create validates every item and the order itself, then stores the order
// under a fresh id with status pending.
func (s *OrderService) Create(_ context.Context, req *CreateOrderRequest) (Order, error) {
	req, err := guard.Null("request", req)
	if err != nil {
		return Order{}, err
	}
	reqItems, err := guard.NullOrEmptySlice("items", req.Items)
	if err != nil {
		return Order{}, err
	}

	items := make([]OrderItem, 0, len(reqItems))
	for _, ri := range reqItems {
		item, err := NewOrderItem(ri.ProductID, ri.ProductName, ri.Price, ri.Quantity)
		if err != nil {
			return Order{}, err
		}
		items = append(items, item)
	}

	o, err := NewOrder(uuid.New(), req.CustomerName, req.CustomerEmail, req.ShippingAddress, items)
	if err != nil {
		return Order{}, err
	}

	s.mu.Lock()
	s.orders[o.ID] = o
	s.mu.Unlock()
	return cloneOrder(o), nil
}

func (s *OrderService) GetByID(_ context.Context, id uuid.UUID) (Order, error) {
	id, err := guard.DefaultStruct("id", id)
	if err != nil {
		return Order{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

// List returns all orders, newest first.
func (s *OrderService) List(_ context.Context) []Order {
	s.mu.RLock()
	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Order) int {
		return b.OrderDate.Compare(a.OrderDate)
	})
	return out
}

func (s *OrderService) UpdateStatus(_ context.Context, id uuid.UUID, status OrderStatus) (Order, error) {
	if err := guard.Collect(
		guard.Err(guard.DefaultStruct("id", id)),
		guard.Err(guard.NotInEnum("status", status)),
	); err != nil {
		return Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	if err := o.UpdateStatus(status); err != nil {
		return Order{}, err
	}
	return cloneOrder(o), nil
}

func (s *OrderService) Delete(_ context.Context, id uuid.UUID) error {
	id, err := guard.DefaultStruct("id", id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return ErrOrderNotFound
	}
	delete(s.orders, id)
	return nil
}

func cloneOrder(o *Order) Order {
	c := *o
	c.Items = slices.Clone(o.Items)
	return c
}
