package catalog

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

// ProductService keeps products in memory. It is safe for concurrent use.
// Returned products are copies.
type ProductService struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*Product
}

func NewProductService() *ProductService {
	return &ProductService{products: make(map[uuid.UUID]*Product)}
}

// Create validates req and stores a new product under a fresh id.
func (s *ProductService) Create(_ context.Context, req *CreateProductRequest) (Product, error) {
	req, err := guard.Null("request", req)
	if err != nil {
		return Product{}, err
	}

	p, err := NewProduct(uuid.New(), req.Name, req.Description, req.Price, req.StockQuantity, req.Category)
	if err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	s.products[p.ID] = p
	s.mu.Unlock()
	return *p, nil
}

// Seed validates every request in reqs and stores the products only when
// all of them are valid, so a bad seed leaves the store unchanged. Failures
// are reported together, each parameter prefixed with its index.
func (s *ProductService) Seed(_ context.Context, reqs []CreateProductRequest) error {
	products := make([]*Product, 0, len(reqs))
	errs := make([]error, 0, len(reqs))
	for i, req := range reqs {
		p, err := NewProduct(uuid.New(), req.Name, req.Description, req.Price, req.StockQuantity, req.Category)
		if err != nil {
			errs = append(errs, seedFailures(i, err))
			continue
		}
		products = append(products, p)
	}
	if err := guard.Collect(errs...); err != nil {
		return errors.Join(ErrInvalidSeed, err)
	}

	s.mu.Lock()
	for _, p := range products {
		s.products[p.ID] = p
	}
	s.mu.Unlock()
	return nil
}

// seedFailures prefixes the parameter of each failure in err with the seed
// entry index, e.g. "products[2].name".
func seedFailures(i int, err error) error {
	failures := guard.Extract(err)
	if len(failures) == 0 {
		return err
	}
	out := make(guard.Errors, 0, len(failures))
	for _, f := range failures {
		prefixed := *f
		prefixed.Param = fmt.Sprintf("products[%d].%s", i, f.Param)
		out = append(out, &prefixed)
	}
	return out
}

func (s *ProductService) GetByID(_ context.Context, id uuid.UUID) (Product, error) {
	id, err := guard.DefaultStruct("id", id)
	if err != nil {
		return Product{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return *p, nil
}

// List returns all products ordered by name.
func (s *ProductService) List(_ context.Context) []Product {
	s.mu.RLock()
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Product) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	return out
}

func (s *ProductService) UpdatePrice(_ context.Context, id uuid.UUID, price decimal.Decimal) (Product, error) {
	return s.update(id, func(p *Product) error { return p.UpdatePrice(price) })
}

func (s *ProductService) UpdateStock(_ context.Context, id uuid.UUID, quantity int) (Product, error) {
	return s.update(id, func(p *Product) error { return p.UpdateStock(quantity) })
}

func (s *ProductService) AddStock(_ context.Context, id uuid.UUID, quantity int) (Product, error) {
	return s.update(id, func(p *Product) error { return p.AddStock(quantity) })
}

func (s *ProductService) RemoveStock(_ context.Context, id uuid.UUID, quantity int) (Product, error) {
	return s.update(id, func(p *Product) error { return p.RemoveStock(quantity) })
}

func (s *ProductService) Delete(_ context.Context, id uuid.UUID) error {
	id, err := guard.DefaultStruct("id", id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// update applies fn to a copy and stores it only when fn succeeds.
func (s *ProductService) update(id uuid.UUID, fn func(*Product) error) (Product, error) {
	id, err := guard.DefaultStruct("id", id)
	if err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.products[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	next := *current
	if err := fn(&next); err != nil {
		return Product{}, err
	}
	s.products[id] = &next
	return next, nil
}
