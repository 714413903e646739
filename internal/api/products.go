package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/guardian/internal/catalog"
)

type updatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

type stockRequest struct {
	Quantity int `json:"quantity"`
}

type productHandlers struct {
	products *catalog.ProductService
}

func (h productHandlers) list(r *http.Request) Response {
	return JSON(h.products.List(r.Context()))
}

func (h productHandlers) get(r *http.Request) Response {
	id, err := pathID(r)
	if err != nil {
		return JSONError(err)
	}
	p, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		return JSONError(err)
	}
	return JSON(p)
}

func (h productHandlers) create(r *http.Request) Response {
	var req catalog.CreateProductRequest
	if err := decode(r, &req); err != nil {
		return JSONError(err)
	}
	p, err := h.products.Create(r.Context(), &req)
	if err != nil {
		return JSONError(err)
	}
	return Created("/api/products/"+p.ID.String(), p)
}

func (h productHandlers) updatePrice(r *http.Request) Response {
	id, err := pathID(r)
	if err != nil {
		return JSONError(err)
	}
	var req updatePriceRequest
	if err := decode(r, &req); err != nil {
		return JSONError(err)
	}
	p, err := h.products.UpdatePrice(r.Context(), id, req.Price)
	if err != nil {
		return JSONError(err)
	}
	return JSON(p)
}

type stockFunc func(ctx context.Context, id uuid.UUID, quantity int) (catalog.Product, error)

// stock returns a handler for one of the ProductService stock operations.
func (h productHandlers) stock(op stockFunc) handlerFunc {
	return func(r *http.Request) Response {
		id, err := pathID(r)
		if err != nil {
			return JSONError(err)
		}
		var req stockRequest
		if err := decode(r, &req); err != nil {
			return JSONError(err)
		}
		p, err := op(r.Context(), id, req.Quantity)
		if err != nil {
			return JSONError(err)
		}
		return JSON(p)
	}
}

func (h productHandlers) delete(r *http.Request) Response {
	id, err := pathID(r)
	if err != nil {
		return JSONError(err)
	}
	if err := h.products.Delete(r.Context(), id); err != nil {
		return JSONError(err)
	}
	return NoContent()
}
