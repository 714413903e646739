package api

import (
	"net/http"

	"github.com/dmitrymomot/guardian/internal/catalog"
)

type updateStatusRequest struct {
	Status catalog.OrderStatus `json:"status"`
}

type orderHandlers struct {
	orders *catalog.OrderService
}

func (h orderHandlers) list(r *http.Request) Response {
	return JSON(h.orders.List(r.Context()))
}

func (h orderHandlers) get(r *http.Request) Response {
	id, err := pathID(r)
	if err != nil {
		return JSONError(err)
	}
	o, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		return JSONError(err)
	}
	return JSON(o)
}

func (h orderHandlers) create(r *http.Request) Response {
	var req catalog.CreateOrderRequest
	if err := decode(r, &req); err != nil {
		return JSONError(err)
	}
	o, err := h.orders.Create(r.Context(), &req)
	if err != nil {
		return JSONError(err)
	}
	return Created("/api/orders/"+o.ID.String(), o)
}

func (h orderHandlers) updateStatus(r *http.Request) Response {
	id, err := pathID(r)
	if err != nil {
		return JSONError(err)
	}
	var req updateStatusRequest
	if err := decode(r, &req); err != nil {
		return JSONError(err)
	}
	o, err := h.orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		return JSONError(err)
	}
	return JSON(o)
}

func (h orderHandlers) delete(r *http.Request) Response {
	id, err := pathID(r)
	if err != nil {
		return JSONError(err)
	}
	if err := h.orders.Delete(r.Context(), id); err != nil {
		return JSONError(err)
	}
	return NoContent()
}
