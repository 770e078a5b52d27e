package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/order"
)

// ListOrders returns all orders, optionally filtered by status label and
// customer reference, most recent first.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context(),
		r.URL.Query().Get("status"),
		r.URL.Query().Get("customer_ref"),
	)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"orders": toOrderResponses(orders),
		"total":  len(orders),
	})
}

// CreateOrder creates an order from the posted line specifications.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	lines := make([]order.CreateLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = order.CreateLine{
			ProductRef:  l.ProductRef,
			ProductName: l.ProductName,
			Category:    l.Category,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Notes:       l.Notes,
		}
	}

	o, err := h.orders.Create(r.Context(), order.CreateInput{
		CustomerRef: req.CustomerRef,
		Lines:       lines,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(o))
}

// GetOrder returns a single order with its lines.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// UpdateOrderStatus sets the order's status from its display label.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Status == nil {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	o, err := h.orders.UpdateStatus(r.Context(), id, *req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// OrdersByCustomer returns every order for one customer reference,
// most recent first. An unknown customer yields an empty list, not 404.
func (h *Handler) OrdersByCustomer(w http.ResponseWriter, r *http.Request) {
	customerRef := chi.URLParam(r, "customerRef")

	orders, err := h.orders.ListByCustomer(r.Context(), customerRef)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"orders":       toOrderResponses(orders),
		"customer_ref": customerRef,
		"total":        len(orders),
	})
}

// Queue returns the kitchen view: non-finalized orders, oldest first.
func (h *Handler) Queue(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.Queue(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"queue": toOrderResponses(orders),
		"total": len(orders),
	})
}

// DeleteOrder removes an order and all its lines.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// orderID parses the {id} route parameter. A non-numeric id can never name
// an order, so it reports not found, matching the original service's
// integer route converter.
func orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, order.ErrNotFound.Error())
		return 0, false
	}
	return id, true
}
