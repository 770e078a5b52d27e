// Package handler exposes the order and catalog services over HTTP. Route
// strings, payload shapes and status codes are the integration contract
// with the other shop microservices.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/catalog"
	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/order"
)

// ServiceName identifies this microservice in health and info payloads.
const ServiceName = "pedidos-service"

// Version is reported by the /info endpoint.
const Version = "1.0.0"

// Handler holds the domain services behind the HTTP surface.
type Handler struct {
	orders  *order.Service
	catalog *catalog.Service
}

// NewHandler constructs a Handler with the required domain services.
func NewHandler(orders *order.Service, catalog *catalog.Service) *Handler {
	return &Handler{
		orders:  orders,
		catalog: catalog,
	}
}

// Routes returns the chi router with every API route mounted.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.Health)
	r.Get("/info", h.Info)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/queue", h.Queue)
		r.Get("/customer/{customerRef}", h.OrdersByCustomer)
		r.Get("/{id}", h.GetOrder)
		r.Put("/{id}/status", h.UpdateOrderStatus)
		r.Delete("/{id}", h.DeleteOrder)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/categories", h.ListCategories)
		r.Post("/sync", h.SyncProducts)
	})

	return r
}

// Health implements the service health probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   ServiceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Info describes the service and its endpoint map.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":     ServiceName,
		"version":     Version,
		"description": "order management microservice",
		"endpoints": map[string]string{
			"health":   "/health",
			"orders":   "/orders",
			"queue":    "/orders/queue",
			"products": "/products",
		},
	})
}
