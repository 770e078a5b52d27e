package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/catalog"
)

// ListProducts returns available catalog entries, optionally filtered by
// exact category, ordered by category then name.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListAvailable(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"products": toProductResponses(products),
		"total":    len(products),
	})
}

// ListCategories returns the fixed category taxonomy. It is deliberately
// static, not derived from the stored catalog.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": catalog.Categories,
	})
}

// SyncProducts replaces the whole catalog with the posted product set. A
// missing products field is rejected; an empty list clears the catalog.
func (h *Handler) SyncProducts(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Products == nil {
		writeError(w, http.StatusBadRequest, "products list is required")
		return
	}

	products := make([]catalog.SyncProduct, len(*req.Products))
	for i, p := range *req.Products {
		products[i] = catalog.SyncProduct{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Price:       p.Price,
			Description: p.Description,
			Available:   p.Available,
		}
	}

	if err := h.catalog.Sync(r.Context(), products); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "products synchronized successfully",
	})
}
