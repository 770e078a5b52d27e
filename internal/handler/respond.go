package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/catalog"
	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/order"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError maps domain errors onto the HTTP error contract: validation
// failures are 400, missing orders 404, everything else a logged 500.
// Storage failures never leak their message to the caller.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, order.ErrNotFound.Error())
	case order.IsValidation(err), catalog.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		zctx.From(r.Context()).Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
