// Package catalog holds the locally cached product catalog. The catalog is
// a replaceable snapshot synchronized from the upstream product service; it
// is never the source of truth.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product is one sellable catalog entry. The id is supplied by the
// synchronization caller, not generated locally.
type Product struct {
	ID          int64
	Name        string
	Category    string
	Price       decimal.Decimal
	Description *string
	Available   bool
	UpdatedAt   time.Time
}

// Categories is the fixed product taxonomy. It is a static enumeration
// independent of which products currently exist in the catalog.
var Categories = []string{"Lanche", "Acompanhamento", "Bebida", "Sobremesa"}

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// ValidationError indicates a malformed synchronization request.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Repository defines persistence operations for the catalog.
type Repository interface {
	// Replace atomically swaps the entire catalog for the given set.
	Replace(ctx context.Context, products []Product) error
	// ListAvailable returns available products, optionally filtered by
	// exact category, ordered by category then name.
	ListAvailable(ctx context.Context, category string) ([]Product, error)
}
