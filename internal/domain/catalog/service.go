package catalog

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// SyncProduct is one product specification in a synchronization request.
// Available defaults to true when the caller omits it.
type SyncProduct struct {
	ID          int64
	Name        string
	Category    string
	Price       decimal.Decimal
	Description *string
	Available   *bool
}

// Service implements the catalog operations exposed to the API surface.
type Service struct {
	repo Repository
}

// NewService creates a catalog Service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Sync replaces the whole catalog with the supplied set inside one
// transaction: every prior entry is deleted, then the new set is inserted
// with the caller-supplied ids. An empty set clears the catalog. There is
// no incremental merge: a product omitted from the call disappears.
func (s *Service) Sync(ctx context.Context, products []SyncProduct) error {
	replacement := make([]Product, len(products))
	for i, p := range products {
		if p.ID == 0 {
			return validationf("product %d: id is required", i)
		}
		if p.Name == "" {
			return validationf("product %d: name is required", i)
		}
		if p.Category == "" {
			return validationf("product %d: category is required", i)
		}
		if p.Price.IsNegative() {
			return validationf("product %d: price must not be negative", i)
		}

		available := true
		if p.Available != nil {
			available = *p.Available
		}
		replacement[i] = Product{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Price:       p.Price,
			Description: p.Description,
			Available:   available,
		}
	}

	if err := s.repo.Replace(ctx, replacement); err != nil {
		return errors.Wrap(err, "replace catalog")
	}
	return nil
}

// ListAvailable returns available products, optionally narrowed to one
// category.
func (s *Service) ListAvailable(ctx context.Context, category string) ([]Product, error) {
	return s.repo.ListAvailable(ctx, category)
}
