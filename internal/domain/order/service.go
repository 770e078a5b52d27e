package order

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// CreateLine is one line specification in an order creation request.
// ProductName and Category are copied onto the persisted line as-is.
type CreateLine struct {
	ProductRef  int64
	ProductName string
	Category    string
	Quantity    int
	UnitPrice   decimal.Decimal
	Notes       *string
}

// CreateInput holds the input for creating an order.
type CreateInput struct {
	CustomerRef *string
	Lines       []CreateLine
}

// Service implements the order operations exposed to the API surface.
type Service struct {
	repo Repository
}

// NewService creates an order Service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the request, computes the total from the supplied lines
// and persists the order with its lines in one transaction. New orders
// always start in StatusReceived.
//
// Quantity and unit price must be strictly positive. The original service
// left this unchecked at some call sites; here the rule is applied
// uniformly at creation.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Order, error) {
	if len(in.Lines) == 0 {
		return nil, validationf("order lines are required")
	}

	lines := make([]Line, len(in.Lines))
	for i, l := range in.Lines {
		if l.ProductRef == 0 {
			return nil, validationf("line %d: product_ref is required", i)
		}
		if l.ProductName == "" {
			return nil, validationf("line %d: product_name is required", i)
		}
		if l.Category == "" {
			return nil, validationf("line %d: category is required", i)
		}
		if l.Quantity <= 0 {
			return nil, validationf("line %d: quantity must be greater than 0", i)
		}
		if !l.UnitPrice.IsPositive() {
			return nil, validationf("line %d: unit_price must be greater than 0", i)
		}

		lines[i] = Line{
			ProductRef:  l.ProductRef,
			ProductName: l.ProductName,
			Category:    l.Category,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Notes:       l.Notes,
		}
	}

	o := &Order{
		CustomerRef: in.CustomerRef,
		Status:      StatusReceived,
		Total:       ComputeTotal(lines),
		Lines:       lines,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	return o, nil
}

// Get returns the order with the given id, lines included.
func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.repo.Get(ctx, id)
}

// List returns orders matching the optional status label and customer
// reference filters, most recently created first. A status label that is
// not part of the enumeration is rejected, not silently ignored.
func (s *Service) List(ctx context.Context, statusLabel, customerRef string) ([]Order, error) {
	filter := ListFilter{CustomerRef: customerRef}
	if statusLabel != "" {
		st, err := ParseStatusLabel(statusLabel)
		if err != nil {
			return nil, err
		}
		filter.Status = &st
	}
	return s.repo.List(ctx, filter)
}

// ListByCustomer returns all orders for the given customer reference,
// most recent first, regardless of status.
func (s *Service) ListByCustomer(ctx context.Context, customerRef string) ([]Order, error) {
	return s.repo.List(ctx, ListFilter{CustomerRef: customerRef})
}

// Queue returns the kitchen queue: every non-finalized order, oldest
// first, because the queue represents a FIFO production line.
func (s *Service) Queue(ctx context.Context) ([]Order, error) {
	return s.repo.ListQueue(ctx)
}

// UpdateStatus sets the order's status from its display label and returns
// the refreshed order. Any enumerated status may follow any other; there
// is no transition table.
func (s *Service) UpdateStatus(ctx context.Context, id int64, statusLabel string) (*Order, error) {
	// Existence is checked before the label so a missing order reports not
	// found even when the label is also bad, matching the endpoint contract.
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	st, err := ParseStatusLabel(statusLabel)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the order and all its lines. Lines never outlive their
// order.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
