// Package order holds the order lifecycle domain model: the Order and Line
// entities, the status enumeration, total calculation, and the persistence
// contract the repository layer implements.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer's submitted request composed of one or more line
// items, tracked through a fixed status lifecycle. Total is denormalized:
// it is computed from the lines at creation time and persisted alongside
// the order.
type Order struct {
	ID          int64
	CustomerRef *string
	Status      Status
	Total       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Lines       []Line
}

// Line is one product entry within an order. ProductName and Category are
// snapshots taken from the request at creation time, never re-joined from
// the catalog, so historical orders are unaffected by later catalog edits.
type Line struct {
	ID          int64
	ProductRef  int64
	ProductName string
	Category    string
	Quantity    int
	UnitPrice   decimal.Decimal
	Notes       *string
}

// Subtotal returns unit price times quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ComputeTotal sums unit_price × quantity over the given lines using exact
// decimal arithmetic. An order with no lines totals zero.
func ComputeTotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ListFilter narrows a listing by status and/or customer reference.
// Zero values mean "no filter".
type ListFilter struct {
	Status      *Status
	CustomerRef string
}

// Repository defines persistence operations for orders. All multi-row
// writes run inside a single transaction.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]Order, error)
	ListQueue(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error
}
