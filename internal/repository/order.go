package repository

import (
	"context"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/order"
)

const (
	insertOrderSQL = `INSERT INTO orders (customer_ref, status, total)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	insertLineSQL = `INSERT INTO order_lines (order_id, product_ref, product_name, category, quantity, unit_price, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	selectOrderSQL = `SELECT id, customer_ref, status, total, created_at, updated_at
		FROM orders WHERE id = $1`

	selectQueueSQL = `SELECT id, customer_ref, status, total, created_at, updated_at
		FROM orders WHERE status = ANY($1)
		ORDER BY created_at ASC, id ASC`

	selectLinesSQL = `SELECT id, order_id, product_ref, product_name, category, quantity, unit_price, notes
		FROM order_lines WHERE order_id = ANY($1)
		ORDER BY id`

	updateStatusSQL = `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`

	deleteLinesSQL = `DELETE FROM order_lines WHERE order_id = $1`
	deleteOrderSQL = `DELETE FROM orders WHERE id = $1`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL. Orders
// and their lines live in two tables joined by order_id; every multi-row
// write runs in a single transaction.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists the order and all its lines in one transaction, filling
// in the generated ids and timestamps on o.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	err = tx.QueryRow(ctx, insertOrderSQL, o.CustomerRef, string(o.Status), o.Total).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}

	for i := range o.Lines {
		l := &o.Lines[i]
		err = tx.QueryRow(ctx, insertLineSQL,
			o.ID, l.ProductRef, l.ProductName, l.Category, l.Quantity, l.UnitPrice, l.Notes,
		).Scan(&l.ID)
		if err != nil {
			return errors.Wrapf(err, "insert order line %d", i)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}

// Get returns the order with its lines, or order.ErrNotFound.
func (r *OrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, selectOrderSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get order %d", id)
	}

	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get order %d", id)
	}

	if err := r.attachLines(ctx, []*order.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns orders matching the filter, most recently created first.
func (r *OrderRepository) List(ctx context.Context, filter order.ListFilter) ([]order.Order, error) {
	sql := `SELECT id, customer_ref, status, total, created_at, updated_at FROM orders`
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.CustomerRef != "" {
		args = append(args, filter.CustomerRef)
		conds = append(conds, "customer_ref = $"+strconv.Itoa(len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			sql += " WHERE " + c
		} else {
			sql += " AND " + c
		}
	}
	sql += " ORDER BY created_at DESC, id DESC"

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, r.attachLinesSlice(ctx, orders)
}

// ListQueue returns every non-finalized order, oldest created first.
func (r *OrderRepository) ListQueue(ctx context.Context) ([]order.Order, error) {
	codes := make([]string, len(order.QueueStatuses))
	for i, s := range order.QueueStatuses {
		codes[i] = string(s)
	}

	rows, err := r.pool.Query(ctx, selectQueueSQL, codes)
	if err != nil {
		return nil, errors.Wrap(err, "list queue")
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, errors.Wrap(err, "list queue")
	}
	return orders, r.attachLinesSlice(ctx, orders)
}

// UpdateStatus sets the status and refreshes updated_at. It returns
// order.ErrNotFound when no row matches.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) error {
	tag, err := r.pool.Exec(ctx, updateStatusSQL, id, string(status))
	if err != nil {
		return errors.Wrapf(err, "update order %d status", id)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

// Delete removes the order and its lines in one transaction. The lines are
// deleted explicitly before the order; the schema's ON DELETE CASCADE is
// only a backstop.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, deleteLinesSQL, id); err != nil {
		return errors.Wrapf(err, "delete lines of order %d", id)
	}

	tag, err := tx.Exec(ctx, deleteOrderSQL, id)
	if err != nil {
		return errors.Wrapf(err, "delete order %d", id)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}

	return errors.Wrap(tx.Commit(ctx), "commit")
}

// attachLinesSlice loads lines for all orders in one query.
func (r *OrderRepository) attachLinesSlice(ctx context.Context, orders []order.Order) error {
	ptrs := make([]*order.Order, len(orders))
	for i := range orders {
		ptrs[i] = &orders[i]
	}
	return r.attachLines(ctx, ptrs)
}

func (r *OrderRepository) attachLines(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	byID := make(map[int64]*order.Order, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		byID[o.ID] = o
		o.Lines = []order.Line{}
	}

	rows, err := r.pool.Query(ctx, selectLinesSQL, ids)
	if err != nil {
		return errors.Wrap(err, "load order lines")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			l       order.Line
			orderID int64
		)
		if err := rows.Scan(&l.ID, &orderID, &l.ProductRef, &l.ProductName, &l.Category,
			&l.Quantity, &l.UnitPrice, &l.Notes); err != nil {
			return errors.Wrap(err, "scan order line")
		}
		if o, ok := byID[orderID]; ok {
			o.Lines = append(o.Lines, l)
		}
	}
	return errors.Wrap(rows.Err(), "load order lines")
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o      order.Order
		status string
	)
	err := row.Scan(&o.ID, &o.CustomerRef, &status, &o.Total, &o.CreatedAt, &o.UpdatedAt)
	o.Status = order.Status(status)
	return o, err
}
