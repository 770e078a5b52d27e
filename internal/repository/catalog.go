package repository

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/catalog"
)

const (
	deleteProductsSQL = `DELETE FROM products`

	insertProductSQL = `INSERT INTO products (id, name, category, price, description, available, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`

	listAvailableSQL = `SELECT id, name, category, price, description, available, updated_at
		FROM products WHERE available
		ORDER BY category, name`

	listAvailableByCategorySQL = `SELECT id, name, category, price, description, available, updated_at
		FROM products WHERE available AND category = $1
		ORDER BY category, name`
)

var _ catalog.Repository = (*CatalogRepository)(nil)

// CatalogRepository implements catalog.Repository backed by PostgreSQL.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a CatalogRepository that uses the given pool.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Replace deletes every catalog entry and bulk-inserts the given set with
// their caller-supplied ids, all in one transaction. An empty set leaves
// the catalog cleared.
func (r *CatalogRepository) Replace(ctx context.Context, products []catalog.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, deleteProductsSQL); err != nil {
		return errors.Wrap(err, "clear products")
	}

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(insertProductSQL, p.ID, p.Name, p.Category, p.Price, p.Description, p.Available)
	}
	br := tx.SendBatch(ctx, batch)
	for range products {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck // already failing
			return errors.Wrap(err, "insert product")
		}
	}
	if err := br.Close(); err != nil {
		return errors.Wrap(err, "close batch")
	}

	return errors.Wrap(tx.Commit(ctx), "commit")
}

// ListAvailable returns available products ordered by category then name,
// optionally restricted to one category.
func (r *CatalogRepository) ListAvailable(ctx context.Context, category string) ([]catalog.Product, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category == "" {
		rows, err = r.pool.Query(ctx, listAvailableSQL)
	} else {
		rows, err = r.pool.Query(ctx, listAvailableByCategorySQL, category)
	}
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products, err := pgx.CollectRows(rows, scanProduct)
	return products, errors.Wrap(err, "list products")
}

func scanProduct(row pgx.CollectableRow) (catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.Available, &p.UpdatedAt)
	return p, err
}
