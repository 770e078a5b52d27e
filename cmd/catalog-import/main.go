// Command catalog-import loads a product catalog from a JSON file (plain
// or gzip-compressed) into the local catalog cache, replacing whatever is
// there. It covers the same full-replace path as POST /products/sync for
// bulk loads and local development seeding.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"

	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/domain/catalog"
	"github.com/lucasmatheustesta/fiap-fase4-pedidos/internal/repository"
)

type productJSON struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description"`
	Available   *bool           `json:"available"`
}

func main() {
	var (
		databaseURL  string
		productsFile string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&productsFile, "products-file", "db/seed/products.json", "path to products JSON file (.gz supported)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, productsFile); err != nil {
		slog.Error("catalog import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("catalog import completed successfully")
}

func run(ctx context.Context, databaseURL, productsFile string) error {
	products, err := readProducts(productsFile)
	if err != nil {
		return errors.Wrap(err, "read products")
	}

	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	svc := catalog.NewService(repository.NewCatalogRepository(pool))

	slog.Info("replacing catalog", slog.Int("count", len(products)))

	sync := make([]catalog.SyncProduct, len(products))
	for i, p := range products {
		sync[i] = catalog.SyncProduct{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Price:       p.Price,
			Description: p.Description,
			Available:   p.Available,
		}
	}
	if err := svc.Sync(ctx, sync); err != nil {
		return errors.Wrap(err, "sync catalog")
	}

	return nil
}

// readProducts parses the products file, transparently decompressing
// .gz input.
func readProducts(path string) ([]productJSON, error) {
	slog.Info("reading products file", slog.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open file")
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip reader")
		}
		defer gz.Close()
		r = gz
	}

	var products []productJSON
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, errors.Wrap(err, "parse products JSON")
	}
	return products, nil
}
