package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	replaced     [][]Product
	listCategory string
	listResult   []Product
	err          error
}

func (m *mockRepo) Replace(_ context.Context, products []Product) error {
	if m.err != nil {
		return m.err
	}
	m.replaced = append(m.replaced, products)
	return nil
}

func (m *mockRepo) ListAvailable(_ context.Context, category string) ([]Product, error) {
	m.listCategory = category
	return m.listResult, m.err
}

func boolPtr(b bool) *bool { return &b }

func syncProduct(id int64, name string) SyncProduct {
	return SyncProduct{
		ID:       id,
		Name:     name,
		Category: "Lanche",
		Price:    decimal.RequireFromString("15.50"),
	}
}

func TestSync_AvailabilityDefaultsTrue(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	err := svc.Sync(context.Background(), []SyncProduct{syncProduct(1, "X-Burger")})
	require.NoError(t, err)
	require.Len(t, repo.replaced, 1)
	require.Len(t, repo.replaced[0], 1)
	assert.True(t, repo.replaced[0][0].Available)
}

func TestSync_ExplicitUnavailable(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	p := syncProduct(1, "X-Burger")
	p.Available = boolPtr(false)
	require.NoError(t, svc.Sync(context.Background(), []SyncProduct{p}))
	assert.False(t, repo.replaced[0][0].Available)
}

func TestSync_KeepsCallerSuppliedIDs(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	err := svc.Sync(context.Background(), []SyncProduct{
		syncProduct(7, "X-Burger"),
		syncProduct(42, "X-Bacon"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.replaced[0][0].ID)
	assert.Equal(t, int64(42), repo.replaced[0][1].ID)
}

func TestSync_EmptyListClearsCatalog(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.Sync(context.Background(), []SyncProduct{}))
	require.Len(t, repo.replaced, 1)
	assert.Empty(t, repo.replaced[0])
}

func TestSync_MissingFields(t *testing.T) {
	svc := NewService(&mockRepo{})

	missingID := syncProduct(0, "X-Burger")
	missingName := syncProduct(1, "")
	missingCategory := syncProduct(1, "X-Burger")
	missingCategory.Category = ""
	negativePrice := syncProduct(1, "X-Burger")
	negativePrice.Price = decimal.RequireFromString("-1.00")

	for _, p := range []SyncProduct{missingID, missingName, missingCategory, negativePrice} {
		err := svc.Sync(context.Background(), []SyncProduct{p})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
}

func TestListAvailable_PassesCategory(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	_, err := svc.ListAvailable(context.Background(), "Bebida")
	require.NoError(t, err)
	assert.Equal(t, "Bebida", repo.listCategory)
}

func TestCategories_FixedTaxonomy(t *testing.T) {
	assert.Equal(t, []string{"Lanche", "Acompanhamento", "Bebida", "Sobremesa"}, Categories)
}
