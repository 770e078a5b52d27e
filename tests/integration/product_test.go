//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestListProducts_Seeded(t *testing.T) {
	resp := doGet(t, "/products")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	env := decodeJSON[productsEnvelope](t, resp)
	if env.Total == 0 {
		t.Fatal("seeded catalog is empty")
	}
	if env.Total != len(env.Products) {
		t.Errorf("total %d does not match list length %d", env.Total, len(env.Products))
	}

	for _, p := range env.Products {
		if p.ID == 0 || p.Name == "" || p.Category == "" {
			t.Errorf("incomplete product: %+v", p)
		}
		if !p.Available {
			t.Errorf("product %d: unavailable product leaked into listing", p.ID)
		}
	}
}

func TestListProducts_CategoryFilter(t *testing.T) {
	resp := doGet(t, "/products?category=Lanche")
	defer resp.Body.Close()

	env := decodeJSON[productsEnvelope](t, resp)
	if env.Total == 0 {
		t.Fatal("expected seeded products in category Lanche")
	}
	for _, p := range env.Products {
		if p.Category != "Lanche" {
			t.Errorf("product %d: category %q leaked through filter", p.ID, p.Category)
		}
	}
}

func TestListCategories(t *testing.T) {
	resp := doGet(t, "/products/categories")
	defer resp.Body.Close()

	env := decodeJSON[categoriesEnvelope](t, resp)
	want := []string{"Lanche", "Acompanhamento", "Bebida", "Sobremesa"}
	if len(env.Categories) != len(want) {
		t.Fatalf("categories: got %v, want %v", env.Categories, want)
	}
	for i, c := range want {
		if env.Categories[i] != c {
			t.Errorf("categories[%d]: got %q, want %q", i, env.Categories[i], c)
		}
	}
}

func TestSyncProducts_MissingList(t *testing.T) {
	resp := doPost(t, "/products/sync", map[string]any{})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body := decodeJSON[errorResponse](t, resp); body.Error == "" {
		t.Error("error message missing")
	}
}

func TestSyncProducts_FullReplace(t *testing.T) {
	// Replace the catalog, verify, then restore the original snapshot so
	// the other product tests keep seeing the seeded data.
	origResp := doGet(t, "/products")
	original := decodeJSON[productsEnvelope](t, origResp)
	origResp.Body.Close()

	replacement := map[string]any{"products": []map[string]any{
		{"id": 9001, "name": "Combo Teste", "category": "Lanche", "price": 25.00},
	}}
	resp := doPost(t, "/products/sync", replacement)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sync: expected 200, got %d", resp.StatusCode)
	}

	listResp := doGet(t, "/products")
	env := decodeJSON[productsEnvelope](t, listResp)
	listResp.Body.Close()
	if env.Total != 1 || env.Products[0].ID != 9001 {
		t.Errorf("replace did not take effect: %+v", env)
	}

	restore := make([]map[string]any, len(original.Products))
	for i, p := range original.Products {
		restore[i] = map[string]any{
			"id": p.ID, "name": p.Name, "category": p.Category,
			"price": p.Price, "description": p.Description, "available": p.Available,
		}
	}
	resp = doPost(t, "/products/sync", map[string]any{"products": restore})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("restore: expected 200, got %d", resp.StatusCode)
	}
}
