package openfoodfacts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupProductParsesResponse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/product/8690504065395.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Eti Burçak",
				"serving_size": "33g",
				"nutriments": {"energy-kcal_100g": 467.5, "fat_100g": 16.2}
			}
		}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	product, err := c.LookupProduct(context.Background(), "8690504065395")
	if err != nil {
		t.Fatalf("lookup product: %v", err)
	}
	if product.Name != "Eti Burçak" {
		t.Errorf("expected product name Eti Burçak, got %q", product.Name)
	}
	if product.CaloriesPer100 != 467.5 {
		t.Errorf("expected 467.5 kcal/100g, got %.1f", product.CaloriesPer100)
	}
	if product.ServingSize != "33g" {
		t.Errorf("expected serving size 33g, got %q", product.ServingSize)
	}
}

func TestLookupProductDefaultsMissingFields(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": 1, "product": {}}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	product, err := c.LookupProduct(context.Background(), "123")
	if err != nil {
		t.Fatalf("lookup product: %v", err)
	}
	if product.Name != "Unknown Product" {
		t.Errorf("expected default name, got %q", product.Name)
	}
	if product.ServingSize != "100g" {
		t.Errorf("expected default serving size, got %q", product.ServingSize)
	}
	if product.CaloriesPer100 != 0 {
		t.Errorf("expected 0 kcal/100g without nutriments, got %.1f", product.CaloriesPer100)
	}
}

func TestLookupProductNotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err := c.LookupProduct(context.Background(), "0000000000000")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestLookupProductRequiresBarcode(t *testing.T) {
	t.Parallel()
	c := &Client{}
	if _, err := c.LookupProduct(context.Background(), "  "); err == nil {
		t.Fatalf("expected empty barcode to fail")
	}
}

func TestLookupProductServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := c.LookupProduct(context.Background(), "123"); err == nil {
		t.Fatalf("expected server error to fail the lookup")
	}
}
