package trends

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"slate/internal/testsupport"
)

func TestNewServiceUnconfigured(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	svc := NewService(cfg)

	products, err := svc.Trending(context.Background(), "desk", 5)
	if err != nil {
		t.Fatalf("noop service must not error: %v", err)
	}
	if products != nil {
		t.Fatalf("noop service returned %v", products)
	}
}

func TestTrendingRequestShape(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"name":"Desk Pad","category":"desk","score":0.91}]}`))
	}))
	defer srv.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithTrendsEndpoint(srv.URL))
	cfg.Trends.APIKey = "secret"
	cfg.Trends.Region = "US"

	products, err := NewService(cfg).Trending(context.Background(), "desk", 3)
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Desk Pad" {
		t.Fatalf("products = %+v", products)
	}
	if gotPath != "/v1/trending" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "category=desk&limit=3&region=US" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("authorization = %q", gotAuth)
	}
}

func TestTrendingErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithTrendsEndpoint(srv.URL))
	if _, err := NewService(cfg).Trending(context.Background(), "", 0); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
