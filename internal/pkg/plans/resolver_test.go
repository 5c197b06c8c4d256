package plans

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"
)

func newResolverFixture(handler http.HandlerFunc) (*ShopifyResolver, *shopify.Session, func()) {
	server := httptest.NewServer(handler)
	client := &shopify.Client{
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
	}
	session := &shopify.Session{Shop: "example.myshopify.com", AccessToken: "shpat_test"}
	return NewShopifyResolver(client), session, server.Close
}

func TestShopifyResolverSuccess(t *testing.T) {
	resolver, session, closeFn := newResolverFixture(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"product":{"id":1,"title":"Candle"}}`))
	})
	defer closeFn()

	resolved := resolver.Resolve(context.Background(), session, "p1")
	assert.Equal(t, ResolvedProduct{ID: "p1", Name: "Candle"}, resolved)
}

func TestShopifyResolverFallsBackOnNotFound(t *testing.T) {
	resolver, session, closeFn := newResolverFixture(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "gid-missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"product":{"id":1,"title":"Candle"}}`))
	})
	defer closeFn()

	resolved := resolver.Resolve(context.Background(), session, "gid-missing")
	assert.Equal(t, ResolvedProduct{ID: "gid-missing", Name: UnknownProductName}, resolved)
}

func TestShopifyResolverFallsBackOnEmptyTitle(t *testing.T) {
	resolver, session, closeFn := newResolverFixture(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"product":{"id":1,"title":""}}`))
	})
	defer closeFn()

	resolved := resolver.Resolve(context.Background(), session, "p1")
	assert.Equal(t, UnknownProductName, resolved.Name)
}

func TestShopifyResolverFallsBackOnTimeout(t *testing.T) {
	resolver, session, closeFn := newResolverFixture(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"product":{"id":1,"title":"Candle"}}`))
	})
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resolved := resolver.Resolve(ctx, session, "p1")
	assert.Equal(t, UnknownProductName, resolved.Name)
}

func TestShopifyResolverFallsBackWithoutSession(t *testing.T) {
	resolver := NewShopifyResolver(&shopify.Client{HTTPClient: http.DefaultClient})

	resolved := resolver.Resolve(context.Background(), nil, "p1")
	assert.Equal(t, ResolvedProduct{ID: "p1", Name: UnknownProductName}, resolved)
}
