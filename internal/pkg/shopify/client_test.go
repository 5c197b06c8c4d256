package shopify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return &Client{
		APIVersion: defaultAPIVersion,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func testSession() *Session {
	return &Session{Shop: "example.myshopify.com", AccessToken: "shpat_test"}
}

func TestGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/"+defaultAPIVersion+"/products/123.json", r.URL.Path)
		assert.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"product":{"id":123,"title":"Candle","status":"active"}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	product, err := client.GetProduct(context.Background(), testSession(), "123")
	require.NoError(t, err)
	assert.EqualValues(t, 123, product.ID)
	assert.Equal(t, "Candle", product.Title)
}

func TestGetProductAcceptsGraphQLGid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/"+defaultAPIVersion+"/products/456.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"product":{"id":456,"title":"Soap"}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	product, err := client.GetProduct(context.Background(), testSession(), "gid://shopify/Product/456")
	require.NoError(t, err)
	assert.Equal(t, "Soap", product.Title)
}

func TestGetProductNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":"Not Found"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	product, err := client.GetProduct(context.Background(), testSession(), "999")
	require.Error(t, err)
	assert.Nil(t, product)
}

func TestGetProductRequiresSession(t *testing.T) {
	client := testClient("http://localhost:0")

	_, err := client.GetProduct(context.Background(), nil, "1")
	require.Error(t, err)

	_, err = client.GetProduct(context.Background(), &Session{Shop: "s.myshopify.com"}, "1")
	require.Error(t, err)
}

func TestListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "limit=5", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Candle"},{"id":2,"title":"Soap"}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	products, err := client.ListProducts(context.Background(), testSession(), 5)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Soap", products[1].Title)
}

func TestProductsCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/api/"+defaultAPIVersion+"/graphql.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"productsCount":{"count":42}}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	count, err := client.ProductsCount(context.Background(), testSession())
	require.NoError(t, err)
	assert.EqualValues(t, 42, count)
}

func TestProductsCountGraphQLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"throttled"}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.ProductsCount(context.Background(), testSession())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestNormalizeProductID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "123", want: "123"},
		{in: " 123 ", want: "123"},
		{in: "gid://shopify/Product/789", want: "789"},
		{in: "handle/with/slash", want: "handle/with/slash"},
	}

	for _, tt := range tests {
		if got := NormalizeProductID(tt.in); got != tt.want {
			t.Fatalf("NormalizeProductID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
