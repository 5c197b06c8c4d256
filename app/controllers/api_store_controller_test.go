package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjeetgautam/SubStack/internal/pkg/shopctx"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"
)

func newStoreTestApp(t *testing.T, upstream http.HandlerFunc, authenticated bool) *fiber.App {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	SetShopifyClient(&shopify.Client{
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
	})
	t.Cleanup(func() { SetShopifyClient(nil) })

	app := fiber.New()
	if authenticated {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(shopctx.KeyShopContext, shopctx.ShopContext{
				Shop:            "example.myshopify.com",
				IsAuthenticated: true,
				Session:         &shopify.Session{Shop: "example.myshopify.com", AccessToken: "shpat_test"},
			})
			return c.Next()
		})
	}
	app.Get("/api/store/info", HandleGetStoreInfo)
	app.Get("/api/products", HandleListShopProducts)
	app.Get("/api/products/count", HandleProductsCount)
	app.Get("/api/selling-plan-groups", HandleListSellingPlanGroups)
	app.Post("/api/settings", HandleSaveMerchantSettings)
	return app
}

func TestHandleGetStoreInfo(t *testing.T) {
	app := newStoreTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/shop.json"))
		_, _ = w.Write([]byte(`{"shop":{"id":1,"name":"Candle Co","currency":"EUR"}}`))
	}, true)

	resp, body := doJSONRequest(t, app, http.MethodGet, "/api/store/info", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Candle Co")
}

func TestHandleGetStoreInfoRequiresSession(t *testing.T) {
	app := newStoreTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called without a session")
	}, false)

	resp, body := doJSONRequest(t, app, http.MethodGet, "/api/store/info", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "unauthorized")
}

func TestHandleListShopProducts(t *testing.T) {
	app := newStoreTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Candle"}]}`))
	}, true)

	resp, body := doJSONRequest(t, app, http.MethodGet, "/api/products?limit=10", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Candle")
}

func TestHandleProductsCount(t *testing.T) {
	app := newStoreTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"data":{"productsCount":{"count":7}}}`))
	}, true)

	resp, body := doJSONRequest(t, app, http.MethodGet, "/api/products/count", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"count":7`)
}

func TestHandleProductsCountUpstreamFault(t *testing.T) {
	app := newStoreTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, true)

	resp, _ := doJSONRequest(t, app, http.MethodGet, "/api/products/count", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleListSellingPlanGroups(t *testing.T) {
	app := newStoreTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/selling_plan_groups.json"))
		_, _ = w.Write([]byte(`{"selling_plan_groups":[{"id":5,"name":"Subscribe & Save"}]}`))
	}, true)

	resp, body := doJSONRequest(t, app, http.MethodGet, "/api/selling-plan-groups", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Groups []shopify.SellingPlanGroup `json:"selling_plan_groups"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Groups, 1)
	assert.Equal(t, "Subscribe & Save", out.Groups[0].Name)
}

func TestHandleSaveMerchantSettingsRejectsInvalidPayload(t *testing.T) {
	app := newStoreTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called")
	}, true)

	for _, payload := range []string{
		`{"name":"","email":"merchant@example.com"}`,
		`{"name":"Candle Co","email":"not-an-email"}`,
		`{"name":"Candle Co","email":""}`,
	} {
		resp, body := doJSONRequest(t, app, http.MethodPost, "/api/settings", []byte(payload))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "validation_error")
	}
}
