package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ranjeetgautam/SubStack/internal/pkg/env"
)

const defaultAPIVersion = "2024-07"

// Session carries the shop domain and offline access token used to
// authenticate Admin API calls. Token issuance is owned by the surrounding
// OAuth middleware; callers obtain sessions via the SessionStore.
type Session struct {
	Shop        string `json:"shop"`
	AccessToken string `json:"access_token"`
}

// Client is a minimal Shopify Admin API client covering the resources this
// app reads: products, the shop itself and selling plan groups.
type Client struct {
	APIVersion string

	// BaseURL overrides the https://<shop> scheme+host when set. Used by
	// tests to point the client at a local server.
	BaseURL string

	HTTPClient *http.Client
}

// Product is the subset of the Admin API product resource the app consumes.
type Product struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Status string `json:"status"`
	Image  struct {
		Src string `json:"src"`
	} `json:"image"`
}

// Shop is the subset of the Admin API shop resource the app consumes.
type Shop struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Domain          string `json:"domain"`
	MyshopifyDomain string `json:"myshopify_domain"`
	Currency        string `json:"currency"`
}

// SellingPlanGroup mirrors the remote selling plan group resource returned to
// the storefront proxy.
type SellingPlanGroup struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	MerchantCode string   `json:"merchant_code"`
	Options      []string `json:"options"`
}

func NewClientFromEnv() *Client {
	return &Client{
		APIVersion: strings.TrimSpace(env.GetEnv("SHOPIFY_API_VERSION", defaultAPIVersion)),
		BaseURL:    strings.TrimSpace(env.GetEnv("SHOPIFY_API_BASE_URL", "")),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) baseURL(session *Session) string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return "https://" + strings.TrimSuffix(session.Shop, "/")
}

func (c *Client) restURL(session *Session, resource string) string {
	version := c.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}
	return fmt.Sprintf("%s/admin/api/%s/%s", c.baseURL(session), version, resource)
}

func (c *Client) doJSON(ctx context.Context, session *Session, method, url string, payload, out interface{}) error {
	if session == nil || strings.TrimSpace(session.AccessToken) == "" {
		return errors.New("shopify session with access token is required")
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("X-Shopify-Access-Token", session.AccessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("shopify request failed: status=%d url=%s body=%s", resp.StatusCode, url, string(data))
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// GetProduct fetches a single product by id. The id may be a plain numeric id
// or a GraphQL gid (gid://shopify/Product/123).
func (c *Client) GetProduct(ctx context.Context, session *Session, productID string) (*Product, error) {
	id := NormalizeProductID(productID)
	if id == "" {
		return nil, errors.New("product id is required")
	}

	var out struct {
		Product Product `json:"product"`
	}
	url := c.restURL(session, "products/"+id+".json")
	if err := c.doJSON(ctx, session, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// ListProducts fetches up to limit products for the plan creation form.
func (c *Client) ListProducts(ctx context.Context, session *Session, limit int) ([]Product, error) {
	if limit <= 0 || limit > 250 {
		limit = 50
	}

	var out struct {
		Products []Product `json:"products"`
	}
	url := c.restURL(session, fmt.Sprintf("products.json?limit=%d", limit))
	if err := c.doJSON(ctx, session, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// GetShop fetches the shop resource behind the session.
func (c *Client) GetShop(ctx context.Context, session *Session) (*Shop, error) {
	var out struct {
		Shop Shop `json:"shop"`
	}
	url := c.restURL(session, "shop.json")
	if err := c.doJSON(ctx, session, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}
	return &out.Shop, nil
}

// ProductsCount returns the total product count via the GraphQL Admin API.
func (c *Client) ProductsCount(ctx context.Context, session *Session) (int64, error) {
	payload := map[string]string{
		"query": `query shopifyProductCount { productsCount { count } }`,
	}

	var out struct {
		Data struct {
			ProductsCount struct {
				Count int64 `json:"count"`
			} `json:"productsCount"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	url := c.restURL(session, "graphql.json")
	if err := c.doJSON(ctx, session, http.MethodPost, url, payload, &out); err != nil {
		return 0, err
	}
	if len(out.Errors) > 0 {
		return 0, fmt.Errorf("shopify graphql error: %s", out.Errors[0].Message)
	}
	return out.Data.ProductsCount.Count, nil
}

// ListSellingPlanGroups returns the selling plan groups registered remotely.
func (c *Client) ListSellingPlanGroups(ctx context.Context, session *Session) ([]SellingPlanGroup, error) {
	var out struct {
		SellingPlanGroups []SellingPlanGroup `json:"selling_plan_groups"`
	}
	url := c.restURL(session, "selling_plan_groups.json")
	if err := c.doJSON(ctx, session, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}
	return out.SellingPlanGroups, nil
}

// NormalizeProductID strips a GraphQL gid prefix so both id forms address the
// same REST resource.
func NormalizeProductID(productID string) string {
	id := strings.TrimSpace(productID)
	if idx := strings.LastIndex(id, "/"); idx >= 0 && strings.HasPrefix(id, "gid://") {
		id = id[idx+1:]
	}
	return id
}
