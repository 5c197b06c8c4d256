package plans

import (
	"context"
	"log"
	"time"

	"github.com/ranjeetgautam/SubStack/internal/pkg/cache"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"
)

// UnknownProductName is the sentinel substituted when a product lookup fails,
// so one dangling product reference never fails a whole plan read.
const UnknownProductName = "Unknown Product"

// ProductResolver resolves a product id to its live catalog title. Resolve
// never fails: any upstream problem yields the sentinel name instead.
type ProductResolver interface {
	Resolve(ctx context.Context, session *shopify.Session, productID string) ResolvedProduct
}

// ShopifyResolver resolves product titles against the Admin API.
type ShopifyResolver struct {
	client *shopify.Client
}

func NewShopifyResolver(client *shopify.Client) *ShopifyResolver {
	return &ShopifyResolver{client: client}
}

// Resolve fetches the product title. Not-found, network errors, rate limits
// and timeouts all collapse into the sentinel fallback.
func (r *ShopifyResolver) Resolve(ctx context.Context, session *shopify.Session, productID string) ResolvedProduct {
	fallback := ResolvedProduct{ID: productID, Name: UnknownProductName}
	if session == nil {
		return fallback
	}

	product, err := r.client.GetProduct(ctx, session, productID)
	if err != nil {
		log.Printf("product resolution failed for %s: %v", productID, err)
		return fallback
	}
	if product.Title == "" {
		return fallback
	}
	return ResolvedProduct{ID: productID, Name: product.Title}
}

// CachedResolver decorates a resolver with a short-lived redis cache keyed by
// shop and product id. Only successful resolutions are cached; cache failures
// degrade to a direct lookup.
type CachedResolver struct {
	inner ProductResolver
	ttl   time.Duration
}

func NewCachedResolver(inner ProductResolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{inner: inner, ttl: ttl}
}

func productCacheKey(session *shopify.Session, productID string) string {
	shop := ""
	if session != nil {
		shop = session.Shop
	}
	return "plans:product:" + shop + ":" + productID
}

func (r *CachedResolver) Resolve(ctx context.Context, session *shopify.Session, productID string) ResolvedProduct {
	if r.ttl <= 0 {
		return r.inner.Resolve(ctx, session, productID)
	}

	key := productCacheKey(session, productID)
	var cached ResolvedProduct
	if err := cache.GetJSON(key, &cached); err == nil && cached.Name != "" {
		return cached
	}

	resolved := r.inner.Resolve(ctx, session, productID)
	if resolved.Name != UnknownProductName {
		if err := cache.SetJSON(key, resolved, r.ttl); err != nil {
			log.Printf("failed to cache product resolution for %s: %v", productID, err)
		}
	}
	return resolved
}
