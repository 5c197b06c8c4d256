package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ranjeetgautam/SubStack/internal/pkg/env"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopctx"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"
)

// ShopSessionMiddleware resolves the shop behind each admin request and
// attaches its offline Admin API session to the request locals. The shop is
// taken from the X-Shopify-Shop-Domain header or the shop query parameter;
// a SHOPIFY_SHOP env entry serves as the single-tenant fallback.
func ShopSessionMiddleware(sessions *shopify.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		domain := extractShopDomain(c)
		if domain == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Missing shop parameter"})
		}

		session, err := sessions.FindByShop(domain)
		if err != nil {
			if err == shopify.ErrShopNotInstalled {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Shop is not authenticated"})
			}
			log.Printf("shop session lookup failed for %s: %v", domain, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Session lookup failed"})
		}

		c.Locals(shopctx.KeyShopContext, shopctx.ShopContext{
			Shop:            domain,
			IsAuthenticated: true,
			Session:         session,
		})
		c.Locals(shopctx.KeyShopDomain, domain)

		return c.Next()
	}
}

func extractShopDomain(c *fiber.Ctx) string {
	if domain := strings.TrimSpace(c.Get("X-Shopify-Shop-Domain")); domain != "" {
		return domain
	}
	if domain := strings.TrimSpace(c.Query("shop")); domain != "" {
		return domain
	}
	return strings.TrimSpace(env.GetEnv("SHOPIFY_SHOP", ""))
}
