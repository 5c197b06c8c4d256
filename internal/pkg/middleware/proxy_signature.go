package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ranjeetgautam/SubStack/internal/pkg/env"
	"github.com/ranjeetgautam/SubStack/internal/pkg/security"
)

// ProxySignatureMiddleware verifies the signature Shopify attaches to app
// proxy requests. When no app secret is configured the check is skipped so
// local development works without a proxy in front.
func ProxySignatureMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := env.GetEnv("SHOPIFY_API_SECRET", "")
		if secret == "" {
			return c.Next()
		}

		query := url.Values{}
		c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
			query.Add(string(key), string(value))
		})

		if err := security.VerifyProxySignature(query, secret); err != nil {
			log.Warnf("proxy signature rejected from %s: %v", c.IP(), err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden", "message": "Invalid signature"})
		}

		return c.Next()
	}
}
