package shopctx

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"
)

// ShopContext represents the authenticated shop for a request
type ShopContext struct {
	Shop            string `json:"shop"`
	IsAuthenticated bool   `json:"is_authenticated"`

	Session *shopify.Session `json:"-"`
}

// GetShopContext retrieves the shop context from fiber context
// Returns an unauthenticated context if none is set
func GetShopContext(c *fiber.Ctx) ShopContext {
	if ctx := c.Locals(KeyShopContext); ctx != nil {
		return ctx.(ShopContext)
	}
	return ShopContext{IsAuthenticated: false}
}

// IsAuthenticated checks if the request carries a valid shop session
func IsAuthenticated(c *fiber.Ctx) bool {
	return GetShopContext(c).IsAuthenticated
}

// GetSession returns the Admin API session for the request, or nil
func GetSession(c *fiber.Ctx) *shopify.Session {
	return GetShopContext(c).Session
}
