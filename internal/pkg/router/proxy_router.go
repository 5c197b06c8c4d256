package router

import (
	"github.com/ranjeetgautam/SubStack/app/controllers"
	"github.com/ranjeetgautam/SubStack/internal/pkg/constants"
	"github.com/ranjeetgautam/SubStack/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProxyRouter serves the storefront app proxy surface. Shopify forwards
// these requests from the shop's own domain, so they carry no admin
// session and must stay read only.
type ProxyRouter struct {
}

func (h ProxyRouter) InstallRouter(app *fiber.App) {
	proxy := app.Group(constants.ProxyRoute, middleware.ProxySignatureMiddleware())
	proxy.Get("/plans", controllers.HandleStorefrontPlans)
}

func NewProxyRouter() *ProxyRouter {
	return &ProxyRouter{}
}
