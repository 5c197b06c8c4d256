package router

import (
	"github.com/ranjeetgautam/SubStack/app/repository"
	apiv1 "github.com/ranjeetgautam/SubStack/internal/api/v1"
	"github.com/ranjeetgautam/SubStack/internal/pkg/constants"
	"github.com/ranjeetgautam/SubStack/internal/pkg/middleware"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	apiServer := apiv1.NewAPIServer()
	api.Get("/ping", apiServer.GetPing)

	// Everything below requires a known shop session. The middleware
	// resolves the shop domain from the request and loads its access
	// token before the handlers run.
	sessions := shopify.NewSessionStore(repository.GetGlobalFactory().GetShopRepository())
	api.Use(middleware.ShopSessionMiddleware(sessions))

	apiv1.RegisterHandlers(api, apiServer)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
