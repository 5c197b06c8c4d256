package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to existing controllers to keep behavior consistent
	"github.com/ranjeetgautam/SubStack/app/controllers"
)

// Pong is the response payload of the ping endpoint.
type Pong struct {
	Ping string `json:"ping"`
}

// APIServer implements the ServerInterface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetPlans lists all selling plan groups with resolved product names.
func (s *APIServer) GetPlans(c *fiber.Ctx) error {
	return controllers.HandleListPlans(c)
}

// GetPlan returns a single selling plan group by its id.
func (s *APIServer) GetPlan(c *fiber.Ctx) error {
	return controllers.HandleGetPlan(c)
}

// GetPlansForProduct lists the plan groups attached to a product.
func (s *APIServer) GetPlansForProduct(c *fiber.Ctx) error {
	return controllers.HandleListPlansForProduct(c)
}

// PostPlan creates a new selling plan group.
func (s *APIServer) PostPlan(c *fiber.Ctx) error {
	return controllers.HandleCreatePlan(c)
}

// PutPlan replaces an existing selling plan group.
func (s *APIServer) PutPlan(c *fiber.Ctx) error {
	return controllers.HandleUpdatePlan(c)
}

// DeletePlan removes a selling plan group.
func (s *APIServer) DeletePlan(c *fiber.Ctx) error {
	return controllers.HandleDeletePlan(c)
}

// GetStoreInfo returns the shop record of the authenticated store.
func (s *APIServer) GetStoreInfo(c *fiber.Ctx) error {
	return controllers.HandleGetStoreInfo(c)
}

// GetProducts lists products of the authenticated store.
func (s *APIServer) GetProducts(c *fiber.Ctx) error {
	return controllers.HandleListShopProducts(c)
}

// GetProductsCount returns the product count of the authenticated store.
func (s *APIServer) GetProductsCount(c *fiber.Ctx) error {
	return controllers.HandleProductsCount(c)
}

// GetSellingPlanGroups lists the selling plan groups Shopify knows about.
func (s *APIServer) GetSellingPlanGroups(c *fiber.Ctx) error {
	return controllers.HandleListSellingPlanGroups(c)
}

// PostSettings stores merchant contact settings.
func (s *APIServer) PostSettings(c *fiber.Ctx) error {
	return controllers.HandleSaveMerchantSettings(c)
}

// RegisterHandlers attaches all v1 routes to the given router group.
// The route table mirrors public/docs/v1/openapi.yml.
func RegisterHandlers(router fiber.Router, si *APIServer) {
	router.Get("/plans", si.GetPlans)
	router.Post("/plans", si.PostPlan)
	router.Get("/plans/product/:productId", si.GetPlansForProduct)
	router.Get("/plans/:id", si.GetPlan)
	router.Put("/plans/:id", si.PutPlan)
	router.Delete("/plans/:id", si.DeletePlan)

	router.Get("/store/info", si.GetStoreInfo)
	router.Get("/products", si.GetProducts)
	router.Get("/products/count", si.GetProductsCount)
	router.Get("/selling-plan-groups", si.GetSellingPlanGroups)
	router.Post("/settings", si.PostSettings)
}
