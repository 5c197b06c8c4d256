package controllers

import (
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ranjeetgautam/SubStack/app/models"
	"github.com/ranjeetgautam/SubStack/app/repository"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopctx"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"
)

var (
	shopifyClient   *shopify.Client
	shopifyClientMu sync.RWMutex
)

// SetShopifyClient injects the Admin API client; used by main wiring and tests.
func SetShopifyClient(client *shopify.Client) {
	shopifyClientMu.Lock()
	defer shopifyClientMu.Unlock()
	shopifyClient = client
}

func getShopifyClient() *shopify.Client {
	shopifyClientMu.RLock()
	if shopifyClient != nil {
		defer shopifyClientMu.RUnlock()
		return shopifyClient
	}
	shopifyClientMu.RUnlock()

	shopifyClientMu.Lock()
	defer shopifyClientMu.Unlock()
	if shopifyClient == nil {
		shopifyClient = shopify.NewClientFromEnv()
	}
	return shopifyClient
}

// HandleGetStoreInfo returns the shop resource behind the current session.
func HandleGetStoreInfo(c *fiber.Ctx) error {
	session := shopctx.GetSession(c)
	if session == nil {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Missing shop session")
	}

	shop, err := getShopifyClient().GetShop(c.Context(), session)
	if err != nil {
		fiberlog.Errorf("failed to fetch store info: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to fetch store info")
	}
	return c.JSON(fiber.Map{"shop": shop})
}

// HandleListShopProducts returns catalog products for the plan creation form.
func HandleListShopProducts(c *fiber.Ctx) error {
	session := shopctx.GetSession(c)
	if session == nil {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Missing shop session")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	products, err := getShopifyClient().ListProducts(c.Context(), session, limit)
	if err != nil {
		fiberlog.Errorf("failed to fetch products: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to fetch products")
	}
	return c.JSON(fiber.Map{"products": products})
}

// HandleProductsCount returns the total catalog size via GraphQL.
func HandleProductsCount(c *fiber.Ctx) error {
	session := shopctx.GetSession(c)
	if session == nil {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Missing shop session")
	}

	count, err := getShopifyClient().ProductsCount(c.Context(), session)
	if err != nil {
		fiberlog.Errorf("failed to fetch product count: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to fetch product count")
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleListSellingPlanGroups returns the selling plan groups registered on
// the commerce platform side.
func HandleListSellingPlanGroups(c *fiber.Ctx) error {
	session := shopctx.GetSession(c)
	if session == nil {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Missing shop session")
	}

	groups, err := getShopifyClient().ListSellingPlanGroups(c.Context(), session)
	if err != nil {
		fiberlog.Errorf("failed to fetch selling plan groups: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to fetch subscription plans")
	}
	return c.JSON(fiber.Map{"selling_plan_groups": groups})
}

// HandleSaveMerchantSettings stores the contact details from the admin
// settings page.
func HandleSaveMerchantSettings(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_error", "Invalid settings payload")
	}

	settings := &models.MerchantSettings{Name: req.Name, Email: req.Email}
	if err := settings.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_error", "Name and a valid email are required")
	}
	if err := repository.GetGlobalFactory().GetSettingRepository().SaveMerchantSettings(settings); err != nil {
		fiberlog.Errorf("failed to save settings: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Error saving settings")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Settings saved successfully"})
}
