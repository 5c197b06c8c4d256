package controllers

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ranjeetgautam/SubStack/app/models"
	"github.com/ranjeetgautam/SubStack/app/repository"
	"github.com/ranjeetgautam/SubStack/internal/pkg/plans"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopctx"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"
)

var (
	planService   *plans.Service
	planServiceMu sync.RWMutex
)

// SetPlanService injects the plan service; used by main wiring and tests.
func SetPlanService(svc *plans.Service) {
	planServiceMu.Lock()
	defer planServiceMu.Unlock()
	planService = svc
}

func getPlanService() *plans.Service {
	planServiceMu.RLock()
	if planService != nil {
		defer planServiceMu.RUnlock()
		return planService
	}
	planServiceMu.RUnlock()

	planServiceMu.Lock()
	defer planServiceMu.Unlock()
	if planService == nil {
		ttl := 60 * time.Second
		if settings := models.GetAppSettings(); settings != nil {
			ttl = settings.GetProductCacheTTL()
		}
		resolver := plans.NewCachedResolver(plans.NewShopifyResolver(shopify.NewClientFromEnv()), ttl)
		planService = plans.NewService(
			repository.GetGlobalFactory().GetPlanRepository(),
			plans.NewReconciler(resolver),
		)
	}
	return planService
}

// sellingPlanGroupRequest is the write payload for create and update.
type sellingPlanGroupRequest struct {
	SellingPlanGroup *plans.PlanInput `json:"selling_plan_group"`
}

// HandleListPlans returns all plans reconciled with live product titles.
func HandleListPlans(c *fiber.Ctx) error {
	views, err := getPlanService().ListPlans(c.Context(), shopctx.GetSession(c))
	if err != nil {
		fiberlog.Errorf("failed to list plans: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load plans")
	}
	return c.JSON(views)
}

// HandleGetPlan returns one reconciled plan by its public id.
func HandleGetPlan(c *fiber.Ctx) error {
	view, err := getPlanService().GetPlan(c.Context(), shopctx.GetSession(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, plans.ErrPlanNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Plan not found")
		}
		fiberlog.Errorf("failed to load plan %s: %v", c.Params("id"), err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load plan")
	}
	return c.JSON(view)
}

// HandleListPlansForProduct returns the unreconciled plans referencing a
// product. The storefront widget drives its purchase options from this.
func HandleListPlansForProduct(c *fiber.Ctx) error {
	matches, err := getPlanService().ListPlansForProduct(c.Params("productId"))
	if err != nil {
		if plans.IsValidationError(err) {
			return jsonError(c, fiber.StatusBadRequest, "validation_error", err.Error())
		}
		fiberlog.Errorf("failed to list plans for product %s: %v", c.Params("productId"), err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load plans")
	}
	return c.JSON(matches)
}

// HandleCreatePlan validates and persists a new selling plan group.
func HandleCreatePlan(c *fiber.Ctx) error {
	var req sellingPlanGroupRequest
	if err := c.BodyParser(&req); err != nil || req.SellingPlanGroup == nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_error", "Invalid selling plan group data")
	}

	created, err := getPlanService().CreatePlan(*req.SellingPlanGroup)
	if err != nil {
		if plans.IsValidationError(err) {
			return jsonError(c, fiber.StatusBadRequest, "validation_error", err.Error())
		}
		fiberlog.Errorf("failed to save plan: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save the plan")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdatePlan replaces an existing plan's name, selling plans and
// products wholesale; clients must resend the complete group.
func HandleUpdatePlan(c *fiber.Ctx) error {
	var req sellingPlanGroupRequest
	if err := c.BodyParser(&req); err != nil || req.SellingPlanGroup == nil {
		return jsonError(c, fiber.StatusBadRequest, "validation_error", "Invalid selling plan group data")
	}

	updated, err := getPlanService().UpdatePlan(c.Params("id"), *req.SellingPlanGroup)
	if err != nil {
		if plans.IsValidationError(err) {
			return jsonError(c, fiber.StatusBadRequest, "validation_error", err.Error())
		}
		if errors.Is(err, plans.ErrPlanNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Plan not found")
		}
		fiberlog.Errorf("failed to update plan %s: %v", c.Params("id"), err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update the plan")
	}
	return c.JSON(updated)
}

// HandleDeletePlan removes a plan permanently.
func HandleDeletePlan(c *fiber.Ctx) error {
	if err := getPlanService().DeletePlan(c.Params("id")); err != nil {
		if errors.Is(err, plans.ErrPlanNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Plan not found")
		}
		fiberlog.Errorf("failed to delete plan %s: %v", c.Params("id"), err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete the plan")
	}
	return c.JSON(fiber.Map{"success": true})
}
