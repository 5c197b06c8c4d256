package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ranjeetgautam/SubStack/app/models"
	"github.com/ranjeetgautam/SubStack/internal/pkg/metrics/counter"
	"github.com/ranjeetgautam/SubStack/internal/pkg/plans"
)

// HandleStorefrontPlans serves the storefront widget through the app proxy.
// With a product_id parameter the listing is scoped to that product;
// otherwise all plans are returned. Plans are served unreconciled: the
// widget only renders plan names and cadences, never product titles.
func HandleStorefrontPlans(c *fiber.Ctx) error {
	if settings := models.GetAppSettings(); settings != nil && !settings.IsWidgetEnabled() {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Widget is disabled")
	}

	svc := getPlanService()
	productID := c.Query("product_id")

	var (
		stored []models.Plan
		err    error
	)
	if productID != "" {
		stored, err = svc.ListPlansForProduct(productID)
	} else {
		stored, err = svc.ListAllPlans()
	}
	if err != nil {
		if plans.IsValidationError(err) {
			return jsonError(c, fiber.StatusBadRequest, "validation_error", err.Error())
		}
		fiberlog.Errorf("failed to load storefront plans: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load plans")
	}

	for i := range stored {
		if err := counter.AddPlanView(stored[i].ID); err != nil {
			fiberlog.Warnf("could not count plan view for %s: %v", stored[i].UUID, err)
		}
	}
	return c.JSON(stored)
}
