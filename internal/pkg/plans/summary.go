package plans

import (
	"fmt"
	"strings"

	"github.com/ranjeetgautam/SubStack/app/models"
)

func normalizeAdjustmentType(adjustmentType string) string {
	switch strings.ToLower(strings.TrimSpace(adjustmentType)) {
	case models.ADJUSTMENT_PERCENTAGE:
		return models.ADJUSTMENT_PERCENTAGE
	case models.ADJUSTMENT_AMOUNT:
		return models.ADJUSTMENT_AMOUNT
	case models.ADJUSTMENT_FLAT:
		return models.ADJUSTMENT_FLAT
	default:
		return ""
	}
}

func normalizeInterval(interval string) string {
	i := strings.ToLower(strings.TrimSpace(interval))
	i = strings.TrimSuffix(i, "s")
	switch i {
	case "day", "week", "month", "year":
		return i
	default:
		return ""
	}
}

// cadence renders a delivery policy as display text, e.g. "4 weeks".
func cadence(policy models.DeliveryPolicy) string {
	interval := normalizeInterval(policy.Interval)
	if interval == "" || policy.IntervalCount <= 0 {
		return ""
	}
	if policy.IntervalCount == 1 {
		return fmt.Sprintf("1 %s", interval)
	}
	return fmt.Sprintf("%d %ss", policy.IntervalCount, interval)
}

// DeriveSummary reads the denormalized display fields from the first selling
// plan. The selling plan sequence stays in the data model, but only index 0
// drives these fields.
func DeriveSummary(plan *models.Plan) *PlanSummary {
	if plan == nil || len(plan.SellingPlans) == 0 {
		return nil
	}

	first := plan.SellingPlans[0]
	summary := &PlanSummary{
		SellingPlanName: first.Name,
		Cadence:         cadence(first.DeliveryPolicy),
	}
	if len(first.PriceAdjustments) > 0 {
		summary.DiscountType = normalizeAdjustmentType(first.PriceAdjustments[0].AdjustmentType)
		summary.DiscountValue = first.PriceAdjustments[0].Value
	}
	return summary
}
