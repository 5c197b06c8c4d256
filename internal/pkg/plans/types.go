package plans

import (
	"github.com/ranjeetgautam/SubStack/app/models"
)

// PlanInput is the selling_plan_group payload accepted by create and update.
// Update applies it as a full replace of name, selling plans and products;
// clients must always resend the complete group.
type PlanInput struct {
	Name         string               `json:"name"`
	SellingPlans []models.SellingPlan `json:"selling_plans"`
	Products     []string             `json:"products"`
}

// ResolvedProduct joins a referenced product id with its live catalog title.
// It is derived on every read and never persisted.
type ResolvedProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlanSummary carries the denormalized display fields derived from the first
// selling plan. Later selling plans are stored and returned but do not drive
// the summary.
type PlanSummary struct {
	SellingPlanName string  `json:"selling_plan_name"`
	DiscountType    string  `json:"discount_type"`
	DiscountValue   float64 `json:"discount_value"`
	Cadence         string  `json:"cadence"`
}

// PlanView is the read model: the stored plan plus resolved product names,
// ordered exactly like the plan's products field.
type PlanView struct {
	models.Plan
	ProductNames []ResolvedProduct `json:"product_names"`
	Summary      *PlanSummary      `json:"summary,omitempty"`
}
