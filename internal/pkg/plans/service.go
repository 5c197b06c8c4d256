package plans

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ranjeetgautam/SubStack/app/models"
	"github.com/ranjeetgautam/SubStack/app/repository"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"
)

// Service orchestrates plan storage and reconciliation. Writes go through
// validation and never resolve product names; reads reconcile against the
// live catalog.
type Service struct {
	repo       repository.PlanRepository
	reconciler *Reconciler
}

// NewService creates a plan service from an injected repository and reconciler.
func NewService(repo repository.PlanRepository, reconciler *Reconciler) *Service {
	return &Service{repo: repo, reconciler: reconciler}
}

// CreatePlan validates and persists a new plan. The stored plan is returned
// unreconciled; product names are only resolved on the read path.
func (s *Service) CreatePlan(input PlanInput) (*models.Plan, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	plan := &models.Plan{
		Name:         strings.TrimSpace(input.Name),
		SellingPlans: models.SellingPlans(input.SellingPlans),
		Products:     normalizeProducts(input.Products),
	}
	if err := s.repo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// ListPlans returns all plans reconciled with live product titles.
func (s *Service) ListPlans(ctx context.Context, session *shopify.Session) ([]PlanView, error) {
	stored, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.reconciler.ReconcileMany(ctx, session, stored), nil
}

// GetPlan returns a single reconciled plan or ErrPlanNotFound.
func (s *Service) GetPlan(ctx context.Context, session *shopify.Session, id string) (*PlanView, error) {
	stored, err := s.repo.GetByUUID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	view := s.reconciler.ReconcileOne(ctx, session, *stored)
	return &view, nil
}

// UpdatePlan replaces the plan's name, selling plans and products wholesale.
// The payload is validated like create; partial payloads lose omitted fields.
func (s *Service) UpdatePlan(id string, input PlanInput) (*models.Plan, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	stored, err := s.repo.GetByUUID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	stored.Name = strings.TrimSpace(input.Name)
	stored.SellingPlans = models.SellingPlans(input.SellingPlans)
	stored.Products = normalizeProducts(input.Products)
	if err := s.repo.Update(stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// DeletePlan removes a plan permanently. Deleting an absent or already
// deleted id yields ErrPlanNotFound.
func (s *Service) DeletePlan(id string) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPlanNotFound
	}
	return err
}

// ListAllPlans returns all stored plans without reconciliation.
func (s *Service) ListAllPlans() ([]models.Plan, error) {
	return s.repo.GetAll()
}

// ListPlansForProduct returns the unreconciled plans whose products contain
// the given id; product-name resolution is display-path only.
func (s *Service) ListPlansForProduct(productID string) ([]models.Plan, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, newValidationError("product_id", "product id is required")
	}
	return s.repo.GetByProductID(productID)
}

func validateInput(input PlanInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return newValidationError("name", "plan name is required")
	}
	if len(input.SellingPlans) == 0 {
		return newValidationError("selling_plans", "at least one selling plan is required")
	}

	for _, sp := range input.SellingPlans {
		if strings.TrimSpace(sp.Name) == "" {
			return newValidationError("selling_plans.name", "selling plan name is required")
		}
		if len(sp.PriceAdjustments) == 0 {
			return newValidationError("selling_plans.price_adjustments", "at least one price adjustment is required")
		}
		for _, pa := range sp.PriceAdjustments {
			if normalizeAdjustmentType(pa.AdjustmentType) == "" {
				return newValidationError("selling_plans.price_adjustments.adjustment_type", "adjustment type must be percentage, amount or flat")
			}
		}
		if sp.DeliveryPolicy.IntervalCount <= 0 {
			return newValidationError("selling_plans.delivery_policy.interval_count", "interval count must be a positive integer")
		}
		if normalizeInterval(sp.DeliveryPolicy.Interval) == "" {
			return newValidationError("selling_plans.delivery_policy.interval", "interval must be day, week, month or year")
		}
	}
	return nil
}

func normalizeProducts(products []string) models.ProductIDs {
	out := make(models.ProductIDs, 0, len(products))
	for _, p := range products {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
