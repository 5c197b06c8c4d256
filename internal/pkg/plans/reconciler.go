package plans

import (
	"context"
	"sync"
	"time"

	"github.com/ranjeetgautam/SubStack/app/models"
	"github.com/ranjeetgautam/SubStack/internal/pkg/shopify"
)

const defaultLookupTimeout = 3 * time.Second

// Reconciler joins stored plans with live product titles from the catalog.
// Lookups within one plan fan out concurrently and are bounded by a
// per-lookup timeout, so a plan read costs one slow lookup at worst.
type Reconciler struct {
	resolver      ProductResolver
	lookupTimeout time.Duration
}

func NewReconciler(resolver ProductResolver) *Reconciler {
	return &Reconciler{
		resolver:      resolver,
		lookupTimeout: defaultLookupTimeout,
	}
}

// ReconcileOne builds the read model for a single plan. The product_names
// ordering always matches the plan's products ordering, regardless of which
// lookup finishes first. Resolution failures are absorbed by the resolver,
// so this method cannot fail.
func (r *Reconciler) ReconcileOne(ctx context.Context, session *shopify.Session, plan models.Plan) PlanView {
	resolved := make([]ResolvedProduct, len(plan.Products))

	var wg sync.WaitGroup
	for i, productID := range plan.Products {
		wg.Add(1)
		go func(i int, productID string) {
			defer wg.Done()
			lookupCtx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
			defer cancel()
			resolved[i] = r.resolver.Resolve(lookupCtx, session, productID)
		}(i, productID)
	}
	wg.Wait()

	return PlanView{
		Plan:         plan,
		ProductNames: resolved,
		Summary:      DeriveSummary(&plan),
	}
}

// ReconcileMany reconciles each plan independently; one plan's dangling
// product references never block or fail another plan. Output order matches
// input order.
func (r *Reconciler) ReconcileMany(ctx context.Context, session *shopify.Session, plans []models.Plan) []PlanView {
	views := make([]PlanView, len(plans))
	for i, plan := range plans {
		views[i] = r.ReconcileOne(ctx, session, plan)
	}
	return views
}
