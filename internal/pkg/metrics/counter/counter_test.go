package counter

import "testing"

// Without a configured Redis client counting is a silent no-op; the
// storefront path must never fail because metrics are unavailable.
func TestCountersNoopWithoutCache(t *testing.T) {
	if err := AddPlanView(42); err != nil {
		t.Fatalf("AddPlanView: %v", err)
	}
	if err := FlushAll(); err != nil {
		t.Fatalf("FlushAll: %v", err)
	}
}
