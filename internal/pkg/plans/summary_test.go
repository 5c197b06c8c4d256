package plans

import (
	"testing"

	"github.com/ranjeetgautam/SubStack/app/models"
)

func TestNormalizeAdjustmentType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "percentage", want: "percentage"},
		{in: "PERCENTAGE", want: "percentage"},
		{in: " amount ", want: "amount"},
		{in: "flat", want: "flat"},
		{in: "coupon", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := normalizeAdjustmentType(tt.in); got != tt.want {
			t.Fatalf("normalizeAdjustmentType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeInterval(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "week", want: "week"},
		{in: "weeks", want: "week"},
		{in: "Days", want: "day"},
		{in: "month", want: "month"},
		{in: "years", want: "year"},
		{in: "fortnight", want: ""},
	}

	for _, tt := range tests {
		if got := normalizeInterval(tt.in); got != tt.want {
			t.Fatalf("normalizeInterval(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCadence(t *testing.T) {
	if got := cadence(models.DeliveryPolicy{Interval: "weeks", IntervalCount: 4}); got != "4 weeks" {
		t.Fatalf("cadence = %q, want %q", got, "4 weeks")
	}
	if got := cadence(models.DeliveryPolicy{Interval: "month", IntervalCount: 1}); got != "1 month" {
		t.Fatalf("cadence = %q, want %q", got, "1 month")
	}
	if got := cadence(models.DeliveryPolicy{Interval: "sometimes", IntervalCount: 2}); got != "" {
		t.Fatalf("expected empty cadence for unknown interval, got %q", got)
	}
}

func TestDeriveSummaryReadsFirstSellingPlanOnly(t *testing.T) {
	plan := &models.Plan{
		Name: "Subscribe & Save",
		SellingPlans: models.SellingPlans{
			{
				Name: "Monthly",
				PriceAdjustments: []models.PriceAdjustment{
					{AdjustmentType: "percentage", Value: 10},
					{AdjustmentType: "amount", Value: 99},
				},
				DeliveryPolicy: models.DeliveryPolicy{Interval: "weeks", IntervalCount: 4},
			},
			{
				Name: "Yearly",
				PriceAdjustments: []models.PriceAdjustment{
					{AdjustmentType: "flat", Value: 80},
				},
				DeliveryPolicy: models.DeliveryPolicy{Interval: "years", IntervalCount: 1},
			},
		},
	}

	summary := DeriveSummary(plan)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if summary.SellingPlanName != "Monthly" {
		t.Fatalf("summary selling plan = %q, want %q", summary.SellingPlanName, "Monthly")
	}
	if summary.DiscountType != "percentage" || summary.DiscountValue != 10 {
		t.Fatalf("summary discount = %s/%v, want percentage/10", summary.DiscountType, summary.DiscountValue)
	}
	if summary.Cadence != "4 weeks" {
		t.Fatalf("summary cadence = %q, want %q", summary.Cadence, "4 weeks")
	}
}

func TestDeriveSummaryEmpty(t *testing.T) {
	if DeriveSummary(nil) != nil {
		t.Fatal("expected nil summary for nil plan")
	}
	if DeriveSummary(&models.Plan{Name: "empty"}) != nil {
		t.Fatal("expected nil summary for plan without selling plans")
	}
}
