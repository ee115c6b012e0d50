package recommend

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/reselltools/pricewise/internal/model"
	"github.com/reselltools/pricewise/internal/pricing"
	"github.com/reselltools/pricewise/internal/testutil"
)

// stubRefData serves brand multipliers and material tiers from fixed maps.
type stubRefData struct {
	brands    map[string]float64
	materials map[string]string
}

func (s *stubRefData) BrandMultiplier(_ context.Context, brand string) (float64, string, bool) {
	m, ok := s.brands[brand]
	return m, "", ok
}

func (s *stubRefData) MaterialValueTier(_ context.Context, material string) (string, bool) {
	t, ok := s.materials[material]
	return t, ok
}

func newTestRecommender(ref *stubRefData) *Recommender {
	if ref == nil {
		ref = &stubRefData{}
	}
	r := New(ref, zerolog.Nop())
	// Pin the clock so the seasonal color tables don't shift under the tests.
	return r.WithClock(func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	})
}

func TestEnhancedResaleValue_UnknownBrandDefault(t *testing.T) {
	r := newTestRecommender(nil)

	// 27.50 cost basis x 1.5 default brand x 0.95 excellent x 1.0
	// contemporary = 39.1875, rounded to 39.19.
	ev := r.EnhancedResaleValue(context.Background(), testutil.NewItem())
	if ev == nil {
		t.Fatal("Expected a value, got nil")
	}
	if ev.Value != 39.19 {
		t.Errorf("Expected 39.19, got %.2f", ev.Value)
	}
	if ev.Breakdown.BrandKnown {
		t.Error("Expected brand to be unknown")
	}
	if ev.Breakdown.BrandMultiplier != pricing.DefaultBrandMultiplier {
		t.Errorf("Expected default brand multiplier, got %.2f", ev.Breakdown.BrandMultiplier)
	}
}

func TestEnhancedResaleValue_KnownBrand(t *testing.T) {
	r := newTestRecommender(&stubRefData{brands: map[string]float64{"testbrand": 2.0}})

	ev := r.EnhancedResaleValue(context.Background(), testutil.NewItem())
	if ev == nil {
		t.Fatal("Expected a value, got nil")
	}
	// 27.50 x 2.0 x 0.95 = 52.25
	if ev.Value != 52.25 {
		t.Errorf("Expected 52.25, got %.2f", ev.Value)
	}
	if !ev.Breakdown.BrandKnown {
		t.Error("Expected brand to be known")
	}
}

func TestEnhancedResaleValue_NoCostBasis(t *testing.T) {
	r := newTestRecommender(nil)

	item := testutil.NewItem()
	item.Acquisition = model.Acquisition{}
	if ev := r.EnhancedResaleValue(context.Background(), item); ev != nil {
		t.Errorf("Expected nil for zero cost basis, got %.2f", ev.Value)
	}
}

func TestEnhancedResaleValue_TrendIsAdvisoryOnly(t *testing.T) {
	r := newTestRecommender(nil)

	// Summer black is declining; the trend multiplier is below 1.0 but the
	// value must not move.
	item := testutil.NewItem()
	ev := r.EnhancedResaleValue(context.Background(), item)
	if ev == nil {
		t.Fatal("Expected a value, got nil")
	}
	if ev.Breakdown.Trend.Multiplier >= 1.0 {
		t.Errorf("Expected declining trend for black in June, got %.4f", ev.Breakdown.Trend.Multiplier)
	}
	if ev.Value != 39.19 {
		t.Errorf("Trend leaked into the value: expected 39.19, got %.2f", ev.Value)
	}
}

func TestEnhancedResaleValue_EraBonusApplied(t *testing.T) {
	r := newTestRecommender(nil)

	item := testutil.NewItem()
	item.Era = "1970s"
	ev := r.EnhancedResaleValue(context.Background(), item)
	// 27.50 x 1.5 x 0.95 x 1.20 = 47.025, rounds to 47.03 (half-up).
	if ev.Value != 47.03 {
		t.Errorf("Expected 47.03, got %.2f", ev.Value)
	}
}

func TestSellingRecommendations_FullShape(t *testing.T) {
	r := newTestRecommender(nil)

	rec := r.SellingRecommendations(context.Background(), testutil.NewItem())
	if rec == nil {
		t.Fatal("Expected a recommendation, got nil")
	}
	if rec.SuggestedPrice != 39.19 {
		t.Errorf("Expected suggested price 39.19, got %.2f", rec.SuggestedPrice)
	}
	if len(rec.Platforms) == 0 {
		t.Fatal("Expected at least one platform")
	}
	if rec.ConfigVersion != pricing.ConfigVersion {
		t.Errorf("Expected config version %q, got %q", pricing.ConfigVersion, rec.ConfigVersion)
	}
	if rec.ProfitEstimate == nil {
		t.Fatal("Expected a profit estimate")
	}
	if rec.ProfitEstimate.Platform != rec.Platforms[0].Platform {
		t.Error("Profit estimate should mirror the top platform")
	}

	for _, p := range rec.Platforms {
		if p.Fees == nil {
			t.Errorf("%s: expected a fee breakdown", p.Platform)
			continue
		}
		wantNet := round2(rec.SuggestedPrice - p.Fees.TotalFees)
		if p.NetPayout != wantNet {
			t.Errorf("%s: net payout %.2f != price - fees %.2f", p.Platform, p.NetPayout, wantNet)
		}
		wantProfit := round2(p.NetPayout - 27.50)
		if p.Profit != wantProfit {
			t.Errorf("%s: profit %.2f, expected %.2f", p.Platform, p.Profit, wantProfit)
		}
	}
}

func TestSellingRecommendations_NilWhenUnpriceable(t *testing.T) {
	r := newTestRecommender(nil)

	item := testutil.NewItem()
	item.Acquisition = model.Acquisition{}
	if rec := r.SellingRecommendations(context.Background(), item); rec != nil {
		t.Error("Expected nil recommendation for unpriceable item")
	}
}

func TestSellingRecommendations_CompletedRepairsInProfit(t *testing.T) {
	r := newTestRecommender(nil)

	item := testutil.NewItem()
	item.Repairs = []model.Repair{
		{Description: "new zipper", Cost: 5.00, Completed: true},
		{Description: "hem", Cost: 3.00, Completed: false},
	}

	rec := r.SellingRecommendations(context.Background(), item)
	if rec == nil {
		t.Fatal("Expected a recommendation")
	}
	// Only the completed repair counts: total cost 32.50.
	top := rec.Platforms[0]
	want := round2(top.NetPayout - 32.50)
	if top.Profit != want {
		t.Errorf("Expected profit %.2f, got %.2f", want, top.Profit)
	}
}

func TestEstimatedReturns(t *testing.T) {
	r := newTestRecommender(nil)

	returns := r.EstimatedReturns(context.Background(), testutil.NewItem())
	if len(returns) == 0 {
		t.Fatal("Expected returns, got none")
	}
	for _, ret := range returns {
		if ret.Name == "" {
			t.Errorf("%s: expected a display name", ret.Platform)
		}
		if ret.FeePercent < 0 || ret.FeePercent > 0.5 {
			t.Errorf("%s: implausible fee percent %.4f", ret.Platform, ret.FeePercent)
		}
	}

	item := testutil.NewItem()
	item.Acquisition = model.Acquisition{}
	if got := r.EstimatedReturns(context.Background(), item); got != nil {
		t.Error("Expected nil returns for unpriceable item")
	}
}

func TestCalculateAdjustedPrice_NeutralFactorsIdentity(t *testing.T) {
	r := newTestRecommender(nil)

	// The condition table deliberately has no 1.0 entry; park one there for
	// the identity check since the tables are plain data.
	pricing.ConditionMultipliers["mint"] = 1.0
	defer delete(pricing.ConditionMultipliers, "mint")

	item := testutil.NewItem()
	item.Condition.Level = "mint"

	res := r.CalculateAdjustedPrice(context.Background(), 50.00, item, "ebay")
	if res.AdjustedPrice != 50.00 {
		t.Errorf("Expected base price unchanged, got %.2f", res.AdjustedPrice)
	}
	if res.Breakdown.PlatformFit != 1.0 {
		t.Errorf("Expected neutral platform fit, got %.4f", res.Breakdown.PlatformFit)
	}
}

func TestCalculateAdjustedPrice_FullStack(t *testing.T) {
	r := newTestRecommender(&stubRefData{materials: map[string]string{"silk": "highest"}})

	item := testutil.WithMaterials(testutil.NewItem(), model.MaterialPart{Name: "silk", Percent: 100})
	item.Condition.Flaws = []model.Flaw{{Type: "small stain", Severity: "minor"}}

	res := r.CalculateAdjustedPrice(context.Background(), 100.00, item, "poshmark")

	// material 1.25, size M standard 1.00, excellent 0.95, flaws -0.02,
	// poshmark fit: material compression delta 1.125/1.25-1 = -0.10.
	want := round2(100.00 * 1.25 * 1.00 * 0.95 * 0.98 * 0.90)
	if res.AdjustedPrice != want {
		t.Errorf("Expected %.2f, got %.2f", want, res.AdjustedPrice)
	}
	if res.Breakdown.Material.Tier != "highest" {
		t.Errorf("Expected material tier 'highest', got %q", res.Breakdown.Material.Tier)
	}
	if len(res.Breakdown.FitAdjustments) != 1 {
		t.Errorf("Expected one recorded fit adjustment, got %d", len(res.Breakdown.FitAdjustments))
	}
	if math.Abs(res.Breakdown.Flaws.Adjustment-(-0.02)) > 1e-9 {
		t.Errorf("Expected flaw adjustment -0.02, got %.4f", res.Breakdown.Flaws.Adjustment)
	}
}

func TestCalculateAdjustedPrice_InvalidBase(t *testing.T) {
	r := newTestRecommender(nil)

	for _, base := range []float64{0, -10, math.NaN()} {
		res := r.CalculateAdjustedPrice(context.Background(), base, testutil.NewItem(), "ebay")
		if res.AdjustedPrice != 0 {
			t.Errorf("base %.2f: expected zero result, got %.2f", base, res.AdjustedPrice)
		}
		if res.Breakdown.PlatformFit != 1.0 {
			t.Errorf("base %.2f: expected neutral fit in zero result", base)
		}
	}
}
