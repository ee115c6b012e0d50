// Package recommend composes the factor calculators, fee model, and platform
// ranking into the selling recommendations the UI renders. Within one call
// the factor order is fixed - material, size, condition, flaw, platform fit -
// because platform fit reads the earlier results as inputs.
package recommend

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/reselltools/pricewise/internal/factors"
	"github.com/reselltools/pricewise/internal/fees"
	"github.com/reselltools/pricewise/internal/model"
	"github.com/reselltools/pricewise/internal/platforms"
	"github.com/reselltools/pricewise/internal/pricing"
)

// ReferenceData is the slice of the reference-data loader the orchestrator
// needs. Satisfied by *refdata.Loader.
type ReferenceData interface {
	BrandMultiplier(ctx context.Context, brand string) (multiplier float64, tips string, ok bool)
	MaterialValueTier(ctx context.Context, material string) (tier string, ok bool)
}

// Recommender owns the orchestration. One per engine; stateless between
// calls apart from the injected reference data.
type Recommender struct {
	refdata ReferenceData
	log     zerolog.Logger
	now     func() time.Time
}

func New(ref ReferenceData, log zerolog.Logger) *Recommender {
	return &Recommender{refdata: ref, log: log, now: time.Now}
}

// WithClock pins the recommender's clock; the trend tables are seasonal.
func (r *Recommender) WithClock(now func() time.Time) *Recommender {
	r.now = now
	return r
}

// ValueBreakdown explains an enhanced resale value factor by factor.
type ValueBreakdown struct {
	CostBasis       float64
	BrandMultiplier float64
	BrandKnown      bool
	BrandTips       string
	Condition       factors.Result
	Era             factors.Result
	// Trend is advisory: reported so the UI can flag seasonal timing, but
	// not folded into the value.
	Trend factors.Result
}

// EnhancedValue is the brand/condition/era-adjusted resale value.
type EnhancedValue struct {
	Value     float64
	Breakdown ValueBreakdown
}

// PlatformOption is one ranked platform with its money figures at the
// suggested price.
type PlatformOption struct {
	Platform   string
	Name       string
	Score      float64
	Reasons    []string
	Fees       *fees.Breakdown
	Estimated  bool // fees came from the default estimate
	NetPayout  float64
	Profit     float64
	FeePercent float64
}

// ProfitEstimate is the top platform's figures, for quick display.
type ProfitEstimate struct {
	Platform  string
	Profit    float64
	NetPayout float64
}

// Recommendation is the orchestrator's terminal output. Transient: it is
// recomputed on demand and never persisted.
type Recommendation struct {
	SuggestedPrice float64
	Breakdown      ValueBreakdown
	Platforms      []PlatformOption
	ProfitEstimate *ProfitEstimate
	ConfigVersion  string
}

// EnhancedResaleValue computes cost basis x brand x condition x era, rounded
// to cents. Returns nil when the cost basis is missing or zero: an item with
// no known cost has nothing to base a suggestion on.
func (r *Recommender) EnhancedResaleValue(ctx context.Context, item *model.Item) *EnhancedValue {
	cost := item.CostBasis()
	if cost <= 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return nil
	}

	brandMult := pricing.DefaultBrandMultiplier
	brandKnown := false
	tips := ""
	if m, t, ok := r.refdata.BrandMultiplier(ctx, item.Brand); ok && m > 0 && !math.IsNaN(m) && !math.IsInf(m, 0) {
		brandMult = m
		brandKnown = true
		tips = t
	}

	cond := factors.ConditionMultiplier(item.Condition.Level)
	era := factors.EraBonus(item.Era)
	trend := r.trendFor(item)

	value := round2(cost * brandMult * cond.Multiplier * era.Multiplier)

	return &EnhancedValue{
		Value: value,
		Breakdown: ValueBreakdown{
			CostBasis:       cost,
			BrandMultiplier: brandMult,
			BrandKnown:      brandKnown,
			BrandTips:       tips,
			Condition:       cond,
			Era:             era,
			Trend:           trend,
		},
	}
}

// SellingRecommendations produces the full recommendation: suggested price,
// breakdown, ranked platforms with fees and profit, and the top-line profit
// estimate. Returns nil when the item cannot be priced.
func (r *Recommender) SellingRecommendations(ctx context.Context, item *model.Item) *Recommendation {
	ev := r.EnhancedResaleValue(ctx, item)
	if ev == nil {
		r.log.Debug().Str("brand", item.Brand).Msg("no cost basis, skipping recommendation")
		return nil
	}

	suggested := ev.Value
	ranked := platforms.RankPlatformsForItem(item, suggested, ev.Breakdown.BrandMultiplier)
	totalCost := item.TotalCost()

	options := make([]PlatformOption, 0, len(ranked))
	for _, c := range ranked {
		opt := r.platformOption(c, suggested, totalCost)
		options = append(options, opt)
	}

	var estimate *ProfitEstimate
	if len(options) > 0 {
		estimate = &ProfitEstimate{
			Platform:  options[0].Platform,
			Profit:    options[0].Profit,
			NetPayout: options[0].NetPayout,
		}
	}

	return &Recommendation{
		SuggestedPrice: suggested,
		Breakdown:      ev.Breakdown,
		Platforms:      options,
		ProfitEstimate: estimate,
		ConfigVersion:  pricing.ConfigVersion,
	}
}

// EstimatedReturn is the per-platform profit row used for table columns.
type EstimatedReturn struct {
	Platform   string
	Name       string
	NetPayout  float64
	Profit     float64
	FeePercent float64
	Estimated  bool
}

// EstimatedReturns computes net payout and profit per ranked platform at the
// enhanced resale value. Nil when the item cannot be priced; the UI renders
// a dash.
func (r *Recommender) EstimatedReturns(ctx context.Context, item *model.Item) []EstimatedReturn {
	ev := r.EnhancedResaleValue(ctx, item)
	if ev == nil {
		return nil
	}

	ranked := platforms.RankPlatformsForItem(item, ev.Value, ev.Breakdown.BrandMultiplier)
	totalCost := item.TotalCost()

	out := make([]EstimatedReturn, 0, len(ranked))
	for _, c := range ranked {
		opt := r.platformOption(c, ev.Value, totalCost)
		out = append(out, EstimatedReturn{
			Platform:   opt.Platform,
			Name:       opt.Name,
			NetPayout:  opt.NetPayout,
			Profit:     opt.Profit,
			FeePercent: opt.FeePercent,
			Estimated:  opt.Estimated,
		})
	}
	return out
}

func (r *Recommender) platformOption(c platforms.Candidate, price, totalCost float64) PlatformOption {
	fb := fees.Calculate(c.Platform, price)
	estimated := false
	if fb == nil {
		fb = fees.EstimateDefault(price)
		estimated = true
	}

	opt := PlatformOption{
		Platform:  c.Platform,
		Name:      fees.FormatPlatformName(c.Platform),
		Score:     c.Score,
		Reasons:   c.Reasons,
		Fees:      fb,
		Estimated: estimated,
	}
	if fb != nil {
		opt.NetPayout = fb.NetPayout
		opt.Profit = round2(fb.NetPayout - totalCost)
		opt.FeePercent = fb.FeePercent(price)
	}
	return opt
}

// AdjustedBreakdown mirrors every factor applied to a base price.
type AdjustedBreakdown struct {
	BasePrice      float64
	Material       factors.Result
	Size           factors.Result
	Condition      factors.Result
	Flaws          factors.FlawAdjustment
	PlatformFit    float64
	FitAdjustments []platforms.FitAdjustment
}

// AdjustedPrice is the interactive what-if result.
type AdjustedPrice struct {
	AdjustedPrice float64
	Breakdown     AdjustedBreakdown
}

// CalculateAdjustedPrice reprices a user-chosen base listing price (for
// example a comparable listing) through material x size x condition x flaw x
// platform fit, in that fixed order. With every factor neutral the base
// price comes back unchanged.
func (r *Recommender) CalculateAdjustedPrice(ctx context.Context, basePrice float64, item *model.Item, platformID string) AdjustedPrice {
	if basePrice <= 0 || math.IsNaN(basePrice) || math.IsInf(basePrice, 0) {
		return AdjustedPrice{Breakdown: AdjustedBreakdown{PlatformFit: 1.0}}
	}

	material := factors.MaterialMultiplier(ctx, r.refdata, item.MaterialParts())
	size := factors.SizeMultiplier(item)
	cond := factors.ConditionMultiplier(item.Condition.Level)
	flaws := factors.CalculateFlawAdjustment(item.Condition.Flaws)
	fit, fitAdj := platforms.PlatformFitModifier(item, platformID, platforms.FitFactors{
		Material: material,
		Size:     size,
	})

	adjusted := basePrice *
		material.Multiplier *
		size.Multiplier *
		cond.Multiplier *
		(1 + flaws.Adjustment) *
		fit

	return AdjustedPrice{
		AdjustedPrice: round2(adjusted),
		Breakdown: AdjustedBreakdown{
			BasePrice:      basePrice,
			Material:       material,
			Size:           size,
			Condition:      cond,
			Flaws:          flaws,
			PlatformFit:    fit,
			FitAdjustments: fitAdj,
		},
	}
}

func (r *Recommender) trendFor(item *model.Item) factors.Result {
	in := factors.TrendInput{
		Color: item.Color.Primary,
		Month: r.now().Month(),
	}
	if item.Trend != nil {
		in.Cut = item.Trend.Cut
		in.Style = item.Trend.Style
	}
	return factors.TrendMultiplier(in)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
