// Package pricewise is the pricing and platform-recommendation engine for a
// secondhand-goods reseller. Given an inventory item's attributes it produces
// an estimated resale value with a factor-by-factor breakdown, a ranked list
// of resale platforms with per-platform fee and profit projections, and the
// fee math the rest of the application renders.
//
// The engine is request/response: every method completes synchronously and
// touches no shared mutable state beyond the memoized reference datasets.
package pricewise

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reselltools/pricewise/internal/cache"
	"github.com/reselltools/pricewise/internal/comps"
	"github.com/reselltools/pricewise/internal/fees"
	"github.com/reselltools/pricewise/internal/model"
	"github.com/reselltools/pricewise/internal/recommend"
	"github.com/reselltools/pricewise/internal/refdata"
	"github.com/reselltools/pricewise/internal/refresh"
)

// Re-exported types so callers can name the engine's inputs and outputs.
type (
	Item            = model.Item
	Recommendation  = recommend.Recommendation
	EnhancedValue   = recommend.EnhancedValue
	AdjustedPrice   = recommend.AdjustedPrice
	EstimatedReturn = recommend.EstimatedReturn
	PlatformOption  = recommend.PlatformOption
	FeeBreakdown    = fees.Breakdown
	CompsSummary    = comps.Summary
)

// Options configures an Engine. The zero value works: default dataset
// endpoints, no file cache, no comps client, no scheduled refresh.
type Options struct {
	Refdata refdata.Config
	// CachePath enables the file-backed dataset/comps cache.
	CachePath string
	// Comps enables the comparable-listings client.
	Comps *comps.Config
	// RefreshSchedule is a cron expression enabling scheduled dataset
	// reloads.
	RefreshSchedule string
	Logger          zerolog.Logger
}

// Engine is the public surface the UI layers call.
type Engine struct {
	loader  *refdata.Loader
	rec     *recommend.Recommender
	comps   *comps.Client
	refresh *refresh.Service
	log     zerolog.Logger
}

// New builds an engine. Reference data loads lazily on first use; call Warm
// to front-load it.
func New(opts Options) (*Engine, error) {
	log := opts.Logger

	var fileCache *cache.Cache
	if opts.CachePath != "" {
		c, err := cache.New(opts.CachePath)
		if err != nil {
			return nil, err
		}
		fileCache = c
	}

	refCfg := opts.Refdata
	if refCfg.Cache == nil {
		refCfg.Cache = fileCache
	}
	refCfg.Logger = log
	loader := refdata.NewLoader(refCfg)

	e := &Engine{
		loader: loader,
		rec:    recommend.New(loader, log),
		log:    log,
	}

	if opts.Comps != nil {
		compsCfg := *opts.Comps
		if compsCfg.Cache == nil {
			compsCfg.Cache = fileCache
		}
		compsCfg.Logger = log
		e.comps = comps.NewClient(compsCfg)
	}

	if opts.RefreshSchedule != "" {
		e.refresh = refresh.NewService(loader, refresh.Options{
			Schedule: opts.RefreshSchedule,
			Logger:   log,
		})
		if _, err := e.refresh.Start(); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Close stops the refresh scheduler if one is running.
func (e *Engine) Close() {
	if e.refresh != nil {
		e.refresh.Stop()
	}
}

// Warm loads both reference datasets up front.
func (e *Engine) Warm(ctx context.Context) {
	e.loader.Load(ctx)
}

// InvalidateReferenceData drops the memoized datasets; the next call
// re-fetches.
func (e *Engine) InvalidateReferenceData() {
	e.loader.Invalidate()
}

// GenerateSellingRecommendations produces the full recommendation for an
// item: suggested price, breakdown, top platforms with fees and profit, and
// a top-line profit estimate. Nil when the item has no cost basis.
func (e *Engine) GenerateSellingRecommendations(ctx context.Context, item *Item) *Recommendation {
	return e.rec.SellingRecommendations(ctx, item)
}

// CalculateEnhancedResaleValue computes the brand/condition/era-adjusted
// value with its breakdown. Nil when the item has no cost basis.
func (e *Engine) CalculateEnhancedResaleValue(ctx context.Context, item *Item) *EnhancedValue {
	return e.rec.EnhancedResaleValue(ctx, item)
}

// CalculateAdjustedPrice reprices a user-chosen base listing price through
// the factor stack for one platform.
func (e *Engine) CalculateAdjustedPrice(ctx context.Context, basePrice float64, item *Item, platformID string) AdjustedPrice {
	return e.rec.CalculateAdjustedPrice(ctx, basePrice, item, platformID)
}

// CalculateEstimatedReturns computes per-platform profit rows for table
// columns. Nil when the item cannot be priced.
func (e *Engine) CalculateEstimatedReturns(ctx context.Context, item *Item) []EstimatedReturn {
	return e.rec.EstimatedReturns(ctx, item)
}

// CalculatePlatformFees computes the fee breakdown for selling at price on
// the given platform. Nil for an unknown platform or non-positive price;
// use EstimatePlatformFees when a figure is needed regardless.
func (e *Engine) CalculatePlatformFees(platformID string, price float64) *FeeBreakdown {
	return fees.Calculate(platformID, price)
}

// EstimatePlatformFees is the documented flat-percentage fallback.
func (e *Engine) EstimatePlatformFees(price float64) *FeeBreakdown {
	return fees.EstimateDefault(price)
}

// FormatPlatformName returns a platform's display name.
func (e *Engine) FormatPlatformName(platformID string) string {
	return fees.FormatPlatformName(platformID)
}

// ComparableBasePrice fetches comparable sold listings and suggests a base
// listing price. Requires the comps client to be configured.
func (e *Engine) ComparableBasePrice(ctx context.Context, item *Item) (*CompsSummary, error) {
	if e.comps == nil {
		return nil, ErrCompsDisabled
	}
	return e.comps.CompsForItem(ctx, item)
}
