// Package refdata loads and indexes the brand-multiplier and material-tier
// reference datasets. Lookups are memoized for the life of the loader;
// concurrent first-time callers share a single in-flight fetch. A fetch or
// parse failure degrades to an empty lookup - every subsequent lookup misses
// and the calculators treat the miss as "no signal".
package refdata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/reselltools/pricewise/internal/cache"
)

const (
	DefaultBrandsURL    = "https://data.reselltools.dev/datasets/brand-multipliers.json"
	DefaultMaterialsURL = "https://data.reselltools.dev/datasets/material-tiers.json"

	defaultTimeout  = 15 * time.Second
	defaultCacheTTL = 24 * time.Hour
	maxFetchRetries = 3
)

// Config configures a Loader. Zero values fall back to defaults; Cache is
// optional.
type Config struct {
	BrandsURL    string
	MaterialsURL string
	Timeout      time.Duration
	Cache        *cache.Cache
	CacheTTL     time.Duration
	Logger       zerolog.Logger
}

// Loader owns the reference-data lookups. One instance per process; hand it
// to the engine rather than reaching for globals so tests can run isolated
// loaders against fixture servers.
type Loader struct {
	cfg    Config
	client *resty.Client
	log    zerolog.Logger

	mu            sync.Mutex
	brands        *BrandLookup
	brandsBusy    chan struct{}
	materials     *MaterialLookup
	materialsBusy chan struct{}
}

func NewLoader(cfg Config) *Loader {
	if cfg.BrandsURL == "" {
		cfg.BrandsURL = DefaultBrandsURL
	}
	if cfg.MaterialsURL == "" {
		cfg.MaterialsURL = DefaultMaterialsURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Loader{
		cfg:    cfg,
		client: client,
		log:    cfg.Logger,
	}
}

// Brands returns the brand lookup, fetching it on first use. Never nil: a
// failed load yields an empty lookup.
func (l *Loader) Brands(ctx context.Context) *BrandLookup {
	l.mu.Lock()
	for {
		if l.brands != nil {
			lk := l.brands
			l.mu.Unlock()
			return lk
		}
		if l.brandsBusy == nil {
			done := make(chan struct{})
			l.brandsBusy = done
			l.mu.Unlock()

			lk := l.fetchBrands(ctx)

			l.mu.Lock()
			l.brands = lk
			l.brandsBusy = nil
			l.mu.Unlock()
			close(done)
			return lk
		}
		// Another caller is already fetching; wait for it.
		busy := l.brandsBusy
		l.mu.Unlock()
		select {
		case <-busy:
		case <-ctx.Done():
			return newBrandLookup()
		}
		l.mu.Lock()
	}
}

// Materials returns the material lookup, fetching it on first use. Never
// nil.
func (l *Loader) Materials(ctx context.Context) *MaterialLookup {
	l.mu.Lock()
	for {
		if l.materials != nil {
			lk := l.materials
			l.mu.Unlock()
			return lk
		}
		if l.materialsBusy == nil {
			done := make(chan struct{})
			l.materialsBusy = done
			l.mu.Unlock()

			lk := l.fetchMaterials(ctx)

			l.mu.Lock()
			l.materials = lk
			l.materialsBusy = nil
			l.mu.Unlock()
			close(done)
			return lk
		}
		busy := l.materialsBusy
		l.mu.Unlock()
		select {
		case <-busy:
		case <-ctx.Done():
			return newMaterialLookup()
		}
		l.mu.Lock()
	}
}

// Load warms both lookups.
func (l *Loader) Load(ctx context.Context) {
	l.Brands(ctx)
	l.Materials(ctx)
}

// Invalidate drops both lookups so the next call re-fetches. An in-flight
// fetch finishes and is then discarded on its next use.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.brands = nil
	l.materials = nil
	l.mu.Unlock()
}

// BrandMultiplier resolves a brand's multiplier and seller tips. ok is false
// when the dataset has no entry; callers default to neutral.
func (l *Loader) BrandMultiplier(ctx context.Context, brand string) (multiplier float64, tips string, ok bool) {
	e, ok := l.Brands(ctx).Get(brand)
	if !ok {
		return 0, "", false
	}
	return e.Multiplier, e.Tips, true
}

// MaterialValueTier resolves a material's value tier.
func (l *Loader) MaterialValueTier(ctx context.Context, material string) (tier string, ok bool) {
	e, ok := l.Materials(ctx).Get(material)
	if !ok {
		return "", false
	}
	return e.ValueTier, true
}

func (l *Loader) fetchBrands(ctx context.Context) *BrandLookup {
	data, err := l.fetchDataset(ctx, l.cfg.BrandsURL, cache.BrandsKey())
	if err != nil {
		l.log.Warn().Err(err).Msg("brand dataset unavailable, lookups will miss")
		return newBrandLookup()
	}
	lk, err := ParseBrands(data)
	if err != nil {
		l.log.Warn().Err(err).Msg("brand dataset malformed, lookups will miss")
		return newBrandLookup()
	}
	l.log.Debug().Int("entries", lk.Len()).Msg("brand dataset loaded")
	return lk
}

func (l *Loader) fetchMaterials(ctx context.Context) *MaterialLookup {
	data, err := l.fetchDataset(ctx, l.cfg.MaterialsURL, cache.MaterialsKey())
	if err != nil {
		l.log.Warn().Err(err).Msg("material dataset unavailable, lookups will miss")
		return newMaterialLookup()
	}
	lk, err := ParseMaterials(data)
	if err != nil {
		l.log.Warn().Err(err).Msg("material dataset malformed, lookups will miss")
		return newMaterialLookup()
	}
	l.log.Debug().Int("entries", lk.Len()).Msg("material dataset loaded")
	return lk
}

// fetchDataset pulls a dataset document, preferring the file cache, with
// exponential backoff on the network path.
func (l *Loader) fetchDataset(ctx context.Context, url, cacheKey string) ([]byte, error) {
	if l.cfg.Cache != nil {
		var cached []byte
		if found, err := l.cfg.Cache.Get(cacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	var body []byte
	op := func() error {
		resp, err := l.client.R().SetContext(ctx).Get(url)
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("fetch dataset %s: status %d", url, resp.StatusCode())
		}
		body = resp.Body()
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}

	if l.cfg.Cache != nil {
		if err := l.cfg.Cache.Put(cacheKey, body, l.cfg.CacheTTL); err != nil {
			l.log.Debug().Err(err).Str("key", cacheKey).Msg("dataset cache write failed")
		}
	}
	return body, nil
}
