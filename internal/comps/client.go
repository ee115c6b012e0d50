// Package comps fetches comparable sold listings for an item and distills
// them into a defensible base listing price. The what-if repricer takes that
// base price instead of the algorithmic suggestion when the seller wants to
// anchor on the market.
package comps

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/brotli"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/reselltools/pricewise/internal/cache"
	"github.com/reselltools/pricewise/internal/model"
	"github.com/reselltools/pricewise/internal/ratelimit"
)

const (
	DefaultBaseURL = "https://comps.reselltools.dev/search"

	defaultTimeout    = 20 * time.Second
	defaultRatePerMin = 12
	defaultCacheTTL   = 6 * time.Hour
	defaultBulkPerSec = 2
	userAgent         = "pricewise/1.0"
)

// Config configures the comps client. Zero values fall back to defaults.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerMin int
	Cache      *cache.Cache
	CacheTTL   time.Duration
	BulkPerSec rate.Limit
	Logger     zerolog.Logger
}

// Listing is one comparable sold listing.
type Listing struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
	URL   string  `json:"url"`
}

// Client scrapes the comps search endpoint.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *ratelimit.Limiter
	bulk    *rate.Limiter
	log     zerolog.Logger
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RatePerMin == 0 {
		cfg.RatePerMin = defaultRatePerMin
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.BulkPerSec == 0 {
		cfg.BulkPerSec = defaultBulkPerSec
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: ratelimit.NewLimiter(cfg.RatePerMin, time.Minute),
		bulk:    rate.NewLimiter(cfg.BulkPerSec, 1),
		log:     cfg.Logger,
	}
}

// CompsForItem fetches and summarizes comparable sold listings for an item.
func (c *Client) CompsForItem(ctx context.Context, item *model.Item) (*Summary, error) {
	query := buildQuery(item)
	if query == "" {
		return nil, fmt.Errorf("comps: item has no brand or category to search on")
	}

	key := cache.CompsKey(item.Brand, item.Category.Primary, query)
	if c.cfg.Cache != nil {
		var cached Summary
		if found, _ := c.cfg.Cache.Get(key, &cached); found {
			return &cached, nil
		}
	}

	if err := c.limiter.WaitContext(ctx); err != nil {
		return nil, err
	}

	listings, err := c.search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("comps search %q: %w", query, err)
	}

	summary := Summarize(query, listings)

	if c.cfg.Cache != nil {
		if err := c.cfg.Cache.Put(key, summary, c.cfg.CacheTTL); err != nil {
			c.log.Debug().Err(err).Msg("comps cache write failed")
		}
	}
	return summary, nil
}

// BulkComps fetches comps for a batch of items, rate limited so table
// renders don't hammer the endpoint. Failed items are skipped and logged.
func (c *Client) BulkComps(ctx context.Context, items []*model.Item) map[string]*Summary {
	out := make(map[string]*Summary, len(items))
	for _, item := range items {
		if err := c.bulk.Wait(ctx); err != nil {
			break
		}
		s, err := c.CompsForItem(ctx, item)
		if err != nil {
			c.log.Warn().Err(err).Str("brand", item.Brand).Msg("comps lookup failed")
			continue
		}
		out[buildQuery(item)] = s
	}
	return out
}

func (c *Client) search(ctx context.Context, query string) ([]Listing, error) {
	u := fmt.Sprintf("%s?q=%s&status=sold", c.cfg.BaseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Accept-Encoding", "br, gzip")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, err
	}
	return parseListings(body)
}

// decodeBody handles brotli and gzip encoded responses.
func decodeBody(resp *http.Response) (io.Reader, error) {
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "br":
		return brotli.NewReader(resp.Body), nil
	case "gzip":
		r, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return r, nil
	default:
		return resp.Body, nil
	}
}

// parseListings pulls sold listings out of the search results page.
func parseListings(body io.Reader) ([]Listing, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}

	var listings []Listing
	doc.Find("li.listing").Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find(".listing-title").Text())
		price, ok := parsePrice(s.Find(".listing-price").Text())
		if title == "" || !ok {
			return
		}
		href, _ := s.Find("a").First().Attr("href")
		listings = append(listings, Listing{Title: title, Price: price, URL: href})
	})
	return listings, nil
}

// parsePrice handles "$1,234.56" style price text.
func parsePrice(text string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, text)
	if cleaned == "" {
		return 0, false
	}
	p, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || p <= 0 {
		return 0, false
	}
	return p, true
}

// buildQuery assembles the search query from brand, category, and era.
func buildQuery(item *model.Item) string {
	parts := make([]string, 0, 3)
	if b := strings.TrimSpace(item.Brand); b != "" {
		parts = append(parts, b)
	}
	if cat := strings.TrimSpace(item.Category.Secondary); cat != "" {
		parts = append(parts, cat)
	} else if cat := strings.TrimSpace(item.Category.Primary); cat != "" {
		parts = append(parts, cat)
	}
	if era := strings.TrimSpace(item.Era); era != "" && era != "contemporary" {
		parts = append(parts, strings.ReplaceAll(era, "_", " "))
	}
	return strings.Join(parts, " ")
}
