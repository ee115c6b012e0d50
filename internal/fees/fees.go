// Package fees models each resale platform's published fee schedule:
// commission, payment processing, and listing fees, and the net payout left
// after all of them. Monetary outputs are rounded half-up to cents at the
// final step only; intermediate math stays full precision.
package fees

import (
	"fmt"
	"math"
	"strings"

	"github.com/reselltools/pricewise/internal/pricing"
)

// Schedule is one platform's published fee structure.
type Schedule struct {
	DisplayName    string
	CommissionPct  float64 // fraction of sale price
	CommissionFlat float64 // flat per-order commission component
	CommissionMin  float64 // commission floor, if the platform has one
	PaymentPct     float64
	PaymentFlat    float64
	ListingFee     float64
	// Some platforms switch to a flat commission under a price threshold
	// (Poshmark: $2.95 under $15).
	FlatUnder    float64
	FlatUnderFee float64
}

// Breakdown is the result of a fee calculation for one platform at one sale
// price.
type Breakdown struct {
	Commission        float64
	PaymentProcessing float64
	ListingFee        float64
	TotalFees         float64
	NetPayout         float64
	Labels            map[string]string
}

// PlatformIDs lists every modeled platform in display order.
var PlatformIDs = []string{
	"ebay", "poshmark", "mercari", "depop", "etsy",
	"grailed", "therealreal", "vestiaire", "vinted", "facebook",
}

var schedules = map[string]Schedule{
	"ebay":        {DisplayName: "eBay", CommissionPct: 0.1325, CommissionFlat: 0.30},
	"poshmark":    {DisplayName: "Poshmark", CommissionPct: 0.20, FlatUnder: 15.00, FlatUnderFee: 2.95},
	"mercari":     {DisplayName: "Mercari", CommissionPct: 0.10, PaymentPct: 0.029, PaymentFlat: 0.50},
	"depop":       {DisplayName: "Depop", CommissionPct: 0.10, PaymentPct: 0.033, PaymentFlat: 0.45},
	"etsy":        {DisplayName: "Etsy", CommissionPct: 0.065, PaymentPct: 0.03, PaymentFlat: 0.25, ListingFee: 0.20},
	"grailed":     {DisplayName: "Grailed", CommissionPct: 0.09, PaymentPct: 0.0349},
	"therealreal": {DisplayName: "The RealReal", CommissionPct: 0.30},
	"vestiaire":   {DisplayName: "Vestiaire Collective", CommissionPct: 0.15, PaymentPct: 0.03},
	"vinted":      {DisplayName: "Vinted"}, // buyer pays protection fee
	"facebook":    {DisplayName: "Facebook Marketplace", CommissionPct: 0.05, CommissionMin: 0.40},
}

// ScheduleFor returns a platform's fee schedule.
func ScheduleFor(platformID string) (Schedule, bool) {
	s, ok := schedules[normalizeID(platformID)]
	return s, ok
}

// Calculate computes the fee breakdown for selling at salePrice on the given
// platform. Returns nil for an unknown platform or a non-positive price;
// callers fall back to EstimateDefault rather than doing arithmetic on nil.
func Calculate(platformID string, salePrice float64) *Breakdown {
	if salePrice <= 0 || math.IsNaN(salePrice) || math.IsInf(salePrice, 0) {
		return nil
	}
	s, ok := schedules[normalizeID(platformID)]
	if !ok {
		return nil
	}

	commission := s.CommissionPct*salePrice + s.CommissionFlat
	commissionLabel := fmt.Sprintf("%s commission (%.2f%%)", s.DisplayName, s.CommissionPct*100)
	if s.FlatUnder > 0 && salePrice < s.FlatUnder {
		commission = s.FlatUnderFee
		commissionLabel = fmt.Sprintf("%s flat fee (under $%.0f)", s.DisplayName, s.FlatUnder)
	}
	if commission < s.CommissionMin {
		commission = s.CommissionMin
	}

	payment := s.PaymentPct*salePrice + s.PaymentFlat
	listing := s.ListingFee

	// Each monetary component is rounded once, at the end; the total is the
	// sum of the rounded components so the breakdown always adds up and
	// NetPayout is exactly salePrice - TotalFees.
	commission = roundCents(commission)
	payment = roundCents(payment)
	listing = roundCents(listing)
	total := roundCents(commission + payment + listing)

	b := &Breakdown{
		Commission:        commission,
		PaymentProcessing: payment,
		ListingFee:        listing,
		TotalFees:         total,
		NetPayout:         roundCents(salePrice - total),
		Labels: map[string]string{
			"commission": commissionLabel,
			"payment":    "Payment processing",
			"listing":    "Listing fee",
		},
	}
	return b
}

// EstimateDefault is the documented fallback when no schedule is available:
// a flat percentage of the sale price.
func EstimateDefault(salePrice float64) *Breakdown {
	if salePrice <= 0 || math.IsNaN(salePrice) || math.IsInf(salePrice, 0) {
		return nil
	}
	total := roundCents(salePrice * pricing.DefaultFeePercent)
	return &Breakdown{
		Commission: total,
		TotalFees:  total,
		NetPayout:  roundCents(salePrice - total),
		Labels: map[string]string{
			"commission": fmt.Sprintf("Estimated fees (%.0f%%)", pricing.DefaultFeePercent*100),
		},
	}
}

// FeePercent reports total fees as a fraction of the sale price.
func (b *Breakdown) FeePercent(salePrice float64) float64 {
	if b == nil || salePrice <= 0 {
		return pricing.DefaultFeePercent
	}
	return b.TotalFees / salePrice
}

// FormatPlatformName returns the display name for a platform ID. Unknown IDs
// are title-cased so the UI never renders a raw identifier.
func FormatPlatformName(platformID string) string {
	if s, ok := schedules[normalizeID(platformID)]; ok {
		return s.DisplayName
	}
	id := strings.TrimSpace(platformID)
	if id == "" {
		return "Unknown"
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

func normalizeID(platformID string) string {
	return strings.ToLower(strings.TrimSpace(platformID))
}

// roundCents rounds half-up to two decimals. math.Round rounds half away
// from zero, which matches half-up for the non-negative money we handle.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
