// Package platforms scores resale platforms for an item and applies
// platform-specific demographic adjustments to the computed factor stack.
package platforms

import (
	"sort"
	"strings"

	"github.com/reselltools/pricewise/internal/factors"
	"github.com/reselltools/pricewise/internal/model"
	"github.com/reselltools/pricewise/internal/pricing"
)

// Candidate is one ranked platform with the human-readable reasons for its
// score, in the order the bonuses were applied.
type Candidate struct {
	Platform string
	Score    float64
	Reasons  []string
}

// FallbackPlatform is always present in the candidate set, even at zero
// score, so a ranking never comes back empty.
const FallbackPlatform = "ebay"

const maxRanked = 3

// RankPlatformsForItem scores the fixed platform set with additive
// heuristics: brand-tier banding, vintage status, category bonuses,
// menswear and streetwear detection, and price-bracket shifts. Returns the
// top 3 by score, descending, ties broken by first-bonus order.
func RankPlatformsForItem(item *model.Item, suggestedPrice, brandMultiplier float64) []Candidate {
	b := newScoreboard()
	b.add(FallbackPlatform, 0, "")

	// Brand tier banding.
	switch {
	case brandMultiplier >= pricing.LuxuryBrandMultiplier:
		b.add("therealreal", 30, "luxury brand suits authenticated consignment")
		b.add("vestiaire", 25, "luxury brand suits authenticated resale")
		b.add("ebay", 10, "luxury brand draws collectors")
	case brandMultiplier >= pricing.DesignerBrandMultiplier:
		b.add("poshmark", 20, "designer brand performs well")
		b.add("vestiaire", 15, "designer brand fits the audience")
		b.add("ebay", 15, "designer brand has broad demand")
	case brandMultiplier < pricing.BudgetBrandMultiplier:
		b.add("mercari", 20, "budget brand moves fast at low fees")
		b.add("facebook", 20, "budget brand sells locally")
		b.add("vinted", 15, "budget brand fits no-fee listing")
	}

	// Vintage banding.
	if factors.IsTrueVintage(item.Era) {
		b.add("etsy", 30, "true vintage (20+ years)")
		b.add("depop", 20, "true vintage draws young buyers")
	} else if factors.IsVintage(item.Era) {
		b.add("etsy", 20, "vintage era")
		b.add("depop", 15, "vintage era")
	}

	// Category bonuses.
	if isJewelry(item) {
		b.add("etsy", 25, "jewelry category strength")
		b.add("ebay", 20, "jewelry category breadth")
		if brandMultiplier >= pricing.DesignerBrandMultiplier {
			b.add("therealreal", 15, "luxury jewelry")
		}
	}

	if isMenswear(item) {
		b.add("grailed", 25, "menswear specialist")
		b.add("ebay", 10, "menswear sells broadly")
	}

	if isStreetwearBrand(item.Brand) {
		b.add("grailed", 20, "streetwear brand")
		b.add("depop", 20, "streetwear brand")
	}

	// Price bracket shifts.
	if suggestedPrice > 0 && suggestedPrice < pricing.LowPriceBracket {
		b.add("mercari", 15, "low price favors flat-fee platforms")
		b.add("vinted", 15, "low price favors no-fee listing")
		b.add("facebook", 10, "low price sells locally")
	} else if suggestedPrice > pricing.HighPriceBracket {
		b.add("therealreal", 15, "high price warrants authentication")
		b.add("vestiaire", 15, "high price warrants authentication")
		b.add("ebay", 10, "authenticity guarantee tier")
	}

	ranked := b.ranked()
	if len(ranked) > maxRanked {
		ranked = ranked[:maxRanked]
	}
	return ranked
}

// scoreboard accumulates scores and reasons, preserving the order platforms
// first appear so ties rank reproducibly.
type scoreboard struct {
	order  []string
	scores map[string]*Candidate
}

func newScoreboard() *scoreboard {
	return &scoreboard{scores: make(map[string]*Candidate)}
}

func (b *scoreboard) add(platform string, points float64, reason string) {
	c, ok := b.scores[platform]
	if !ok {
		c = &Candidate{Platform: platform}
		b.scores[platform] = c
		b.order = append(b.order, platform)
	}
	c.Score += points
	if reason != "" {
		c.Reasons = append(c.Reasons, reason)
	}
}

func (b *scoreboard) ranked() []Candidate {
	out := make([]Candidate, 0, len(b.order))
	for _, p := range b.order {
		out = append(out, *b.scores[p])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func isJewelry(item *model.Item) bool {
	cat := strings.ToLower(strings.TrimSpace(item.Category.Primary))
	return cat == "jewelry" || cat == "jewellery"
}

func isMenswear(item *model.Item) bool {
	gender := strings.ToLower(strings.TrimSpace(item.Size.Gender))
	if gender == "men" || gender == "mens" || gender == "male" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Category.Secondary), "menswear")
}

func isStreetwearBrand(brand string) bool {
	norm := normalizeBrand(brand)
	if norm == "" {
		return false
	}
	for _, b := range pricing.StreetwearBrands {
		if strings.Contains(norm, b) {
			return true
		}
	}
	return false
}

func normalizeBrand(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
