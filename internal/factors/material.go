package factors

import (
	"context"
	"fmt"
	"math"

	"github.com/reselltools/pricewise/internal/model"
	"github.com/reselltools/pricewise/internal/pricing"
)

// TierResolver is the slice of the reference-data loader the material
// calculator needs.
type TierResolver interface {
	MaterialValueTier(ctx context.Context, material string) (tier string, ok bool)
}

// MaterialMultiplier computes the percentage-weighted multiplier across the
// item's composition. Percentages are normalized to sum to 100 before
// weighting. The item's overall material tier is the primary material's tier,
// not a weighted one. No materials at all yields neutral.
func MaterialMultiplier(ctx context.Context, tiers TierResolver, parts []model.MaterialPart) Result {
	if len(parts) == 0 {
		return Neutral()
	}

	total := 0.0
	for _, p := range parts {
		if p.Percent > 0 && !math.IsNaN(p.Percent) && !math.IsInf(p.Percent, 0) {
			total += p.Percent
		}
	}

	weighted := 0.0
	breakdown := make([]Part, 0, len(parts))
	overallTier := pricing.UnknownTier

	for i, p := range parts {
		tier := pricing.UnknownTier
		mult := 1.0
		if t, ok := tiers.MaterialValueTier(ctx, p.Name); ok {
			if m, known := pricing.MaterialTierMultipliers[t]; known {
				tier = t
				mult = m
			}
		}
		if i == 0 {
			overallTier = tier
		}

		weight := p.Percent
		if total > 0 {
			weight = p.Percent / total
		} else {
			// No usable percentages declared; weight components equally.
			weight = 1.0 / float64(len(parts))
		}
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			weight = 0
		}

		weighted += mult * weight
		breakdown = append(breakdown, Part{
			Label:  p.Name,
			Value:  mult,
			Weight: weight,
			Note:   fmt.Sprintf("%s tier", tier),
		})
	}

	return Result{
		Multiplier: sane(weighted),
		Tier:       overallTier,
		Parts:      breakdown,
	}
}
