package platforms

import (
	"fmt"
	"strings"

	"github.com/reselltools/pricewise/internal/factors"
	"github.com/reselltools/pricewise/internal/model"
	"github.com/reselltools/pricewise/internal/pricing"
)

// FitFactors are the already-computed factor results the fit modifier reads.
// The orchestrator always computes material and size before platform fit.
type FitFactors struct {
	Material factors.Result
	Size     factors.Result
}

// FitAdjustment records one applied demographic adjustment.
type FitAdjustment struct {
	Delta  float64
	Reason string
}

// recordThreshold suppresses noise: adjustments below this magnitude still
// affect the modifier but are not recorded.
const recordThreshold = 0.01

// demographic describes how a platform's audience reweights the factor
// stack.
type demographic struct {
	smallSizeBonus      float64 // applied when the size tier is premium
	largeSizeBonus      float64 // applied when the size tier is extended/outlier
	materialCompression float64 // fraction of the material deviation removed
	sizeCompression     float64 // fraction of the size deviation removed
	lowTierPenalty      float64 // applied when the material tier is low/avoid
	naturalFiberBonus   float64
}

var demographics = map[string]demographic{
	"poshmark":    {smallSizeBonus: 0.03, materialCompression: 0.5},
	"depop":       {smallSizeBonus: 0.04, materialCompression: 0.5},
	"grailed":     {largeSizeBonus: 0.03},
	"therealreal": {lowTierPenalty: -0.10},
	"vestiaire":   {lowTierPenalty: -0.10},
	"etsy":        {naturalFiberBonus: 0.05},
	"vinted":      {materialCompression: 0.5, sizeCompression: 0.5},
}

// PlatformFitModifier adjusts the computed size and material multipliers for
// a platform's audience. It returns a modifier to multiply into the stack
// (1.0 when the platform has no demographic profile) plus the recorded
// adjustments in application order.
func PlatformFitModifier(item *model.Item, platformID string, f FitFactors) (float64, []FitAdjustment) {
	d, ok := demographics[strings.ToLower(strings.TrimSpace(platformID))]
	if !ok {
		return 1.0, nil
	}

	modifier := 1.0
	var recorded []FitAdjustment

	apply := func(delta float64, reason string) {
		if delta == 0 {
			return
		}
		modifier *= 1 + delta
		if delta >= recordThreshold || delta <= -recordThreshold {
			recorded = append(recorded, FitAdjustment{Delta: delta, Reason: reason})
		}
	}

	if d.smallSizeBonus != 0 && f.Size.Tier == "premium" {
		apply(d.smallSizeBonus, "audience favors small sizes")
	}
	if d.largeSizeBonus != 0 && (f.Size.Tier == "extended" || f.Size.Tier == "outlier") {
		apply(d.largeSizeBonus, "audience favors extended sizes")
	}

	if d.sizeCompression > 0 {
		apply(compressionDelta(f.Size.Multiplier, d.sizeCompression),
			fmt.Sprintf("audience discounts sizing by %.0f%%", d.sizeCompression*100))
	}
	if d.materialCompression > 0 {
		apply(compressionDelta(f.Material.Multiplier, d.materialCompression),
			fmt.Sprintf("audience discounts material by %.0f%%", d.materialCompression*100))
	}

	if d.lowTierPenalty != 0 && (f.Material.Tier == "low" || f.Material.Tier == "avoid") {
		apply(d.lowTierPenalty, "low-tier material on a luxury platform")
	}

	if d.naturalFiberBonus != 0 && hasNaturalFiber(item) {
		apply(d.naturalFiberBonus, "natural fibers suit the audience")
	}

	return modifier, recorded
}

// compressionDelta returns the relative change that moves an applied
// multiplier's deviation toward 1.0 by the given fraction. The stack already
// contains m; multiplying by (compressed/m) leaves the compressed value.
func compressionDelta(m, fraction float64) float64 {
	if m <= 0 {
		return 0
	}
	compressed := 1 + (m-1)*(1-fraction)
	return compressed/m - 1
}

func hasNaturalFiber(item *model.Item) bool {
	for _, p := range item.MaterialParts() {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		for _, fiber := range pricing.NaturalFibers {
			if strings.Contains(name, fiber) {
				return true
			}
		}
	}
	return false
}
