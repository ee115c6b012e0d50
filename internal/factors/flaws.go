package factors

import (
	"strings"

	"github.com/reselltools/pricewise/internal/model"
	"github.com/reselltools/pricewise/internal/pricing"
)

// FlawAdjustment is an additive adjustment, not a multiplier: the orchestrator
// applies it as (1 + Adjustment).
type FlawAdjustment struct {
	Adjustment float64
	Details    []FlawDetail
}

// FlawDetail records one flaw's contribution in application order.
type FlawDetail struct {
	Type       string
	Severity   string
	Penalty    float64
	Repairable bool
}

// CalculateFlawAdjustment sums per-flaw penalties. Order of operations per
// flaw: severity penalty, plus the wearability penalty if the flaw affects
// wearability, THEN halved if the flaw is marked repairable. The repairable
// discount only ever touches that flaw's own combined penalty. The total is
// floored at -0.25 no matter how many flaws are listed.
func CalculateFlawAdjustment(flaws []model.Flaw) FlawAdjustment {
	if len(flaws) == 0 {
		return FlawAdjustment{}
	}

	total := 0.0
	details := make([]FlawDetail, 0, len(flaws))

	for _, f := range flaws {
		severity := strings.ToLower(strings.TrimSpace(f.Severity))
		penalty, ok := pricing.FlawSeverityPenalties[severity]
		if !ok {
			penalty = pricing.FlawDefaultPenalty
		}
		if f.AffectsWearability {
			penalty += pricing.FlawWearabilityPenalty
		}
		if f.Repairable {
			penalty *= pricing.RepairableDiscount
		}

		total += penalty
		details = append(details, FlawDetail{
			Type:       f.Type,
			Severity:   severity,
			Penalty:    penalty,
			Repairable: f.Repairable,
		})
	}

	if total < pricing.FlawAdjustmentFloor {
		total = pricing.FlawAdjustmentFloor
	}

	return FlawAdjustment{Adjustment: total, Details: details}
}
