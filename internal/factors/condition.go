package factors

import (
	"strings"

	"github.com/reselltools/pricewise/internal/pricing"
)

// ConditionMultiplier is a direct ladder lookup on the condition level. A
// missing or unrecognized level gets the documented 0.85 default rather than
// any table entry.
func ConditionMultiplier(level string) Result {
	norm := strings.ToLower(strings.TrimSpace(level))
	if m, ok := pricing.ConditionMultipliers[norm]; ok {
		return Result{Multiplier: m, Tier: norm}
	}
	return Result{Multiplier: pricing.DefaultConditionMultiplier, Tier: pricing.UnknownTier}
}

// EraBonus looks up the era bucket's bonus. Unknown eras are contemporary.
func EraBonus(era string) Result {
	norm := strings.ToLower(strings.TrimSpace(era))
	if m, ok := pricing.EraBonuses[norm]; ok {
		return Result{Multiplier: m, Tier: norm}
	}
	return Neutral()
}

// IsVintage reports whether the era bucket counts as vintage at all, and
// IsTrueVintage whether it clears the 20-year bar resale platforms use.
func IsVintage(era string) bool {
	return containsEra(pricing.VintageEras, era)
}

func IsTrueVintage(era string) bool {
	return containsEra(pricing.TrueVintageEras, era)
}

func containsEra(eras []string, era string) bool {
	norm := strings.ToLower(strings.TrimSpace(era))
	for _, e := range eras {
		if e == norm {
			return true
		}
	}
	return false
}
