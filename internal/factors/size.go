package factors

import (
	"strconv"
	"strings"

	"github.com/reselltools/pricewise/internal/model"
	"github.com/reselltools/pricewise/internal/pricing"
)

// SizeMultiplier dispatches on the item's primary category: shoes and
// jewelry get their own sizing models, everything else is treated as labeled
// clothing.
func SizeMultiplier(item *model.Item) Result {
	switch strings.ToLower(strings.TrimSpace(item.Category.Primary)) {
	case "shoes", "footwear":
		return shoeSizeMultiplier(item)
	case "jewelry", "jewellery":
		return jewelrySizeMultiplier(item)
	default:
		return clothingSizeMultiplier(item.Size.Label)
	}
}

// clothingSizeMultiplier matches the labeled size against the tier label
// sets in declaration order; the first matching tier wins. Exact label and
// numeric-value matches are tried across all tiers before the looser
// containment scan, so "3xl" lands in its own tier rather than on the "xl"
// substring. No match falls back to standard.
func clothingSizeMultiplier(label string) Result {
	norm := strings.ToLower(strings.TrimSpace(label))
	if norm == "" {
		return Result{Multiplier: pricing.ClothingStandardMultiplier, Tier: pricing.ClothingStandardTier}
	}

	num, numeric := parseSizeNumber(norm)

	for _, tier := range pricing.ClothingSizeTiers {
		for _, tl := range tier.Labels {
			if norm == tl {
				return Result{Multiplier: tier.Multiplier, Tier: tier.Name}
			}
			if tn, err := strconv.ParseFloat(tl, 64); err == nil && numeric && num == tn {
				return Result{Multiplier: tier.Multiplier, Tier: tier.Name}
			}
		}
	}

	if !numeric {
		for _, tier := range pricing.ClothingSizeTiers {
			for _, tl := range tier.Labels {
				if _, err := strconv.ParseFloat(tl, 64); err == nil {
					continue
				}
				if strings.Contains(norm, tl) {
					return Result{Multiplier: tier.Multiplier, Tier: tier.Name}
				}
			}
		}
	}

	return Result{Multiplier: pricing.ClothingStandardMultiplier, Tier: pricing.ClothingStandardTier}
}

// shoeSizeMultiplier prices the 7-9 band with standard or wide width as
// premium, 6-10 as standard, anything else numeric as a narrow market.
// Non-numeric sizes carry no signal.
func shoeSizeMultiplier(item *model.Item) Result {
	num, ok := parseSizeNumber(item.Size.Label)
	if !ok {
		return Neutral()
	}

	width := "standard"
	if item.Shoes != nil && strings.TrimSpace(item.Shoes.Width) != "" {
		width = strings.ToLower(strings.TrimSpace(item.Shoes.Width))
	}

	if num >= pricing.ShoePremiumMin && num <= pricing.ShoePremiumMax && pricing.ShoePremiumWidths[width] {
		return Result{Multiplier: pricing.ShoePremiumMultiplier, Tier: "premium"}
	}
	if num >= pricing.ShoeStandardMin && num <= pricing.ShoeStandardMax {
		return Result{Multiplier: 1.0, Tier: "standard"}
	}
	return Result{Multiplier: pricing.ShoeNarrowMultiplier, Tier: "narrow_market"}
}

// jewelrySizeMultiplier: an adjustable piece fits the widest audience and
// outranks every other jewelry check. Otherwise rings band on ring size and
// chained pieces band on chain length.
func jewelrySizeMultiplier(item *model.Item) Result {
	if isAdjustable(item) {
		return Result{Multiplier: pricing.JewelryAdjustableMultiplier, Tier: "adjustable"}
	}

	sub := strings.ToLower(strings.TrimSpace(item.Category.Secondary))
	switch sub {
	case "ring":
		return ringSizeMultiplier(item)
	case "necklace", "pendant":
		return chainLengthMultiplier(item)
	default:
		return Neutral()
	}
}

func isAdjustable(item *model.Item) bool {
	if item.Jewelry != nil && strings.Contains(strings.ToLower(item.Jewelry.ClosureType), "adjustable") {
		return true
	}
	return strings.Contains(strings.ToLower(item.Description), "adjustable")
}

func ringSizeMultiplier(item *model.Item) Result {
	raw := ""
	if item.Jewelry != nil {
		raw = item.Jewelry.RingSize
	}
	num, ok := parseSizeNumber(raw)
	if !ok {
		return Neutral()
	}
	switch {
	case num >= pricing.RingPremiumMin && num <= pricing.RingPremiumMax:
		return Result{Multiplier: pricing.RingPremiumMultiplier, Tier: "premium"}
	case num >= pricing.RingStandardMin && num <= pricing.RingStandardMax:
		return Result{Multiplier: 1.0, Tier: "standard"}
	default:
		return Result{Multiplier: pricing.RingNarrowMultiplier, Tier: "narrow_market"}
	}
}

func chainLengthMultiplier(item *model.Item) Result {
	length := item.Size.Label
	if item.Size.Measurements != nil {
		if v, ok := item.Size.Measurements["chain_length"]; ok {
			length = v
		}
	}
	norm := strings.ToLower(strings.TrimSpace(length))
	if norm == "" {
		return Neutral()
	}
	for _, l := range pricing.ChainPremiumLengths {
		if strings.Contains(norm, l) {
			return Result{Multiplier: pricing.ChainPremiumMultiplier, Tier: "premium"}
		}
	}
	for _, l := range pricing.ChainStandardLengths {
		if strings.Contains(norm, l) {
			return Result{Multiplier: 1.0, Tier: "standard"}
		}
	}
	return Neutral()
}

// parseSizeNumber pulls a numeric size out of a label like "8", "9.5", or
// "US 8". Returns false when there is nothing numeric to parse, so callers
// fall back to their unknown tier instead of propagating NaN.
func parseSizeNumber(label string) (float64, bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n, true
	}
	// Strip a leading region prefix ("US 8", "EU 39").
	fields := strings.Fields(s)
	if len(fields) > 1 {
		if n, err := strconv.ParseFloat(fields[len(fields)-1], 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
