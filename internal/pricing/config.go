// Package pricing holds every tunable constant the valuation engine depends
// on, in one place. Changing a multiplier is a data change here, not a code
// change in a calculator, and the tables are unit-tested independently of the
// orchestration logic.
package pricing

// ConfigVersion identifies the table set in effect. Bump when any constant
// below changes so archived recommendations can name the tables they used.
const ConfigVersion = "2026.08"

// DefaultBrandMultiplier is applied when the brand dataset has no entry for
// an item's brand. Unknown brands still resell above cost on average, hence
// above neutral.
const DefaultBrandMultiplier = 1.5

// DefaultFeePercent is the flat fee estimate used when a platform's fee
// schedule is unavailable. Roughly the industry midpoint.
const DefaultFeePercent = 0.15

// MaterialTierMultipliers maps a material value tier to its multiplier.
// Tier names match the material dataset's value_tier field.
var MaterialTierMultipliers = map[string]float64{
	"highest":     1.25,
	"high":        1.15,
	"medium_high": 1.08,
	"medium":      1.00,
	"low_medium":  0.92,
	"low":         0.85,
	"avoid":       0.75,
}

// UnknownTier is the tier reported when a lookup has no signal.
const UnknownTier = "unknown"

// ConditionMultipliers maps a condition level to its multiplier.
var ConditionMultipliers = map[string]float64{
	"new_with_tags":    1.15,
	"new_without_tags": 1.05,
	"excellent":        0.95,
	"very_good":        0.85,
	"good":             0.70,
	"fair":             0.50,
	"poor":             0.35,
	"for_parts":        0.20,
}

// DefaultConditionMultiplier applies when the level is missing or not in the
// table. Deliberately not a table entry: "unknown" is priced between
// very_good and excellent because sellers skip the field most often on
// decent items.
const DefaultConditionMultiplier = 0.85

// EraBonuses maps an era bucket to its bonus multiplier. Older is scarcer.
var EraBonuses = map[string]float64{
	"pre_1920s":    1.50,
	"1920s":        1.45,
	"1930s":        1.40,
	"1940s":        1.35,
	"1950s":        1.30,
	"1960s":        1.25,
	"1970s":        1.20,
	"1980s":        1.15,
	"1990s":        1.10,
	"2000s":        1.05,
	"contemporary": 1.00,
}

// TrueVintageYears is the age at which resale platforms treat an item as
// genuine vintage.
const TrueVintageYears = 20

// VintageEras are the era buckets counted as vintage at all; TrueVintageEras
// are the subset at least TrueVintageYears old.
var (
	VintageEras     = []string{"pre_1920s", "1920s", "1930s", "1940s", "1950s", "1960s", "1970s", "1980s", "1990s", "2000s"}
	TrueVintageEras = []string{"pre_1920s", "1920s", "1930s", "1940s", "1950s", "1960s", "1970s", "1980s", "1990s"}
)

// Flaw penalties, keyed by severity. Unrecognized severities get
// FlawDefaultPenalty.
var FlawSeverityPenalties = map[string]float64{
	"minor":       -0.02,
	"moderate":    -0.05,
	"significant": -0.10,
}

const (
	FlawDefaultPenalty     = -0.03
	FlawWearabilityPenalty = -0.05
	// RepairableDiscount halves a repairable flaw's combined penalty.
	RepairableDiscount = 0.5
	// FlawAdjustmentFloor caps the total flaw penalty no matter how many
	// flaws are listed.
	FlawAdjustmentFloor = -0.25
)

// SizeTier is one labeled-size band with its multiplier. Clothing tiers are
// matched in declaration order; first hit wins.
type SizeTier struct {
	Name       string
	Labels     []string
	Multiplier float64
}

// ClothingSizeTiers in match-precedence order.
var ClothingSizeTiers = []SizeTier{
	{Name: "premium", Labels: []string{"xs", "s", "0", "2", "4", "6", "8"}, Multiplier: 1.05},
	{Name: "standard", Labels: []string{"m", "l", "10", "12"}, Multiplier: 1.00},
	{Name: "extended", Labels: []string{"xl", "xxl", "1x", "2x", "3x", "14", "16", "18"}, Multiplier: 0.95},
	{Name: "outlier", Labels: []string{"3xl", "4xl", "5xl", "20", "22", "24", "26"}, Multiplier: 0.85},
}

// Clothing fallback when no tier label matches.
const (
	ClothingStandardTier       = "standard"
	ClothingStandardMultiplier = 1.00
)

// Shoe size bands. Premium requires the width gate as well.
const (
	ShoePremiumMin        = 7.0
	ShoePremiumMax        = 9.0
	ShoeStandardMin       = 6.0
	ShoeStandardMax       = 10.0
	ShoePremiumMultiplier = 1.05
	ShoeNarrowMultiplier  = 0.90
)

// ShoePremiumWidths are the widths eligible for the premium band.
var ShoePremiumWidths = map[string]bool{
	"standard": true,
	"wide":     true,
}

// Jewelry sizing. Adjustable pieces fit the widest audience and outrank the
// other jewelry checks.
const (
	JewelryAdjustableMultiplier = 1.08
	RingPremiumMin              = 6.0
	RingPremiumMax              = 8.0
	RingStandardMin             = 5.0
	RingStandardMax             = 9.0
	RingPremiumMultiplier       = 1.05
	RingNarrowMultiplier        = 0.90
	ChainPremiumMultiplier      = 1.03
)

var (
	ChainPremiumLengths  = []string{"16", "18", "20"}
	ChainStandardLengths = []string{"14", "22", "24"}
)

// Trend tables. Each dimension is scored independently, combined with the
// weights below, then the deviation from neutral is clamped to
// MaxTrendAdjustment.
var (
	ColorTrendScores = map[string]float64{
		"hot":        1.15,
		"emerging":   1.08,
		"neutral":    1.00,
		"declining":  0.92,
		"off_season": 0.85,
	}
	CutTrendScores = map[string]float64{
		"trending":       1.10,
		"platform_match": 1.05,
		"classic":        1.00,
		"dated":          0.90,
	}
	StyleTrendScores = map[string]float64{
		"trending": 1.10,
		"emerging": 1.05,
		"classic":  1.00,
		"dated":    0.90,
	}
)

const (
	ColorTrendWeight   = 0.4
	CutTrendWeight     = 0.3
	StyleTrendWeight   = 0.3
	MaxTrendAdjustment = 0.20
)

// SeasonalColorStatus classifies a normalized color name per season. Colors
// not listed are neutral.
var SeasonalColorStatus = map[string]map[string]string{
	"spring": {
		"pastel": "hot", "sage": "hot", "lavender": "emerging",
		"butteryellow": "emerging", "black": "neutral",
		"burgundy": "off_season", "forestgreen": "off_season",
	},
	"summer": {
		"white": "hot", "coral": "hot", "turquoise": "emerging",
		"linen": "neutral", "black": "declining", "burgundy": "off_season",
	},
	"fall": {
		"burgundy": "hot", "rust": "hot", "forestgreen": "emerging",
		"mustard": "emerging", "pastel": "off_season", "coral": "declining",
	},
	"winter": {
		"black": "hot", "emerald": "hot", "silver": "emerging",
		"burgundy": "neutral", "pastel": "off_season", "coral": "off_season",
	},
}

// CutTrendClasses and StyleTrendClasses classify normalized cut and style
// keywords. Unlisted values score as classic.
var CutTrendClasses = map[string]string{
	"wideleg": "trending", "barrel": "trending", "cargo": "trending",
	"relaxed": "platform_match", "lowrise": "platform_match",
	"straight": "classic", "bootcut": "classic",
	"skinny": "dated",
}

var StyleTrendClasses = map[string]string{
	"y2k": "trending", "gorpcore": "trending",
	"quietluxury": "emerging", "boho": "emerging",
	"minimalist": "classic", "preppy": "classic",
	"cottagecore": "dated", "fastfashion": "dated",
}

// Brand-tier bands used by the platform ranking engine.
const (
	LuxuryBrandMultiplier   = 4.0
	DesignerBrandMultiplier = 2.5
	BudgetBrandMultiplier   = 1.5
)

// Price brackets that shift platform rankings.
const (
	LowPriceBracket  = 50.0
	HighPriceBracket = 500.0
)

// StreetwearBrands is matched by normalized-name substring in the ranking
// engine.
var StreetwearBrands = []string{
	"supreme", "bape", "offwhite", "palace", "stussy", "kith",
	"fearofgod", "essentials", "carhartt", "nikesb",
}

// NaturalFibers earn a bonus on eco-conscious platforms.
var NaturalFibers = []string{
	"cotton", "linen", "wool", "silk", "cashmere", "hemp", "leather",
}
