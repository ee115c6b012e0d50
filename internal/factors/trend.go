package factors

import (
	"strings"
	"time"
	"unicode"

	"github.com/reselltools/pricewise/internal/pricing"
)

// TrendInput carries the trend dimensions of an item plus the month the
// recommendation is generated in (the color tables are seasonal).
type TrendInput struct {
	Color string
	Cut   string
	Style string
	Month time.Month
}

// TrendMultiplier scores color, cut, and style independently against the
// trend tables, combines them with fixed weights (color 0.4, cut 0.3, style
// 0.3), and clamps the combined deviation to +/-20% of neutral before it is
// ever applied to a price.
func TrendMultiplier(in TrendInput) Result {
	colorStatus := classifyColor(in.Color, seasonOf(in.Month))
	cutStatus := classifyKeyword(pricing.CutTrendClasses, in.Cut)
	styleStatus := classifyKeyword(pricing.StyleTrendClasses, in.Style)

	colorScore := trendScore(pricing.ColorTrendScores, colorStatus)
	cutScore := trendScore(pricing.CutTrendScores, cutStatus)
	styleScore := trendScore(pricing.StyleTrendScores, styleStatus)

	combined := pricing.ColorTrendWeight*colorScore +
		pricing.CutTrendWeight*cutScore +
		pricing.StyleTrendWeight*styleScore

	clamped := clampTrend(combined)

	tier := "neutral"
	switch {
	case clamped > 1.0:
		tier = "trending"
	case clamped < 1.0:
		tier = "declining"
	}

	return Result{
		Multiplier: sane(clamped),
		Tier:       tier,
		Parts: []Part{
			{Label: "color", Value: colorScore, Note: colorStatus, Weight: pricing.ColorTrendWeight},
			{Label: "cut", Value: cutScore, Note: cutStatus, Weight: pricing.CutTrendWeight},
			{Label: "style", Value: styleScore, Note: styleStatus, Weight: pricing.StyleTrendWeight},
		},
	}
}

func clampTrend(m float64) float64 {
	if m > 1.0+pricing.MaxTrendAdjustment {
		return 1.0 + pricing.MaxTrendAdjustment
	}
	if m < 1.0-pricing.MaxTrendAdjustment {
		return 1.0 - pricing.MaxTrendAdjustment
	}
	return m
}

func classifyColor(color string, season string) string {
	palette, ok := pricing.SeasonalColorStatus[season]
	if !ok {
		return "neutral"
	}
	if status, ok := palette[normalizeKeyword(color)]; ok {
		return status
	}
	return "neutral"
}

func classifyKeyword(classes map[string]string, keyword string) string {
	if status, ok := classes[normalizeKeyword(keyword)]; ok {
		return status
	}
	return "classic"
}

func trendScore(scores map[string]float64, status string) float64 {
	if s, ok := scores[status]; ok {
		return s
	}
	return 1.0
}

func seasonOf(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "fall"
	}
}

func normalizeKeyword(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
