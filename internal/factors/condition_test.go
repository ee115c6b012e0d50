package factors

import (
	"testing"

	"github.com/reselltools/pricewise/internal/pricing"
)

func TestConditionMultiplier_Ladder(t *testing.T) {
	for level, want := range pricing.ConditionMultipliers {
		res := ConditionMultiplier(level)
		if res.Multiplier != want {
			t.Errorf("level %q: expected %.2f, got %.4f", level, want, res.Multiplier)
		}
		if res.Tier != level {
			t.Errorf("level %q: expected tier echoed back, got %q", level, res.Tier)
		}
	}
}

func TestConditionMultiplier_NormalizesInput(t *testing.T) {
	res := ConditionMultiplier("  Excellent ")
	if res.Multiplier != 0.95 {
		t.Errorf("Expected 0.95 after trimming and lowercasing, got %.4f", res.Multiplier)
	}
}

func TestConditionMultiplier_UnknownGetsDefault(t *testing.T) {
	for _, level := range []string{"", "pristine", "like new"} {
		res := ConditionMultiplier(level)
		if res.Multiplier != pricing.DefaultConditionMultiplier {
			t.Errorf("level %q: expected default %.2f, got %.4f",
				level, pricing.DefaultConditionMultiplier, res.Multiplier)
		}
		if res.Tier != "unknown" {
			t.Errorf("level %q: expected tier 'unknown', got %q", level, res.Tier)
		}
	}
}

func TestEraBonus(t *testing.T) {
	tests := []struct {
		era  string
		want float64
	}{
		{"pre_1920s", 1.50},
		{"1950s", 1.30},
		{"1990s", 1.10},
		{"contemporary", 1.00},
		{"", 1.00},
		{"medieval", 1.00},
	}

	for _, tt := range tests {
		res := EraBonus(tt.era)
		if res.Multiplier != tt.want {
			t.Errorf("era %q: expected %.2f, got %.4f", tt.era, tt.want, res.Multiplier)
		}
	}
}

func TestEraBonusMonotonic(t *testing.T) {
	// Older eras never earn less than newer ones.
	ordered := []string{
		"pre_1920s", "1920s", "1930s", "1940s", "1950s", "1960s",
		"1970s", "1980s", "1990s", "2000s", "contemporary",
	}
	for i := 1; i < len(ordered); i++ {
		older := EraBonus(ordered[i-1]).Multiplier
		newer := EraBonus(ordered[i]).Multiplier
		if older < newer {
			t.Errorf("%s (%.2f) earns less than %s (%.2f)", ordered[i-1], older, ordered[i], newer)
		}
	}
}

func TestVintageClassification(t *testing.T) {
	if !IsVintage("1990s") || !IsTrueVintage("1990s") {
		t.Error("1990s should be vintage and true vintage")
	}
	if !IsVintage("2000s") {
		t.Error("2000s should be vintage")
	}
	if IsTrueVintage("2000s") {
		t.Error("2000s should not clear the true-vintage bar")
	}
	if IsVintage("contemporary") || IsTrueVintage("contemporary") {
		t.Error("contemporary is not vintage")
	}
}
