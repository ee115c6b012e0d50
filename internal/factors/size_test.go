package factors

import (
	"testing"

	"github.com/reselltools/pricewise/internal/model"
)

func clothingItem(label string) *model.Item {
	return &model.Item{
		Category: model.Category{Primary: "clothing"},
		Size:     model.Size{Label: label},
	}
}

func TestSizeMultiplier_ClothingTiers(t *testing.T) {
	tests := []struct {
		label string
		tier  string
		mult  float64
	}{
		{"XS", "premium", 1.05},
		{"s", "premium", 1.05},
		{"8", "premium", 1.05}, // boundary: 8 is still premium
		{"10", "standard", 1.00},
		{"M", "standard", 1.00},
		{"L", "standard", 1.00},
		{"XL", "extended", 0.95},
		{"2X", "extended", 0.95},
		{"16", "extended", 0.95},
		{"3XL", "outlier", 0.85},
		{"22", "outlier", 0.85},
		{"", "standard", 1.00},
		{"40", "standard", 1.00}, // no match falls back to standard
	}

	for _, tt := range tests {
		res := SizeMultiplier(clothingItem(tt.label))
		if res.Tier != tt.tier {
			t.Errorf("label %q: expected tier %q, got %q", tt.label, tt.tier, res.Tier)
		}
		if res.Multiplier != tt.mult {
			t.Errorf("label %q: expected multiplier %.2f, got %.2f", tt.label, tt.mult, res.Multiplier)
		}
	}
}

func shoeItem(size, width string) *model.Item {
	return &model.Item{
		Category: model.Category{Primary: "shoes"},
		Size:     model.Size{Label: size},
		Shoes:    &model.ShoeDetails{Width: width},
	}
}

func TestSizeMultiplier_Shoes(t *testing.T) {
	tests := []struct {
		size  string
		width string
		tier  string
	}{
		{"8", "standard", "premium"},
		{"9", "wide", "premium"}, // boundary: 9 with wide width is premium
		{"7", "standard", "premium"},
		{"6", "narrow", "standard"}, // width gate fails, falls to standard band
		{"9.5", "standard", "standard"},
		{"10", "standard", "standard"},
		{"5", "standard", "narrow_market"},
		{"11", "wide", "narrow_market"},
		{"n/a", "standard", "unknown"}, // non-numeric carries no signal
	}

	for _, tt := range tests {
		res := SizeMultiplier(shoeItem(tt.size, tt.width))
		if res.Tier != tt.tier {
			t.Errorf("size %q width %q: expected tier %q, got %q", tt.size, tt.width, tt.tier, res.Tier)
		}
	}
}

func TestSizeMultiplier_ShoeMissingWidthDefaultsStandard(t *testing.T) {
	item := shoeItem("8", "")
	res := SizeMultiplier(item)
	if res.Tier != "premium" {
		t.Errorf("Expected premium for size 8 with unspecified width, got %q", res.Tier)
	}

	item.Shoes = nil
	res = SizeMultiplier(item)
	if res.Tier != "premium" {
		t.Errorf("Expected premium for size 8 with no shoe details, got %q", res.Tier)
	}
}

func TestSizeMultiplier_JewelryAdjustablePrecedence(t *testing.T) {
	item := &model.Item{
		Category: model.Category{Primary: "jewelry", Secondary: "ring"},
		Jewelry:  &model.JewelryDetails{ClosureType: "adjustable band", RingSize: "4"},
	}

	// Adjustable wins even though ring size 4 would be narrow_market.
	res := SizeMultiplier(item)
	if res.Tier != "adjustable" {
		t.Errorf("Expected adjustable tier, got %q", res.Tier)
	}
	if res.Multiplier != 1.08 {
		t.Errorf("Expected 1.08, got %.2f", res.Multiplier)
	}
}

func TestSizeMultiplier_JewelryAdjustableFromDescription(t *testing.T) {
	item := &model.Item{
		Category:    model.Category{Primary: "jewelry", Secondary: "necklace"},
		Description: "Gold-tone chain with adjustable length",
	}
	res := SizeMultiplier(item)
	if res.Tier != "adjustable" {
		t.Errorf("Expected adjustable tier from description keyword, got %q", res.Tier)
	}
}

func TestSizeMultiplier_RingBands(t *testing.T) {
	tests := []struct {
		ringSize string
		tier     string
		mult     float64
	}{
		{"6", "premium", 1.05},
		{"8", "premium", 1.05},
		{"5", "standard", 1.00},
		{"9", "standard", 1.00},
		{"4", "narrow_market", 0.90},
		{"11", "narrow_market", 0.90},
		{"", "unknown", 1.00},
	}

	for _, tt := range tests {
		item := &model.Item{
			Category: model.Category{Primary: "jewelry", Secondary: "ring"},
			Jewelry:  &model.JewelryDetails{RingSize: tt.ringSize},
		}
		res := SizeMultiplier(item)
		if res.Tier != tt.tier {
			t.Errorf("ring size %q: expected tier %q, got %q", tt.ringSize, tt.tier, res.Tier)
		}
		if res.Multiplier != tt.mult {
			t.Errorf("ring size %q: expected %.2f, got %.2f", tt.ringSize, tt.mult, res.Multiplier)
		}
	}
}

func TestSizeMultiplier_ChainLengths(t *testing.T) {
	tests := []struct {
		length string
		tier   string
	}{
		{"18in", "premium"},
		{"16 inch", "premium"},
		{"22in", "standard"},
		{"30in", "unknown"},
	}

	for _, tt := range tests {
		item := &model.Item{
			Category: model.Category{Primary: "jewelry", Secondary: "necklace"},
			Size:     model.Size{Measurements: map[string]string{"chain_length": tt.length}},
		}
		res := SizeMultiplier(item)
		if res.Tier != tt.tier {
			t.Errorf("chain %q: expected tier %q, got %q", tt.length, tt.tier, res.Tier)
		}
	}
}
