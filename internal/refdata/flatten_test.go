package refdata

import (
	"testing"
)

const brandFixture = `{
	"luxury": {
		"chanel": {"m": 5.0, "tips": "authenticate before listing"},
		"hermes": {"m": 6.0, "alt": ["hermes paris"]}
	},
	"contemporary": {
		"madewell": {"m": 2.0},
		"levis": {"m": 2.2, "alt": ["levi strauss", "levi's"]}
	},
	"note": "updated quarterly"
}`

const materialFixture = `{
	"natural": {
		"silk": {"value_tier": "highest", "label_terms": ["100% silk", "pure silk"]},
		"cashmere": {"value_tier": "highest"}
	},
	"synthetic": {
		"polyester": {"value_tier": "low"},
		"acrylic": {"value_tier": "avoid"}
	}
}`

func TestParseBrands_NestedNamespaces(t *testing.T) {
	lk, err := ParseBrands([]byte(brandFixture))
	if err != nil {
		t.Fatalf("ParseBrands: %v", err)
	}

	e, ok := lk.Get("Chanel")
	if !ok {
		t.Fatal("Expected chanel entry")
	}
	if e.Multiplier != 5.0 {
		t.Errorf("Expected 5.0, got %.2f", e.Multiplier)
	}
	if e.Tips != "authenticate before listing" {
		t.Errorf("Unexpected tips: %q", e.Tips)
	}

	// Deeper namespace still resolves.
	if e, ok := lk.Get("madewell"); !ok || e.Multiplier != 2.0 {
		t.Errorf("Expected madewell at 2.0, got %+v ok=%v", e, ok)
	}
}

func TestParseBrands_Alternates(t *testing.T) {
	lk, err := ParseBrands([]byte(brandFixture))
	if err != nil {
		t.Fatalf("ParseBrands: %v", err)
	}

	for _, name := range []string{"levis", "Levi Strauss", "Levi's"} {
		e, ok := lk.Get(name)
		if !ok {
			t.Errorf("%q: expected a hit", name)
			continue
		}
		if e.Multiplier != 2.2 {
			t.Errorf("%q: expected 2.2, got %.2f", name, e.Multiplier)
		}
	}
}

func TestParseBrands_SkipsBareValues(t *testing.T) {
	lk, err := ParseBrands([]byte(brandFixture))
	if err != nil {
		t.Fatalf("ParseBrands: %v", err)
	}
	// "note" is a bare string namespace value, not an entry. chanel, hermes,
	// hermesparis, madewell, levis, levistrauss, levis (dup) = 6 distinct.
	if lk.Len() != 6 {
		t.Errorf("Expected 6 keys, got %d", lk.Len())
	}
}

func TestBrandLookup_SubstringFallback(t *testing.T) {
	lk, err := ParseBrands([]byte(brandFixture))
	if err != nil {
		t.Fatalf("ParseBrands: %v", err)
	}

	// Query contains a key.
	e, ok := lk.Get("Chanel Vintage")
	if !ok || e.Multiplier != 5.0 {
		t.Errorf("Expected containment hit on chanel, got %+v ok=%v", e, ok)
	}

	// Key contains the query.
	e, ok = lk.Get("hermes par")
	if !ok || e.Multiplier != 6.0 {
		t.Errorf("Expected containment hit on hermes, got %+v ok=%v", e, ok)
	}
}

func TestBrandLookup_FirstDeclaredWins(t *testing.T) {
	// "el" is contained in both "chanel" and "madewell"; chanel was declared
	// first and the scan runs in declaration order.
	lk, err := ParseBrands([]byte(brandFixture))
	if err != nil {
		t.Fatalf("ParseBrands: %v", err)
	}
	e, ok := lk.Get("el")
	if !ok {
		t.Fatal("Expected a containment hit")
	}
	if e.Multiplier != 5.0 {
		t.Errorf("Expected first-declared chanel (5.0), got %.2f", e.Multiplier)
	}
}

func TestBrandLookup_Miss(t *testing.T) {
	lk, err := ParseBrands([]byte(brandFixture))
	if err != nil {
		t.Fatalf("ParseBrands: %v", err)
	}
	if _, ok := lk.Get("zzzz"); ok {
		t.Error("Expected a miss")
	}
	if _, ok := lk.Get(""); ok {
		t.Error("Expected a miss for empty name")
	}
	if _, ok := lk.Get("!!!"); ok {
		t.Error("Expected a miss for a name that normalizes to nothing")
	}
}

func TestParseMaterials(t *testing.T) {
	lk, err := ParseMaterials([]byte(materialFixture))
	if err != nil {
		t.Fatalf("ParseMaterials: %v", err)
	}

	tests := []struct {
		name string
		tier string
	}{
		{"silk", "highest"},
		{"100% Silk", "highest"}, // label term
		{"Pure Silk", "highest"},
		{"polyester", "low"},
		{"acrylic", "avoid"},
	}
	for _, tt := range tests {
		e, ok := lk.Get(tt.name)
		if !ok {
			t.Errorf("%q: expected a hit", tt.name)
			continue
		}
		if e.ValueTier != tt.tier {
			t.Errorf("%q: expected tier %q, got %q", tt.name, tt.tier, e.ValueTier)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	bad := [][]byte{
		nil,
		[]byte("   "),
		[]byte(`[1,2,3]`),
		[]byte(`"just a string"`),
		[]byte(`{"a": {"m": 1.5}`), // truncated
	}
	for i, data := range bad {
		if _, err := ParseBrands(data); err == nil {
			t.Errorf("brands case %d: expected an error", i)
		}
		if _, err := ParseMaterials(data); err == nil {
			t.Errorf("materials case %d: expected an error", i)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Levi's", "levis"},
		{"  Off-White  ", "offwhite"},
		{"A.P.C.", "apc"},
		{"100% Silk", "100silk"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
