package refdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// The brand and material datasets are arbitrarily nested namespace objects
// terminating in leaf entries:
//
//	brands:    {"m": 2.5, "tips": "...", "alt": ["..."]}
//	materials: {"value_tier": "high", "label_terms": ["..."]}
//
// Flattening walks the document depth-first IN DOCUMENT ORDER so that the
// substring-fallback lookup is reproducible run to run. encoding/json maps
// would shuffle keys, so the walk uses the token stream directly.

// BrandEntry is one resolved brand record.
type BrandEntry struct {
	Multiplier float64
	Tips       string
}

// MaterialEntry is one resolved material record.
type MaterialEntry struct {
	ValueTier string
}

type brandLeaf struct {
	M    *float64 `json:"m"`
	Tips string   `json:"tips"`
	Alt  []string `json:"alt"`
}

type materialLeaf struct {
	ValueTier  string   `json:"value_tier"`
	LabelTerms []string `json:"label_terms"`
}

// BrandLookup maps normalized brand names (and alternates) to entries, with
// key order pinned to dataset declaration order.
type BrandLookup struct {
	keys    []string
	entries map[string]BrandEntry
}

// MaterialLookup maps normalized material names (and label synonyms) to
// entries, key order pinned to dataset declaration order.
type MaterialLookup struct {
	keys    []string
	entries map[string]MaterialEntry
}

func newBrandLookup() *BrandLookup {
	return &BrandLookup{entries: make(map[string]BrandEntry)}
}

func newMaterialLookup() *MaterialLookup {
	return &MaterialLookup{entries: make(map[string]MaterialEntry)}
}

func (b *BrandLookup) add(key string, e BrandEntry) {
	if key == "" {
		return
	}
	if _, exists := b.entries[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.entries[key] = e
}

func (m *MaterialLookup) add(key string, e MaterialEntry) {
	if key == "" {
		return
	}
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = e
}

// Len reports the number of distinct keys.
func (b *BrandLookup) Len() int { return len(b.keys) }

func (m *MaterialLookup) Len() int { return len(m.keys) }

// Get resolves a brand name: exact normalized match first, then a substring
// containment scan (either direction) over keys in declaration order. The
// first containment hit wins; that looseness is deliberate and documented.
func (b *BrandLookup) Get(name string) (BrandEntry, bool) {
	q := NormalizeName(name)
	if q == "" {
		return BrandEntry{}, false
	}
	if e, ok := b.entries[q]; ok {
		return e, true
	}
	for _, k := range b.keys {
		if strings.Contains(k, q) || strings.Contains(q, k) {
			return b.entries[k], true
		}
	}
	return BrandEntry{}, false
}

// Get resolves a material name with the same exact-then-substring rule as
// brand lookup.
func (m *MaterialLookup) Get(name string) (MaterialEntry, bool) {
	q := NormalizeName(name)
	if q == "" {
		return MaterialEntry{}, false
	}
	if e, ok := m.entries[q]; ok {
		return e, true
	}
	for _, k := range m.keys {
		if strings.Contains(k, q) || strings.Contains(q, k) {
			return m.entries[k], true
		}
	}
	return MaterialEntry{}, false
}

// NormalizeName lowercases and strips everything that isn't a letter or
// digit: whitespace, hyphens, underscores, punctuation.
func NormalizeName(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ParseBrands flattens a raw brand dataset document.
func ParseBrands(data []byte) (*BrandLookup, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("decode brand dataset: not a JSON object")
	}
	lk := newBrandLookup()
	if err := walkInto(trimmed, lk.addBrandLeaf); err != nil {
		return nil, err
	}
	return lk, nil
}

func (b *BrandLookup) addBrandLeaf(name string, leaf brandLeaf) {
	e := BrandEntry{Multiplier: *leaf.M, Tips: leaf.Tips}
	b.add(NormalizeName(name), e)
	for _, alt := range leaf.Alt {
		b.add(NormalizeName(alt), e)
	}
}

// ParseMaterials flattens a raw material dataset document.
func ParseMaterials(data []byte) (*MaterialLookup, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("decode material dataset: not a JSON object")
	}
	lk := newMaterialLookup()
	if err := walkInto(trimmed, lk.addMaterialLeaf); err != nil {
		return nil, err
	}
	return lk, nil
}

func (m *MaterialLookup) addMaterialLeaf(name string, leaf materialLeaf) {
	e := MaterialEntry{ValueTier: leaf.ValueTier}
	m.add(NormalizeName(name), e)
	for _, term := range leaf.LabelTerms {
		m.add(NormalizeName(term), e)
	}
}

// walkObject streams a JSON object's keys in document order, handing each
// key's raw value to fn.
func walkObject(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode dataset: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decode dataset: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode dataset key: %w", err)
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode dataset value %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	// Trailing '}' token; errors here mean truncated input.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode dataset: %w", err)
	}
	return nil
}

// walkInto recurses depth-first into a namespace object, emitting leaves in
// document order. Non-object values are skipped: a namespace holding a bare
// string or number carries no entry.
func walkInto[L any](raw json.RawMessage, add func(name string, leaf L)) error {
	return walkObject(raw, func(name string, inner json.RawMessage) error {
		var leaf L
		if err := json.Unmarshal(inner, &leaf); err == nil && isLeaf(leaf) {
			add(name, leaf)
			return nil
		}
		trimmed := bytes.TrimSpace(inner)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil
		}
		return walkInto(trimmed, add)
	})
}

func isLeaf(v any) bool {
	switch leaf := v.(type) {
	case brandLeaf:
		return leaf.M != nil
	case materialLeaf:
		return leaf.ValueTier != ""
	default:
		return false
	}
}
