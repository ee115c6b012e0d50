package model

// Item is the inventory record the pricing engine consumes. The engine never
// persists it; the storage layer hands us a fully-populated value and we hand
// back plain result structs.
//
// Optional blocks are pointers so "absent" and "zero" stay distinct. The
// calculators take the narrow sub-views below rather than the whole item.
type Item struct {
	Category    Category
	Brand       string
	Color       Color
	Material    Material
	Size        Size
	Condition   Condition
	Era         string
	Description string

	Jewelry *JewelryDetails // only for jewelry items
	Shoes   *ShoeDetails    // only for shoes
	Trend   *TrendDetails   // optional cut/style trend signals

	Acquisition Acquisition
	Repairs     []Repair
}

type Category struct {
	Primary   string
	Secondary string
}

type Color struct {
	Primary   string
	Secondary string
}

// Material holds the declared composition. Percentages may not sum to 100;
// the material calculator normalizes before weighting.
type Material struct {
	Primary   *MaterialPart
	Secondary []MaterialPart
}

type MaterialPart struct {
	Name    string
	Percent float64
}

type Size struct {
	Label        string // whatever the tag says: "M", "8", "9.5"
	Gender       string
	Measurements map[string]string
}

type Condition struct {
	Level string // new_with_tags .. for_parts, or empty
	Flaws []Flaw
}

type Flaw struct {
	Type               string
	Severity           string // minor, moderate, significant
	Location           string
	Repairable         bool
	AffectsWearability bool
}

type JewelryDetails struct {
	MetalType   string
	ClosureType string
	RingSize    string
}

type ShoeDetails struct {
	Width string // narrow, standard, wide
}

type TrendDetails struct {
	Cut   string // wide_leg, straight, skinny, ...
	Style string // y2k, minimalist, boho, ...
}

type Acquisition struct {
	Price   float64
	TaxPaid float64
	Date    string
	Store   string
}

type Repair struct {
	Description string
	Cost        float64
	Completed   bool
}

// CostBasis is purchase price plus tax: the baseline a resale suggestion is
// built on. Repairs count toward total cost when computing profit, not toward
// the pricing baseline.
func (it *Item) CostBasis() float64 {
	return it.Acquisition.Price + it.Acquisition.TaxPaid
}

// TotalCost is everything sunk into the item: cost basis plus completed
// repairs. Pending repairs don't count until they're done.
func (it *Item) TotalCost() float64 {
	total := it.CostBasis()
	for _, r := range it.Repairs {
		if r.Completed {
			total += r.Cost
		}
	}
	return total
}

// MaterialParts returns the composition as a flat list, primary first.
func (it *Item) MaterialParts() []MaterialPart {
	var parts []MaterialPart
	if it.Material.Primary != nil {
		parts = append(parts, *it.Material.Primary)
	}
	parts = append(parts, it.Material.Secondary...)
	return parts
}
