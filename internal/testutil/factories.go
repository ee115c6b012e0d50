package testutil

import (
	"github.com/reselltools/pricewise/internal/model"
)

// NewItem builds a plain clothing item with a known cost basis. Tests mutate
// the fields they care about.
func NewItem() *model.Item {
	return &model.Item{
		Category:  model.Category{Primary: "clothing", Secondary: "dress"},
		Brand:     "testbrand",
		Color:     model.Color{Primary: "black"},
		Size:      model.Size{Label: "M", Gender: "women"},
		Condition: model.Condition{Level: "excellent"},
		Era:       "contemporary",
		Acquisition: model.Acquisition{
			Price:   25.00,
			TaxPaid: 2.50,
			Store:   "Test Thrift",
		},
	}
}

// NewJewelryItem builds a ring with jewelry details populated.
func NewJewelryItem() *model.Item {
	item := NewItem()
	item.Category = model.Category{Primary: "jewelry", Secondary: "ring"}
	item.Size = model.Size{Label: "7"}
	item.Jewelry = &model.JewelryDetails{
		MetalType:   "sterling silver",
		ClosureType: "fixed",
		RingSize:    "7",
	}
	return item
}

// NewShoeItem builds shoes with a width.
func NewShoeItem(size, width string) *model.Item {
	item := NewItem()
	item.Category = model.Category{Primary: "shoes", Secondary: "heels"}
	item.Size = model.Size{Label: size}
	item.Shoes = &model.ShoeDetails{Width: width}
	return item
}

// WithMaterials sets the item's composition, first part primary.
func WithMaterials(item *model.Item, parts ...model.MaterialPart) *model.Item {
	if len(parts) == 0 {
		item.Material = model.Material{}
		return item
	}
	item.Material = model.Material{Primary: &parts[0], Secondary: parts[1:]}
	return item
}
