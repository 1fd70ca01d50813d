package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product categories form a closed enumeration.
const (
	CategoryBodyFragranceMale   = "body-fragrance-male"
	CategoryBodyFragranceFemale = "body-fragrance-female"
	CategoryHomeFragrance       = "home-fragrance"
)

// ValidCategory reports whether the value belongs to the category enumeration.
func ValidCategory(value string) bool {
	switch value {
	case CategoryBodyFragranceMale, CategoryBodyFragranceFemale, CategoryHomeFragrance:
		return true
	}
	return false
}

// Product is a storefront catalog entry. Prices are integer major units
// tracked as a parallel NGN/USD pair, never converted. When Sizes is
// non-empty it is the sole source of truth for price; the base pair is a
// fallback for size-less purchases.
type Product struct {
	BaseModel
	Slug             string         `gorm:"uniqueIndex" json:"slug"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"shortDescription"`
	Price            int64          `json:"price"`
	PriceUSD         int64          `json:"priceUSD"`
	Currency         string         `json:"currency"`
	Category         string         `gorm:"index" json:"category"`
	Subcategory      string         `json:"subcategory,omitempty"`
	Images           pq.StringArray `gorm:"type:text[]" json:"images"`
	InStock          bool           `json:"inStock"`
	StockQuantity    int            `json:"stockQuantity"`
	Sizes            []ProductSize  `json:"sizes,omitempty"`
	NotesTop         pq.StringArray `gorm:"type:text[]" json:"-"`
	NotesMiddle      pq.StringArray `gorm:"type:text[]" json:"-"`
	NotesBase        pq.StringArray `gorm:"type:text[]" json:"-"`
	Featured         bool           `json:"featured"`
	New              bool           `gorm:"column:is_new" json:"new"`
	ComingSoon       bool           `json:"comingSoon"`
	WeightGrams      *int           `json:"weightGrams,omitempty"`
}

// HasNotes reports whether the fragrance-note triad is populated.
func (p *Product) HasNotes() bool {
	return len(p.NotesTop) > 0 || len(p.NotesMiddle) > 0 || len(p.NotesBase) > 0
}

// ProductSize is a named sub-SKU carrying its own price pair, overriding the
// product's base pair when selected.
type ProductSize struct {
	BaseModel
	ProductID    uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Label        string    `json:"size"`
	Price        int64     `json:"price"`
	PriceUSD     int64     `json:"priceUSD"`
	DisplayOrder int       `json:"-"`
}
