package entity

import (
	"github.com/google/uuid"
)

// Category is the root of the tax hierarchy. Items never store tax values;
// they inherit from here unless their subcategory overrides.
type Category struct {
	Base
	Name          string  `db:"name"`
	Description   string  `db:"description"`
	TaxApplicable bool    `db:"tax_applicable"`
	TaxPercentage float64 `db:"tax_percentage"`
	IsActive      bool    `db:"is_active"`
}

// Subcategory belongs to exactly one category. TaxApplicable/TaxPercentage
// form an optional override pair: both set or both nil, never one of them.
type Subcategory struct {
	Base
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	CategoryID    uuid.UUID `db:"category_id"`
	TaxApplicable *bool     `db:"tax_applicable"`
	TaxPercentage *float64  `db:"tax_percentage"`
	IsActive      bool      `db:"is_active"`
}

// HasTaxOverride reports whether the subcategory overrides category tax.
func (s *Subcategory) HasTaxOverride() bool {
	return s.TaxApplicable != nil && s.TaxPercentage != nil
}
