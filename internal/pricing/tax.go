package pricing

import (
	"menu-booking/internal/data/entity"
)

type TaxSource string

const (
	TaxSourceSubcategory TaxSource = "subcategory"
	TaxSourceCategory    TaxSource = "category"
	TaxSourceNone        TaxSource = "none"
)

// TaxInfo is the effective tax configuration for an item, resolved through
// the subcategory -> category inheritance chain.
type TaxInfo struct {
	TaxApplicable bool      `json:"tax_applicable"`
	TaxPercentage float64   `json:"tax_percentage"`
	Source        TaxSource `json:"source"`
}

// NoTax is the fail-closed fallback used when the hierarchy cannot be resolved.
func NoTax() TaxInfo {
	return TaxInfo{TaxApplicable: false, TaxPercentage: 0, Source: TaxSourceNone}
}

// ResolveTax resolves effective tax from an already-loaded subcategory and
// its category. The subcategory override wins when both override fields are
// set; otherwise the category values apply.
func ResolveTax(subcategory *entity.Subcategory, category *entity.Category) TaxInfo {
	if subcategory.HasTaxOverride() {
		return TaxInfo{
			TaxApplicable: *subcategory.TaxApplicable,
			TaxPercentage: *subcategory.TaxPercentage,
			Source:        TaxSourceSubcategory,
		}
	}

	return TaxInfo{
		TaxApplicable: category.TaxApplicable,
		TaxPercentage: category.TaxPercentage,
		Source:        TaxSourceCategory,
	}
}

// CalculateTaxAmount returns the tax for an amount. No rounding is applied;
// the caller's currency precision decides.
func CalculateTaxAmount(amount float64, taxInfo TaxInfo) float64 {
	if !taxInfo.TaxApplicable {
		return 0
	}
	return amount * taxInfo.TaxPercentage / 100
}
