package pricing

import (
	"testing"

	"menu-booking/internal/data/entity"
)

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestResolveTaxSubcategoryOverrideWins(t *testing.T) {
	subcategory := &entity.Subcategory{
		TaxApplicable: boolPtr(true),
		TaxPercentage: floatPtr(5),
	}
	category := &entity.Category{TaxApplicable: true, TaxPercentage: 18}

	taxInfo := ResolveTax(subcategory, category)

	if taxInfo.Source != TaxSourceSubcategory {
		t.Errorf("source = %v, want %v", taxInfo.Source, TaxSourceSubcategory)
	}
	if taxInfo.TaxPercentage != 5 {
		t.Errorf("percentage = %v, want 5", taxInfo.TaxPercentage)
	}
}

func TestResolveTaxInheritsFromCategory(t *testing.T) {
	subcategory := &entity.Subcategory{}
	category := &entity.Category{TaxApplicable: true, TaxPercentage: 18}

	taxInfo := ResolveTax(subcategory, category)

	if taxInfo.Source != TaxSourceCategory {
		t.Errorf("source = %v, want %v", taxInfo.Source, TaxSourceCategory)
	}
	if !taxInfo.TaxApplicable || taxInfo.TaxPercentage != 18 {
		t.Errorf("tax = %+v, want category values", taxInfo)
	}
}

// A half-set override pair does not count as an override.
func TestResolveTaxPartialOverrideInherits(t *testing.T) {
	subcategory := &entity.Subcategory{TaxApplicable: boolPtr(true)}
	category := &entity.Category{TaxApplicable: false, TaxPercentage: 0}

	taxInfo := ResolveTax(subcategory, category)

	if taxInfo.Source != TaxSourceCategory {
		t.Errorf("source = %v, want %v", taxInfo.Source, TaxSourceCategory)
	}
}

func TestCalculateTaxAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		taxInfo TaxInfo
		want    float64
	}{
		{name: "applicable", amount: 200, taxInfo: TaxInfo{TaxApplicable: true, TaxPercentage: 10}, want: 20},
		{name: "not applicable", amount: 200, taxInfo: TaxInfo{TaxApplicable: false, TaxPercentage: 10}, want: 0},
		{name: "no tax fallback", amount: 200, taxInfo: NoTax(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTaxAmount(tt.amount, tt.taxInfo); got != tt.want {
				t.Errorf("CalculateTaxAmount(%v) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}
