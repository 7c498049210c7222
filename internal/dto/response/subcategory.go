package response

import (
	"time"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/pricing"
)

type SubcategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CategoryID    string    `json:"category_id"`
	TaxApplicable *bool     `json:"tax_applicable,omitempty"`
	TaxPercentage *float64  `json:"tax_percentage,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SubcategoryDetailResponse carries the resolved effective tax alongside the
// stored override fields, so clients can tell inherited from overridden.
type SubcategoryDetailResponse struct {
	SubcategoryResponse
	EffectiveTax pricing.TaxInfo `json:"effective_tax"`
}

func SubcategoryToResponse(subcategory *entity.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:            subcategory.ID.String(),
		Name:          subcategory.Name,
		Description:   subcategory.Description,
		CategoryID:    subcategory.CategoryID.String(),
		TaxApplicable: subcategory.TaxApplicable,
		TaxPercentage: subcategory.TaxPercentage,
		IsActive:      subcategory.IsActive,
		CreatedAt:     subcategory.CreatedAt,
		UpdatedAt:     subcategory.UpdatedAt,
	}
}
