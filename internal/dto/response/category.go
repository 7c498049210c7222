package response

import (
	"time"

	"menu-booking/internal/data/entity"
)

type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	TaxApplicable bool      `json:"tax_applicable"`
	TaxPercentage float64   `json:"tax_percentage"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryDetailResponse includes the category's active subcategories.
type CategoryDetailResponse struct {
	CategoryResponse
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// TaxChangeImpactResponse previews a category tax change: how many
// subcategories inherit the new rate and how many items reprice. Subcategories
// with their own override are unaffected.
type TaxChangeImpactResponse struct {
	CategoryID            string  `json:"category_id"`
	CurrentTaxApplicable  bool    `json:"current_tax_applicable"`
	CurrentTaxPercentage  float64 `json:"current_tax_percentage"`
	NewTaxPercentage      float64 `json:"new_tax_percentage"`
	AffectedSubcategories int     `json:"affected_subcategories"`
	AffectedItems         int64   `json:"affected_items"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:            category.ID.String(),
		Name:          category.Name,
		Description:   category.Description,
		TaxApplicable: category.TaxApplicable,
		TaxPercentage: category.TaxPercentage,
		IsActive:      category.IsActive,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}
