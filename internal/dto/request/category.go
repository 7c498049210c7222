package request

type CreateCategoryRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Description   string  `json:"description,omitempty" validate:"max=500"`
	TaxApplicable bool    `json:"tax_applicable"`
	TaxPercentage float64 `json:"tax_percentage" validate:"gte=0,lte=100"`
}

type UpdateCategoryRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	TaxApplicable *bool    `json:"tax_applicable,omitempty"`
	TaxPercentage *float64 `json:"tax_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type ListCategoriesRequest struct {
	PaginatedRequest
	IsActive *bool  `json:"is_active,omitempty"`
	Search   string `json:"search,omitempty"`
}
