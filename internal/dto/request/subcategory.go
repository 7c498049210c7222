package request

// Tax override fields come as a pair: both set or both absent. A half-set
// override is rejected by the service.
type CreateSubcategoryRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Description   string   `json:"description,omitempty" validate:"max=500"`
	CategoryID    string   `json:"category_id" validate:"required,uuid4"`
	TaxApplicable *bool    `json:"tax_applicable,omitempty"`
	TaxPercentage *float64 `json:"tax_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type UpdateSubcategoryRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	TaxApplicable *bool    `json:"tax_applicable,omitempty"`
	TaxPercentage *float64 `json:"tax_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	ClearOverride bool     `json:"clear_override,omitempty"`
}

type ListSubcategoriesRequest struct {
	PaginatedRequest
	CategoryID *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	IsActive   *bool   `json:"is_active,omitempty"`
}
