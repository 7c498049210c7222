package request

import (
	"menu-booking/internal/data/entity"
)

type CreateItemRequest struct {
	Name           string                `json:"name" validate:"required,min=1,max=100"`
	Description    string                `json:"description,omitempty" validate:"max=1000"`
	SubcategoryID  string                `json:"subcategory_id" validate:"required,uuid4"`
	PricingType    string                `json:"pricing_type" validate:"required,oneof=static tiered complimentary discounted dynamic_time_based"`
	PricingDetails entity.PricingDetails `json:"pricing_details"`
	IsBookable     bool                  `json:"is_bookable"`
	Availability   *entity.Availability  `json:"availability,omitempty"`
}

type UpdateItemRequest struct {
	Name           *string                `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description    *string                `json:"description,omitempty" validate:"omitempty,max=1000"`
	SubcategoryID  *string                `json:"subcategory_id,omitempty" validate:"omitempty,uuid4"`
	PricingType    *string                `json:"pricing_type,omitempty" validate:"omitempty,oneof=static tiered complimentary discounted dynamic_time_based"`
	PricingDetails *entity.PricingDetails `json:"pricing_details,omitempty"`
	IsBookable     *bool                  `json:"is_bookable,omitempty"`
	Availability   *entity.Availability   `json:"availability,omitempty"`
}

type ListItemsRequest struct {
	PaginatedRequest
	SubcategoryID *string `json:"subcategory_id,omitempty" validate:"omitempty,uuid4"`
	PricingType   string  `json:"pricing_type,omitempty" validate:"omitempty,oneof=static tiered complimentary discounted dynamic_time_based"`
	IsBookable    *bool   `json:"is_bookable,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	Search        string  `json:"search,omitempty"`
}

// ItemPriceRequest carries the query inputs of a price calculation. At is an
// optional RFC 3339 timestamp for evaluating dynamic time-based pricing at a
// moment other than now. Quantity is a pointer so an omitted quantity (defaults
// to 1) stays distinct from an explicit 0, which must reach tier matching.
type ItemPriceRequest struct {
	Quantity *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	AddonIDs []string `json:"addon_ids,omitempty" validate:"omitempty,dive,uuid4"`
	At       string   `json:"at,omitempty"`
}
