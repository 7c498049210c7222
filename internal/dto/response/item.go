package response

import (
	"time"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/pricing"
)

type ItemResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description,omitempty"`
	SubcategoryID  string                `json:"subcategory_id"`
	PricingType    entity.PricingType    `json:"pricing_type"`
	PricingDetails entity.PricingDetails `json:"pricing_details"`
	IsBookable     bool                  `json:"is_bookable"`
	Availability   *entity.Availability  `json:"availability,omitempty"`
	IsActive       bool                  `json:"is_active"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ItemPriceResponse is the computed breakdown. Nothing here is persisted;
// every call recomputes from current configuration.
type ItemPriceResponse struct {
	ItemID   string            `json:"item_id"`
	ItemName string            `json:"item_name"`
	Quantity int               `json:"quantity"`
	Price    pricing.Breakdown `json:"price"`
}

// AddonGroupResponse is one choice group of optional addons.
type AddonGroupResponse struct {
	GroupID   string          `json:"group_id"`
	GroupName string          `json:"group_name"`
	Addons    []AddonResponse `json:"addons"`
}

// ItemWithAddonsResponse splits an item's addons into mandatory ones, grouped
// optional ones, and ungrouped optional ones.
type ItemWithAddonsResponse struct {
	Item            ItemResponse         `json:"item"`
	MandatoryAddons []AddonResponse      `json:"mandatory_addons"`
	AddonGroups     []AddonGroupResponse `json:"addon_groups"`
	OptionalAddons  []AddonResponse      `json:"optional_addons"`
}

func ItemToResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Description:    item.Description,
		SubcategoryID:  item.SubcategoryID.String(),
		PricingType:    item.PricingType,
		PricingDetails: item.PricingDetails,
		IsBookable:     item.IsBookable,
		Availability:   item.Availability,
		IsActive:       item.IsActive,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}
