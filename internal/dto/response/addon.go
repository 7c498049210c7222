package response

import (
	"time"

	"menu-booking/internal/data/entity"
)

type AddonResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	ItemID      string    `json:"item_id"`
	IsMandatory bool      `json:"is_mandatory"`
	GroupID     string    `json:"group_id,omitempty"`
	GroupName   string    `json:"group_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AddonTotalResponse struct {
	AddonIDs []string `json:"addon_ids"`
	Total    float64  `json:"total"`
}

func AddonToResponse(addon *entity.Addon) AddonResponse {
	return AddonResponse{
		ID:          addon.ID.String(),
		Name:        addon.Name,
		Price:       addon.Price,
		ItemID:      addon.ItemID.String(),
		IsMandatory: addon.IsMandatory,
		GroupID:     addon.GroupID,
		GroupName:   addon.GroupName,
		IsActive:    addon.IsActive,
		CreatedAt:   addon.CreatedAt,
		UpdatedAt:   addon.UpdatedAt,
	}
}
