package request

type CreateAddonRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	ItemID      string  `json:"item_id" validate:"required,uuid4"`
	IsMandatory bool    `json:"is_mandatory"`
	GroupID     string  `json:"group_id,omitempty" validate:"max=100"`
	GroupName   string  `json:"group_name,omitempty" validate:"max=100"`
}

type UpdateAddonRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsMandatory *bool    `json:"is_mandatory,omitempty"`
	GroupID     *string  `json:"group_id,omitempty" validate:"omitempty,max=100"`
	GroupName   *string  `json:"group_name,omitempty" validate:"omitempty,max=100"`
}

type CalculateAddonTotalRequest struct {
	AddonIDs []string `json:"addon_ids" validate:"required,min=1,dive,uuid4"`
}
