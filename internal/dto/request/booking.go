package request

type CreateBookingRequest struct {
	ItemID    string   `json:"item_id" validate:"required,uuid4"`
	UserEmail string   `json:"user_email" validate:"required,email"`
	UserName  string   `json:"user_name,omitempty" validate:"max=100"`
	UserPhone string   `json:"user_phone,omitempty" validate:"max=30"`
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string   `json:"start_time" validate:"required"`
	EndTime   string   `json:"end_time" validate:"required"`
	Quantity  *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Notes     string   `json:"notes,omitempty" validate:"max=500"`
	AddonIDs  []string `json:"addon_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	ItemID    *string `json:"item_id,omitempty" validate:"omitempty,uuid4"`
	UserEmail string  `json:"user_email,omitempty" validate:"omitempty,email"`
	Status    string  `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	DateFrom  string  `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo    string  `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type AvailableSlotsRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
