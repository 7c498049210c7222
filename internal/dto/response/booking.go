package response

import (
	"time"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/pricing"
)

type BookingResponse struct {
	ID         string               `json:"id"`
	ItemID     string               `json:"item_id"`
	ItemName   string               `json:"item_name,omitempty"`
	UserEmail  string               `json:"user_email"`
	UserName   string               `json:"user_name,omitempty"`
	UserPhone  string               `json:"user_phone,omitempty"`
	Date       string               `json:"date"`
	StartTime  string               `json:"start_time"`
	EndTime    string               `json:"end_time"`
	Status     entity.BookingStatus `json:"status"`
	Notes      string               `json:"notes,omitempty"`
	TotalPrice float64              `json:"total_price"`
	AddonIDs   []string             `json:"addon_ids,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

// AvailableSlotsResponse lists each configured slot for a date with its
// computed availability. A date on a non-configured day comes back with an
// empty slot list.
type AvailableSlotsResponse struct {
	ItemID string         `json:"item_id"`
	Date   string         `json:"date"`
	Day    string         `json:"day"`
	Slots  []pricing.Slot `json:"slots"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	addonIDs := make([]string, len(booking.AddonIDs))
	for i, id := range booking.AddonIDs {
		addonIDs[i] = id.String()
	}

	return BookingResponse{
		ID:         booking.ID.String(),
		ItemID:     booking.ItemID.String(),
		UserEmail:  booking.UserEmail,
		UserName:   booking.UserName,
		UserPhone:  booking.UserPhone,
		Date:       booking.Date.Format("2006-01-02"),
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Status:     booking.Status,
		Notes:      booking.Notes,
		TotalPrice: booking.TotalPrice,
		AddonIDs:   addonIDs,
		CreatedAt:  booking.CreatedAt,
	}
}
