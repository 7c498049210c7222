package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// CanTransitionTo enforces the booking state machine:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled.
// Terminal states never transition.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	default:
		return false
	}
}

// Booking reserves an item for [StartTime, EndTime] on a date. TotalPrice is
// an informational snapshot taken at creation; the pricing endpoint remains
// the authoritative source. Bookings are never hard-deleted, cancel is a
// status change.
type Booking struct {
	Base
	ItemID     uuid.UUID     `db:"item_id"`
	UserEmail  string        `db:"user_email"`
	UserName   string        `db:"user_name"`
	UserPhone  string        `db:"user_phone"`
	Date       time.Time     `db:"date"`
	StartTime  string        `db:"start_time"`
	EndTime    string        `db:"end_time"`
	Status     BookingStatus `db:"status"`
	Notes      string        `db:"notes"`
	TotalPrice float64       `db:"total_price"`
	AddonIDs   []uuid.UUID   `db:"addon_ids"`
}
