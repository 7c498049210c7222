package pricing

import (
	"strings"
	"time"

	"menu-booking/internal/data/entity"
)

// Slot is a configured bookable interval with its computed availability for
// one date.
type Slot struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

// WeekdayName returns the lowercase weekday name for a date.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

func equalDay(a, b string) bool {
	return strings.EqualFold(a, b)
}

// OverlapsInclusive is the booking overlap predicate. Bounds are inclusive on
// both ends: a booking ending at 12:00 conflicts with one starting at 12:00.
// Back-to-back reservations are deliberately rejected.
func OverlapsInclusive(aStart, aEnd, bStart, bEnd string) bool {
	return aStart <= bEnd && aEnd >= bStart
}

// DayConfigured reports whether a weekday name is in the availability config.
func DayConfigured(availability *entity.Availability, day string) bool {
	for _, configured := range availability.Days {
		if equalDay(configured, day) {
			return true
		}
	}
	return false
}

// MarkSlots evaluates each configured slot against existing bookings. Only
// pending and confirmed bookings block a slot; callers filter by status
// before passing them in. Slots come back in configured order, unmerged.
func MarkSlots(slots []entity.TimeSlot, bookings []*entity.Booking) []Slot {
	marked := make([]Slot, len(slots))
	for i, slot := range slots {
		booked := false
		for _, booking := range bookings {
			if OverlapsInclusive(slot.StartTime, slot.EndTime, booking.StartTime, booking.EndTime) {
				booked = true
				break
			}
		}
		marked[i] = Slot{
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			IsAvailable: !booked,
		}
	}
	return marked
}
