package pricing

import (
	"testing"
	"time"

	"menu-booking/internal/data/entity"
)

func TestWeekdayName(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if got := WeekdayName(monday); got != "monday" {
		t.Errorf("WeekdayName() = %q, want %q", got, "monday")
	}
}

func TestOverlapsInclusive(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{name: "disjoint", aStart: "09:00", aEnd: "10:00", bStart: "11:00", bEnd: "12:00", want: false},
		{name: "overlapping", aStart: "09:00", aEnd: "11:00", bStart: "10:00", bEnd: "12:00", want: true},
		{name: "containment", aStart: "09:00", aEnd: "14:00", bStart: "10:00", bEnd: "11:00", want: true},
		// Back-to-back intervals conflict: bounds are inclusive on both ends.
		{name: "shared boundary", aStart: "10:00", aEnd: "12:00", bStart: "12:00", bEnd: "14:00", want: true},
		{name: "identical", aStart: "10:00", aEnd: "12:00", bStart: "10:00", bEnd: "12:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapsInclusive(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("OverlapsInclusive(%s-%s, %s-%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestDayConfigured(t *testing.T) {
	availability := &entity.Availability{Days: []string{"Monday", "wednesday"}}

	if !DayConfigured(availability, "monday") {
		t.Error("expected monday to match case-insensitively")
	}
	if !DayConfigured(availability, "wednesday") {
		t.Error("expected wednesday configured")
	}
	if DayConfigured(availability, "sunday") {
		t.Error("expected sunday not configured")
	}
}

func TestMarkSlots(t *testing.T) {
	slots := []entity.TimeSlot{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "10:30", EndTime: "11:30"},
		{StartTime: "12:00", EndTime: "13:00"},
	}
	bookings := []*entity.Booking{
		{StartTime: "10:30", EndTime: "11:30", Status: entity.BookingStatusConfirmed},
	}

	marked := MarkSlots(slots, bookings)

	if len(marked) != 3 {
		t.Fatalf("got %d slots, want 3", len(marked))
	}
	if !marked[0].IsAvailable {
		t.Error("slot 09:00-10:00 should be available")
	}
	if marked[1].IsAvailable {
		t.Error("slot 10:30-11:30 should be blocked")
	}
	if !marked[2].IsAvailable {
		t.Error("slot 12:00-13:00 should be available")
	}
}

// A booking ending exactly when a slot starts blocks the slot.
func TestMarkSlotsInclusiveBoundary(t *testing.T) {
	slots := []entity.TimeSlot{{StartTime: "12:00", EndTime: "13:00"}}
	bookings := []*entity.Booking{{StartTime: "11:00", EndTime: "12:00"}}

	marked := MarkSlots(slots, bookings)

	if marked[0].IsAvailable {
		t.Error("slot sharing a boundary with a booking should be blocked")
	}
}

func TestMarkSlotsNoBookings(t *testing.T) {
	slots := []entity.TimeSlot{{StartTime: "09:00", EndTime: "10:00"}}

	marked := MarkSlots(slots, nil)

	if !marked[0].IsAvailable {
		t.Error("slot with no bookings should be available")
	}
}
