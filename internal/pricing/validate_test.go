package pricing

import (
	"testing"

	"menu-booking/internal/data/entity"
)

func TestIsValidTimeFormat(t *testing.T) {
	valid := []string{"00:00", "9:30", "09:30", "23:59", "12:00"}
	for _, v := range valid {
		if !IsValidTimeFormat(v) {
			t.Errorf("IsValidTimeFormat(%q) = false, want true", v)
		}
	}

	invalid := []string{"24:00", "12:60", "noon", "12", "12:5", ""}
	for _, v := range invalid {
		if IsValidTimeFormat(v) {
			t.Errorf("IsValidTimeFormat(%q) = true, want false", v)
		}
	}
}

func TestIsEndAfterStart(t *testing.T) {
	if !IsEndAfterStart("09:00", "12:00") {
		t.Error("expected 12:00 after 09:00")
	}
	if IsEndAfterStart("12:00", "12:00") {
		t.Error("equal times must not pass")
	}
	if IsEndAfterStart("12:00", "09:00") {
		t.Error("expected 09:00 not after 12:00")
	}
}

func TestValidateTieredPricing(t *testing.T) {
	tests := []struct {
		name  string
		tiers []entity.Tier
		want  bool
	}{
		{name: "empty", tiers: nil, want: true},
		{name: "single", tiers: []entity.Tier{{MinQuantity: 1, MaxQuantity: 10}}, want: true},
		{
			name: "adjacent ranges are valid",
			tiers: []entity.Tier{
				{MinQuantity: 1, MaxQuantity: 10},
				{MinQuantity: 11, MaxQuantity: 20},
			},
			want: true,
		},
		{
			name: "shared boundary overlaps",
			tiers: []entity.Tier{
				{MinQuantity: 1, MaxQuantity: 10},
				{MinQuantity: 10, MaxQuantity: 20},
			},
			want: false,
		},
		{
			name: "containment overlaps",
			tiers: []entity.Tier{
				{MinQuantity: 1, MaxQuantity: 50},
				{MinQuantity: 5, MaxQuantity: 10},
			},
			want: false,
		},
		{
			name: "unsorted input still detected",
			tiers: []entity.Tier{
				{MinQuantity: 20, MaxQuantity: 30},
				{MinQuantity: 1, MaxQuantity: 25},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateTieredPricing(tt.tiers); got != tt.want {
				t.Errorf("ValidateTieredPricing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateTimeWindows(t *testing.T) {
	tests := []struct {
		name    string
		windows []entity.TimeWindow
		want    bool
	}{
		{name: "empty", windows: nil, want: true},
		{
			name: "same day disjoint",
			windows: []entity.TimeWindow{
				{DayOfWeek: "monday", StartTime: "09:00", EndTime: "11:00"},
				{DayOfWeek: "monday", StartTime: "12:00", EndTime: "14:00"},
			},
			want: true,
		},
		{
			name: "same day overlapping",
			windows: []entity.TimeWindow{
				{DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00"},
				{DayOfWeek: "monday", StartTime: "11:00", EndTime: "14:00"},
			},
			want: false,
		},
		{
			name: "different days never conflict",
			windows: []entity.TimeWindow{
				{DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00"},
				{DayOfWeek: "tuesday", StartTime: "09:00", EndTime: "12:00"},
			},
			want: true,
		},
		{
			name: "day names compare case-insensitively",
			windows: []entity.TimeWindow{
				{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00"},
				{DayOfWeek: "monday", StartTime: "10:00", EndTime: "14:00"},
			},
			want: false,
		},
		{
			name: "shared boundary on same day overlaps",
			windows: []entity.TimeWindow{
				{DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00"},
				{DayOfWeek: "monday", StartTime: "12:00", EndTime: "14:00"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateTimeWindows(tt.windows); got != tt.want {
				t.Errorf("ValidateTimeWindows() = %v, want %v", got, tt.want)
			}
		})
	}
}
