package pricing

import (
	"regexp"
	"strings"

	"menu-booking/internal/data/entity"
)

// Overlap validation runs at item create/update time only. The engine trusts
// stored configuration at read time; this is the write-time gate that makes
// that trust hold.

var timeFormatRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTimeFormat reports whether a string is a HH:MM 24-hour time.
func IsValidTimeFormat(t string) bool {
	return timeFormatRegex.MatchString(t)
}

// IsEndAfterStart reports whether end is strictly after start, both HH:MM.
func IsEndAfterStart(start, end string) bool {
	return end > start
}

// ValidateTieredPricing reports whether no two tiers overlap. Tier ranges
// are closed on both ends, so [1,10] and [11,20] are adjacent, not
// overlapping. Empty and single-tier inputs are trivially valid.
func ValidateTieredPricing(tiers []entity.Tier) bool {
	for i := 0; i < len(tiers); i++ {
		for j := i + 1; j < len(tiers); j++ {
			if tiers[i].MinQuantity <= tiers[j].MaxQuantity &&
				tiers[i].MaxQuantity >= tiers[j].MinQuantity {
				return false
			}
		}
	}
	return true
}

// ValidateTimeWindows reports whether no two windows on the same day overlap.
// Day names compare case-insensitively; windows on different days never
// conflict. Comparison is lexicographic on HH:MM, ranges closed on both ends.
func ValidateTimeWindows(windows []entity.TimeWindow) bool {
	byDay := make(map[string][]entity.TimeWindow)
	for _, window := range windows {
		day := strings.ToLower(window.DayOfWeek)
		byDay[day] = append(byDay[day], window)
	}

	for _, dayWindows := range byDay {
		for i := 0; i < len(dayWindows); i++ {
			for j := i + 1; j < len(dayWindows); j++ {
				if dayWindows[i].StartTime <= dayWindows[j].EndTime &&
					dayWindows[i].EndTime >= dayWindows[j].StartTime {
					return false
				}
			}
		}
	}
	return true
}
