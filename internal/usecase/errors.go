package usecase

import "errors"

// Domain errors. Handlers map these to HTTP statuses with errors.Is, so
// services must wrap them, never replace them.
var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrAddonNotFound       = errors.New("addon not found")
	ErrBookingNotFound     = errors.New("booking not found")

	// ErrDuplicateName is returned when a name collides with an existing
	// record, case-insensitively.
	ErrDuplicateName = errors.New("name already in use")

	// ErrValidation covers malformed input: failed struct validation, bad
	// UUIDs, bad dates, bad time strings.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTaxConfig is returned for half-set subcategory overrides and
	// for tax-applicable configs without a percentage.
	ErrInvalidTaxConfig = errors.New("invalid tax configuration")

	// ErrInvalidPricingConfig is returned when pricing details do not match
	// the declared pricing type or fail their per-type validation.
	ErrInvalidPricingConfig = errors.New("invalid pricing configuration")

	// ErrInvalidAvailability is returned when a bookable item's availability
	// is missing or malformed.
	ErrInvalidAvailability = errors.New("invalid availability configuration")

	// ErrItemNotBookable is returned when a booking targets an item without
	// booking enabled.
	ErrItemNotBookable = errors.New("item is not bookable")

	// ErrOutsideAvailability is returned when a requested slot falls outside
	// the item's configured days or time slots.
	ErrOutsideAvailability = errors.New("requested time is outside item availability")

	// ErrBookingConflict is returned when the requested interval overlaps an
	// existing pending or confirmed booking. Bounds are inclusive.
	ErrBookingConflict = errors.New("time slot already booked")

	// ErrAddonItemMismatch is returned when a selected addon does not belong
	// to the item being priced or booked.
	ErrAddonItemMismatch = errors.New("addon does not belong to item")

	// ErrInvalidStatusTransition is returned for moves the booking state
	// machine does not allow.
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)
