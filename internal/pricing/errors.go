package pricing

import "errors"

var (
	// ErrUnknownPricingType is returned when an item carries a pricing type
	// the engine has no strategy for.
	ErrUnknownPricingType = errors.New("unknown pricing type")

	// ErrNoTiers is returned for tiered items with no tiers configured.
	ErrNoTiers = errors.New("no tiers defined for tiered pricing")

	// ErrNoMatchingTier is returned when no tier covers the requested quantity.
	ErrNoMatchingTier = errors.New("no tier found for quantity")

	// ErrNoDiscountConfig is returned for discounted items with no discount
	// configuration populated.
	ErrNoDiscountConfig = errors.New("no discount configuration found")

	// ErrNoTimeWindows is returned for dynamic items with no windows configured.
	ErrNoTimeWindows = errors.New("no time windows defined for dynamic pricing")

	// ErrOutsideTimeWindows is returned when the current time falls outside
	// all windows and the item is flagged unavailable outside them.
	ErrOutsideTimeWindows = errors.New("item is unavailable outside defined time windows")
)
