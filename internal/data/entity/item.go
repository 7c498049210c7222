package entity

import (
	"github.com/google/uuid"
)

type PricingType string

const (
	PricingTypeStatic           PricingType = "static"
	PricingTypeTiered           PricingType = "tiered"
	PricingTypeComplimentary    PricingType = "complimentary"
	PricingTypeDiscounted       PricingType = "discounted"
	PricingTypeDynamicTimeBased PricingType = "dynamic_time_based"
)

type DiscountType string

const (
	DiscountTypeFlat       DiscountType = "flat"
	DiscountTypePercentage DiscountType = "percentage"
)

// Tier is a quantity range with its own per-unit price. Ranges are closed
// on both ends and must not overlap across tiers of one item.
type Tier struct {
	MinQuantity  int     `json:"min_quantity"`
	MaxQuantity  int     `json:"max_quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
}

// TimeWindow is a (day, start, end) interval with its own price, used by
// dynamic time-based pricing. Times are HH:MM 24-hour strings.
type TimeWindow struct {
	DayOfWeek string  `json:"day_of_week"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Price     float64 `json:"price"`
}

type StaticPricing struct {
	StaticPrice float64 `json:"static_price"`
}

type TieredPricing struct {
	Tiers []Tier `json:"tiers"`
}

type ComplimentaryPricing struct{}

// DiscountPricing carries its own base price. There is no separate "list
// price" concept, so this base is the only source of the pre-discount value.
type DiscountPricing struct {
	BasePrice     float64      `json:"base_price"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
}

type DynamicTimePricing struct {
	TimeWindows               []TimeWindow `json:"time_windows"`
	UnavailableOutsideWindows bool         `json:"unavailable_outside_windows"`
}

// PricingDetails is a sum type: exactly one variant is populated, and it must
// match the item's PricingType. Stored as jsonb.
type PricingDetails struct {
	Static        *StaticPricing        `json:"static,omitempty"`
	Tiered        *TieredPricing        `json:"tiered,omitempty"`
	Complimentary *ComplimentaryPricing `json:"complimentary,omitempty"`
	Discounted    *DiscountPricing      `json:"discounted,omitempty"`
	DynamicTime   *DynamicTimePricing   `json:"dynamic_time_based,omitempty"`
}

// PopulatedVariants counts the non-nil variants.
func (d PricingDetails) PopulatedVariants() int {
	count := 0
	if d.Static != nil {
		count++
	}
	if d.Tiered != nil {
		count++
	}
	if d.Complimentary != nil {
		count++
	}
	if d.Discounted != nil {
		count++
	}
	if d.DynamicTime != nil {
		count++
	}
	return count
}

// MatchesType reports whether the populated variant matches the pricing type.
func (d PricingDetails) MatchesType(t PricingType) bool {
	switch t {
	case PricingTypeStatic:
		return d.Static != nil
	case PricingTypeTiered:
		return d.Tiered != nil
	case PricingTypeComplimentary:
		return d.Complimentary != nil
	case PricingTypeDiscounted:
		return d.Discounted != nil
	case PricingTypeDynamicTimeBased:
		return d.DynamicTime != nil
	default:
		return false
	}
}

// TimeSlot is a configured bookable interval within a day.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Availability describes when a bookable item can be reserved. Stored as
// jsonb; required iff the item is bookable.
type Availability struct {
	Days      []string   `json:"days"`
	TimeSlots []TimeSlot `json:"time_slots"`
}

// Item never stores tax values and never stores a computed price. Tax is
// resolved through the subcategory/category chain; price is recalculated on
// every request.
type Item struct {
	Base
	Name           string         `db:"name"`
	Description    string         `db:"description"`
	SubcategoryID  uuid.UUID      `db:"subcategory_id"`
	PricingType    PricingType    `db:"pricing_type"`
	PricingDetails PricingDetails `db:"pricing_details"`
	IsBookable     bool           `db:"is_bookable"`
	Availability   *Availability  `db:"availability"`
	IsActive       bool           `db:"is_active"`
}
