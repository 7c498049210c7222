package pricing

import (
	"fmt"
	"time"

	"menu-booking/internal/data/entity"
)

// Prices are never stored. Every request runs through this engine so that
// changing a category tax or an item's pricing config takes effect
// immediately, with no cached value to invalidate.

// Context carries the per-request inputs of a price calculation.
type Context struct {
	Quantity            int
	CurrentTime         time.Time
	SelectedAddonPrices []float64
}

// Breakdown is the full result of one price calculation, including the
// audit string describing which rule produced the base price.
type Breakdown struct {
	PricingType    entity.PricingType `json:"pricing_type"`
	BasePrice      float64            `json:"base_price"`
	AppliedRule    string             `json:"applied_rule"`
	DiscountAmount float64            `json:"discount_amount"`
	AddonsTotal    float64            `json:"addons_total"`
	Subtotal       float64            `json:"subtotal"`
	TaxInfo        TaxInfo            `json:"tax_info"`
	TaxAmount      float64            `json:"tax_amount"`
	FinalPrice     float64            `json:"final_price"`
}

// CalculatePrice computes the price breakdown for an item. CurrentTime
// defaults to now. Quantity is taken as given: callers resolve an omitted
// quantity to 1 before calling, and an explicit 0 reaches tier matching
// (and fails it). Quantity multiplies the base price only, never the addons.
func CalculatePrice(item *entity.Item, taxInfo TaxInfo, ctx Context) (*Breakdown, error) {
	quantity := ctx.Quantity
	currentTime := ctx.CurrentTime
	if currentTime.IsZero() {
		currentTime = time.Now()
	}

	var (
		basePrice      float64
		appliedRule    string
		discountAmount float64
		err            error
	)

	switch item.PricingType {
	case entity.PricingTypeStatic:
		basePrice, appliedRule = calculateStaticPrice(item.PricingDetails.Static)

	case entity.PricingTypeTiered:
		basePrice, appliedRule, err = calculateTieredPrice(item.PricingDetails.Tiered, quantity)

	case entity.PricingTypeComplimentary:
		basePrice, appliedRule = 0, "Complimentary (Free)"

	case entity.PricingTypeDiscounted:
		basePrice, appliedRule, discountAmount, err = calculateDiscountedPrice(item.PricingDetails.Discounted)

	case entity.PricingTypeDynamicTimeBased:
		basePrice, appliedRule, err = calculateDynamicTimeBasedPrice(item.PricingDetails.DynamicTime, currentTime)

	default:
		err = fmt.Errorf("%w: %s", ErrUnknownPricingType, item.PricingType)
	}

	if err != nil {
		return nil, err
	}

	addonsTotal := 0.0
	for _, price := range ctx.SelectedAddonPrices {
		addonsTotal += price
	}

	subtotal := basePrice*float64(quantity) + addonsTotal
	taxAmount := CalculateTaxAmount(subtotal, taxInfo)

	return &Breakdown{
		PricingType:    item.PricingType,
		BasePrice:      basePrice,
		AppliedRule:    appliedRule,
		DiscountAmount: discountAmount,
		AddonsTotal:    addonsTotal,
		Subtotal:       subtotal,
		TaxInfo:        taxInfo,
		TaxAmount:      taxAmount,
		FinalPrice:     subtotal + taxAmount,
	}, nil
}

func calculateStaticPrice(details *entity.StaticPricing) (float64, string) {
	staticPrice := 0.0
	if details != nil {
		staticPrice = details.StaticPrice
	}
	return staticPrice, fmt.Sprintf("Static price: %g", staticPrice)
}

func calculateTieredPrice(details *entity.TieredPricing, quantity int) (float64, string, error) {
	if details == nil || len(details.Tiers) == 0 {
		return 0, "", ErrNoTiers
	}

	for _, tier := range details.Tiers {
		if quantity >= tier.MinQuantity && quantity <= tier.MaxQuantity {
			rule := fmt.Sprintf("Tier: %d-%d units @ %g per unit",
				tier.MinQuantity, tier.MaxQuantity, tier.PricePerUnit)
			return tier.PricePerUnit, rule, nil
		}
	}

	return 0, "", fmt.Errorf("%w %d", ErrNoMatchingTier, quantity)
}

func calculateDiscountedPrice(details *entity.DiscountPricing) (float64, string, float64, error) {
	if details == nil {
		return 0, "", 0, ErrNoDiscountConfig
	}

	var discountAmount float64
	finalPrice := details.BasePrice
	suffix := ""

	switch details.DiscountType {
	case entity.DiscountTypeFlat:
		discountAmount = details.DiscountValue
		finalPrice = max(0, details.BasePrice-details.DiscountValue)
	case entity.DiscountTypePercentage:
		discountAmount = details.BasePrice * details.DiscountValue / 100
		finalPrice = max(0, details.BasePrice-discountAmount)
		suffix = "%"
	}

	rule := fmt.Sprintf("Base: %g, Discount: %g%s = %g",
		details.BasePrice, details.DiscountValue, suffix, finalPrice)
	return finalPrice, rule, discountAmount, nil
}

func calculateDynamicTimeBasedPrice(details *entity.DynamicTimePricing, currentTime time.Time) (float64, string, error) {
	if details == nil || len(details.TimeWindows) == 0 {
		return 0, "", ErrNoTimeWindows
	}

	currentDay := WeekdayName(currentTime)
	currentClock := currentTime.Format("15:04")

	for _, window := range details.TimeWindows {
		dayMatches := equalDay(window.DayOfWeek, currentDay)
		timeMatches := currentClock >= window.StartTime && currentClock <= window.EndTime
		if dayMatches && timeMatches {
			rule := fmt.Sprintf("%s %s-%s: %g",
				window.DayOfWeek, window.StartTime, window.EndTime, window.Price)
			return window.Price, rule, nil
		}
	}

	if details.UnavailableOutsideWindows {
		return 0, "", ErrOutsideTimeWindows
	}

	// Outside every window but still available: the first configured window's
	// price applies as the default.
	return details.TimeWindows[0].Price, "Default price (outside time windows)", nil
}
