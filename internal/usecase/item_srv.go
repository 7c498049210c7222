package usecase

import (
	"context"
	"fmt"
	"time"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/data/repository"
	"menu-booking/internal/dto/request"
	"menu-booking/internal/dto/response"
	"menu-booking/internal/pricing"
	"menu-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ItemService interface {
	CreateItem(ctx context.Context, req *request.CreateItemRequest) (*response.ItemResponse, error)
	GetItemByID(ctx context.Context, itemID string) (*response.ItemResponse, error)
	GetItemWithAddons(ctx context.Context, itemID string) (*response.ItemWithAddonsResponse, error)
	GetItemPrice(ctx context.Context, itemID string, req *request.ItemPriceRequest) (*response.ItemPriceResponse, error)
	ListItems(ctx context.Context, req *request.ListItemsRequest) (*response.PaginatedResponse[response.ItemResponse], error)
	UpdateItem(ctx context.Context, itemID string, req *request.UpdateItemRequest) (*response.ItemResponse, error)
	DeleteItem(ctx context.Context, itemID string) error
}

type itemService struct {
	repo     *repository.Repository
	resolver TaxResolver
	log      *zap.Logger
}

func NewItemService(repo *repository.Repository, resolver TaxResolver, log *zap.Logger) ItemService {
	return &itemService{
		repo:     repo,
		resolver: resolver,
		log:      log.With(zap.String("service", "item")),
	}
}

// validatePricingConfig is the write-time gate: the engine trusts stored
// configuration, so nothing invalid may get past here.
func validatePricingConfig(pricingType entity.PricingType, details entity.PricingDetails) error {
	if details.PopulatedVariants() != 1 {
		return fmt.Errorf("%w: exactly one pricing variant must be set", ErrInvalidPricingConfig)
	}
	if !details.MatchesType(pricingType) {
		return fmt.Errorf("%w: pricing details do not match type %s", ErrInvalidPricingConfig, pricingType)
	}

	switch pricingType {
	case entity.PricingTypeStatic:
		if details.Static.StaticPrice < 0 {
			return fmt.Errorf("%w: static price must not be negative", ErrInvalidPricingConfig)
		}

	case entity.PricingTypeTiered:
		tiers := details.Tiered.Tiers
		if len(tiers) == 0 {
			return fmt.Errorf("%w: at least one tier is required", ErrInvalidPricingConfig)
		}
		for _, tier := range tiers {
			if tier.MinQuantity < 1 || tier.MaxQuantity < tier.MinQuantity {
				return fmt.Errorf("%w: tier range %d-%d is invalid", ErrInvalidPricingConfig, tier.MinQuantity, tier.MaxQuantity)
			}
			if tier.PricePerUnit < 0 {
				return fmt.Errorf("%w: tier price must not be negative", ErrInvalidPricingConfig)
			}
		}
		if !pricing.ValidateTieredPricing(tiers) {
			return fmt.Errorf("%w: tier ranges overlap", ErrInvalidPricingConfig)
		}

	case entity.PricingTypeDiscounted:
		discount := details.Discounted
		if discount.BasePrice < 0 || discount.DiscountValue < 0 {
			return fmt.Errorf("%w: discount values must not be negative", ErrInvalidPricingConfig)
		}
		switch discount.DiscountType {
		case entity.DiscountTypeFlat:
			if discount.DiscountValue > discount.BasePrice {
				return fmt.Errorf("%w: flat discount must not exceed base price", ErrInvalidPricingConfig)
			}
		case entity.DiscountTypePercentage:
			if discount.DiscountValue > 100 {
				return fmt.Errorf("%w: percentage discount must not exceed 100", ErrInvalidPricingConfig)
			}
		default:
			return fmt.Errorf("%w: unknown discount type %s", ErrInvalidPricingConfig, discount.DiscountType)
		}

	case entity.PricingTypeDynamicTimeBased:
		windows := details.DynamicTime.TimeWindows
		if len(windows) == 0 {
			return fmt.Errorf("%w: at least one time window is required", ErrInvalidPricingConfig)
		}
		for _, window := range windows {
			if !pricing.IsValidTimeFormat(window.StartTime) || !pricing.IsValidTimeFormat(window.EndTime) {
				return fmt.Errorf("%w: time window %s-%s must use HH:MM", ErrInvalidPricingConfig, window.StartTime, window.EndTime)
			}
			if !pricing.IsEndAfterStart(window.StartTime, window.EndTime) {
				return fmt.Errorf("%w: time window end %s must be after start %s", ErrInvalidPricingConfig, window.EndTime, window.StartTime)
			}
			if window.Price < 0 {
				return fmt.Errorf("%w: window price must not be negative", ErrInvalidPricingConfig)
			}
		}
		if !pricing.ValidateTimeWindows(windows) {
			return fmt.Errorf("%w: time windows overlap on the same day", ErrInvalidPricingConfig)
		}
	}

	return nil
}

// validateAvailability gates bookable items. Availability is required iff the
// item is bookable.
func validateAvailability(isBookable bool, availability *entity.Availability) error {
	if !isBookable {
		if availability != nil {
			return fmt.Errorf("%w: availability is only allowed on bookable items", ErrInvalidAvailability)
		}
		return nil
	}

	if availability == nil {
		return fmt.Errorf("%w: bookable items require availability", ErrInvalidAvailability)
	}
	if len(availability.Days) == 0 || len(availability.TimeSlots) == 0 {
		return fmt.Errorf("%w: availability requires days and time slots", ErrInvalidAvailability)
	}
	for _, slot := range availability.TimeSlots {
		if !pricing.IsValidTimeFormat(slot.StartTime) || !pricing.IsValidTimeFormat(slot.EndTime) {
			return fmt.Errorf("%w: time slot %s-%s must use HH:MM", ErrInvalidAvailability, slot.StartTime, slot.EndTime)
		}
		if !pricing.IsEndAfterStart(slot.StartTime, slot.EndTime) {
			return fmt.Errorf("%w: time slot end %s must be after start %s", ErrInvalidAvailability, slot.EndTime, slot.StartTime)
		}
	}

	return nil
}

func (s *itemService) CreateItem(ctx context.Context, req *request.CreateItemRequest) (*response.ItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	pricingType := entity.PricingType(req.PricingType)
	if err := validatePricingConfig(pricingType, req.PricingDetails); err != nil {
		return nil, err
	}
	if err := validateAvailability(req.IsBookable, req.Availability); err != nil {
		return nil, err
	}

	subcategoryID, err := uuid.Parse(req.SubcategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subcategory ID %s", ErrValidation, req.SubcategoryID)
	}

	subcategory, err := s.repo.Subcategory.FindByID(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, fmt.Errorf("%w: %s", ErrSubcategoryNotFound, req.SubcategoryID)
	}

	now := time.Now()
	item := &entity.Item{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Description:    req.Description,
		SubcategoryID:  subcategoryID,
		PricingType:    pricingType,
		PricingDetails: req.PricingDetails,
		IsBookable:     req.IsBookable,
		Availability:   req.Availability,
		IsActive:       true,
	}

	if err := s.repo.Item.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("Item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
		zap.String("pricing_type", string(item.PricingType)),
		zap.Bool("is_bookable", item.IsBookable),
	)

	resp := response.ItemToResponse(item)
	return &resp, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*response.ItemResponse, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	resp := response.ItemToResponse(item)
	return &resp, nil
}

func (s *itemService) findItem(ctx context.Context, itemID string) (*entity.Item, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid item ID %s", ErrValidation, itemID)
	}

	item, err := s.repo.Item.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	return item, nil
}

// GetItemWithAddons splits the item's active addons into mandatory,
// grouped-optional and ungrouped-optional, preserving creation order.
func (s *itemService) GetItemWithAddons(ctx context.Context, itemID string) (*response.ItemWithAddonsResponse, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	addons, err := s.repo.Addon.FindByItemID(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	mandatory := []response.AddonResponse{}
	optional := []response.AddonResponse{}
	groups := []response.AddonGroupResponse{}
	groupIndex := map[string]int{}

	for _, addon := range addons {
		addonResp := response.AddonToResponse(addon)
		switch {
		case addon.IsMandatory:
			mandatory = append(mandatory, addonResp)
		case addon.GroupID != "":
			idx, ok := groupIndex[addon.GroupID]
			if !ok {
				idx = len(groups)
				groupIndex[addon.GroupID] = idx
				groups = append(groups, response.AddonGroupResponse{
					GroupID:   addon.GroupID,
					GroupName: addon.GroupName,
				})
			}
			groups[idx].Addons = append(groups[idx].Addons, addonResp)
		default:
			optional = append(optional, addonResp)
		}
	}

	return &response.ItemWithAddonsResponse{
		Item:            response.ItemToResponse(item),
		MandatoryAddons: mandatory,
		AddonGroups:     groups,
		OptionalAddons:  optional,
	}, nil
}

// GetItemPrice computes the full breakdown for the current configuration.
// Nothing is cached or stored.
func (s *itemService) GetItemPrice(ctx context.Context, itemID string, req *request.ItemPriceRequest) (*response.ItemPriceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Item price validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var at time.Time
	if req.At != "" {
		at, err = time.Parse(time.RFC3339, req.At)
		if err != nil {
			return nil, fmt.Errorf("%w: at must be RFC 3339", ErrValidation)
		}
	}

	addonPrices, err := s.selectedAddonPrices(ctx, item.ID, req.AddonIDs)
	if err != nil {
		return nil, err
	}

	// Omitted quantity means 1; an explicit 0 goes through to tier matching.
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	taxInfo := s.resolver.ResolveForItem(ctx, item)
	breakdown, err := pricing.CalculatePrice(item, taxInfo, pricing.Context{
		Quantity:            quantity,
		CurrentTime:         at,
		SelectedAddonPrices: addonPrices,
	})
	if err != nil {
		return nil, err
	}

	return &response.ItemPriceResponse{
		ItemID:   item.ID.String(),
		ItemName: item.Name,
		Quantity: quantity,
		Price:    *breakdown,
	}, nil
}

// selectedAddonPrices resolves addon IDs to prices, verifying every addon
// exists and belongs to the item.
func (s *itemService) selectedAddonPrices(ctx context.Context, itemID uuid.UUID, addonIDs []string) ([]float64, error) {
	if len(addonIDs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(addonIDs))
	for i, addonID := range addonIDs {
		id, err := uuid.Parse(addonID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid addon ID %s", ErrValidation, addonID)
		}
		ids[i] = id
	}

	addons, err := s.repo.Addon.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(addons) != len(ids) {
		return nil, fmt.Errorf("%w: one or more addons do not exist", ErrAddonNotFound)
	}

	prices := make([]float64, len(addons))
	for i, addon := range addons {
		if addon.ItemID != itemID {
			return nil, fmt.Errorf("%w: addon %s", ErrAddonItemMismatch, addon.ID.String())
		}
		prices[i] = addon.Price
	}

	return prices, nil
}

func (s *itemService) ListItems(ctx context.Context, req *request.ListItemsRequest) (*response.PaginatedResponse[response.ItemResponse], error) {
	filter := repository.ItemFilter{
		PricingType: entity.PricingType(req.PricingType),
		IsBookable:  req.IsBookable,
		IsActive:    req.IsActive,
		Search:      req.Search,
	}
	if req.SubcategoryID != nil {
		id, err := uuid.Parse(*req.SubcategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid subcategory ID %s", ErrValidation, *req.SubcategoryID)
		}
		filter.SubcategoryID = &id
	}

	items, err := s.repo.Item.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Item.CountByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	itemResponses := make([]response.ItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.ItemToResponse(item)
	}

	return response.NewPaginatedResponse(itemResponses, req.Page, req.PerPage, total), nil
}

func (s *itemService) UpdateItem(ctx context.Context, itemID string, req *request.UpdateItemRequest) (*response.ItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.SubcategoryID != nil {
		subcategoryID, err := uuid.Parse(*req.SubcategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid subcategory ID %s", ErrValidation, *req.SubcategoryID)
		}
		subcategory, err := s.repo.Subcategory.FindByID(ctx, subcategoryID)
		if err != nil {
			return nil, err
		}
		if subcategory == nil {
			return nil, fmt.Errorf("%w: %s", ErrSubcategoryNotFound, *req.SubcategoryID)
		}
		item.SubcategoryID = subcategoryID
	}
	if req.PricingType != nil {
		item.PricingType = entity.PricingType(*req.PricingType)
	}
	if req.PricingDetails != nil {
		item.PricingDetails = *req.PricingDetails
	}
	if req.IsBookable != nil {
		item.IsBookable = *req.IsBookable
		if !item.IsBookable {
			item.Availability = nil
		}
	}
	if req.Availability != nil {
		item.Availability = req.Availability
	}

	// The full updated state goes back through the same gates as create.
	if err := validatePricingConfig(item.PricingType, item.PricingDetails); err != nil {
		return nil, err
	}
	if err := validateAvailability(item.IsBookable, item.Availability); err != nil {
		return nil, err
	}

	item.UpdatedAt = time.Now()

	if err := s.repo.Item.Update(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("Item updated",
		zap.String("item_id", itemID),
		zap.String("pricing_type", string(item.PricingType)),
	)

	resp := response.ItemToResponse(item)
	return &resp, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.Item.SoftDelete(ctx, item.ID); err != nil {
		return err
	}

	s.log.Info("Item deleted", zap.String("item_id", itemID))
	return nil
}
