package usecase

import (
	"context"
	"fmt"
	"time"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/data/repository"
	"menu-booking/internal/dto/request"
	"menu-booking/internal/dto/response"
	"menu-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddonService interface {
	CreateAddon(ctx context.Context, req *request.CreateAddonRequest) (*response.AddonResponse, error)
	GetAddonByID(ctx context.Context, addonID string) (*response.AddonResponse, error)
	GetAddonsByItem(ctx context.Context, itemID string) ([]response.AddonResponse, error)
	UpdateAddon(ctx context.Context, addonID string, req *request.UpdateAddonRequest) (*response.AddonResponse, error)
	DeleteAddon(ctx context.Context, addonID string) error
	CalculateAddonTotal(ctx context.Context, req *request.CalculateAddonTotalRequest) (*response.AddonTotalResponse, error)
}

type addonService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAddonService(repo *repository.Repository, log *zap.Logger) AddonService {
	return &addonService{
		repo: repo,
		log:  log.With(zap.String("service", "addon")),
	}
}

func (s *addonService) CreateAddon(ctx context.Context, req *request.CreateAddonRequest) (*response.AddonResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create addon validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid item ID %s", ErrValidation, req.ItemID)
	}

	item, err := s.repo.Item.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, req.ItemID)
	}

	if req.GroupID != "" && req.GroupName == "" {
		return nil, fmt.Errorf("%w: group_name is required when group_id is set", ErrValidation)
	}

	now := time.Now()
	addon := &entity.Addon{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Price:       req.Price,
		ItemID:      itemID,
		IsMandatory: req.IsMandatory,
		GroupID:     req.GroupID,
		GroupName:   req.GroupName,
		IsActive:    true,
	}

	if err := s.repo.Addon.Create(ctx, addon); err != nil {
		return nil, err
	}

	s.log.Info("Addon created",
		zap.String("addon_id", addon.ID.String()),
		zap.String("item_id", req.ItemID),
		zap.String("name", addon.Name),
		zap.Bool("is_mandatory", addon.IsMandatory),
	)

	resp := response.AddonToResponse(addon)
	return &resp, nil
}

func (s *addonService) GetAddonByID(ctx context.Context, addonID string) (*response.AddonResponse, error) {
	addon, err := s.findAddon(ctx, addonID)
	if err != nil {
		return nil, err
	}

	resp := response.AddonToResponse(addon)
	return &resp, nil
}

func (s *addonService) findAddon(ctx context.Context, addonID string) (*entity.Addon, error) {
	id, err := uuid.Parse(addonID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid addon ID %s", ErrValidation, addonID)
	}

	addon, err := s.repo.Addon.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if addon == nil {
		return nil, fmt.Errorf("%w: %s", ErrAddonNotFound, addonID)
	}

	return addon, nil
}

func (s *addonService) GetAddonsByItem(ctx context.Context, itemID string) ([]response.AddonResponse, error) {
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

	addons, err := s.repo.Addon.FindByItemID(ctx, id)
	if err != nil {
		return nil, err
	}

	addonResponses := make([]response.AddonResponse, len(addons))
	for i, addon := range addons {
		addonResponses[i] = response.AddonToResponse(addon)
	}

	return addonResponses, nil
}

func (s *addonService) UpdateAddon(ctx context.Context, addonID string, req *request.UpdateAddonRequest) (*response.AddonResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update addon validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	addon, err := s.findAddon(ctx, addonID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		addon.Name = *req.Name
	}
	if req.Price != nil {
		addon.Price = *req.Price
	}
	if req.IsMandatory != nil {
		addon.IsMandatory = *req.IsMandatory
	}
	if req.GroupID != nil {
		addon.GroupID = *req.GroupID
	}
	if req.GroupName != nil {
		addon.GroupName = *req.GroupName
	}

	if addon.GroupID != "" && addon.GroupName == "" {
		return nil, fmt.Errorf("%w: group_name is required when group_id is set", ErrValidation)
	}

	addon.UpdatedAt = time.Now()

	if err := s.repo.Addon.Update(ctx, addon); err != nil {
		return nil, err
	}

	s.log.Info("Addon updated", zap.String("addon_id", addonID))

	resp := response.AddonToResponse(addon)
	return &resp, nil
}

func (s *addonService) DeleteAddon(ctx context.Context, addonID string) error {
	addon, err := s.findAddon(ctx, addonID)
	if err != nil {
		return err
	}

	if err := s.repo.Addon.SoftDelete(ctx, addon.ID); err != nil {
		return err
	}

	s.log.Info("Addon deleted", zap.String("addon_id", addonID))
	return nil
}

// CalculateAddonTotal sums the prices of the given addons. Every ID must
// resolve to an active addon.
func (s *addonService) CalculateAddonTotal(ctx context.Context, req *request.CalculateAddonTotalRequest) (*response.AddonTotalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Addon total validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	ids := make([]uuid.UUID, len(req.AddonIDs))
	for i, addonID := range req.AddonIDs {
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

	total := 0.0
	for _, addon := range addons {
		total += addon.Price
	}

	return &response.AddonTotalResponse{
		AddonIDs: req.AddonIDs,
		Total:    total,
	}, nil
}
