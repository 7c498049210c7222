package usecase

import (
	"context"
	"errors"
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

type SubcategoryService interface {
	CreateSubcategory(ctx context.Context, req *request.CreateSubcategoryRequest) (*response.SubcategoryResponse, error)
	GetSubcategoryByID(ctx context.Context, subcategoryID string) (*response.SubcategoryDetailResponse, error)
	ListSubcategories(ctx context.Context, req *request.ListSubcategoriesRequest) (*response.PaginatedResponse[response.SubcategoryResponse], error)
	UpdateSubcategory(ctx context.Context, subcategoryID string, req *request.UpdateSubcategoryRequest) (*response.SubcategoryResponse, error)
	DeleteSubcategory(ctx context.Context, subcategoryID string) error
}

type subcategoryService struct {
	repo     *repository.Repository
	resolver TaxResolver
	log      *zap.Logger
}

func NewSubcategoryService(repo *repository.Repository, resolver TaxResolver, log *zap.Logger) SubcategoryService {
	return &subcategoryService{
		repo:     repo,
		resolver: resolver,
		log:      log.With(zap.String("service", "subcategory")),
	}
}

// validateOverridePair enforces the all-or-nothing override rule: a
// subcategory either inherits both tax fields or overrides both.
func validateOverridePair(taxApplicable *bool, taxPercentage *float64) error {
	if (taxApplicable == nil) != (taxPercentage == nil) {
		return fmt.Errorf("%w: tax_applicable and tax_percentage must be set together or not at all", ErrInvalidTaxConfig)
	}
	if taxApplicable != nil && *taxApplicable && *taxPercentage <= 0 {
		return fmt.Errorf("%w: tax_percentage is required when tax is applicable", ErrInvalidTaxConfig)
	}
	return nil
}

func (s *subcategoryService) CreateSubcategory(ctx context.Context, req *request.CreateSubcategoryRequest) (*response.SubcategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create subcategory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if err := validateOverridePair(req.TaxApplicable, req.TaxPercentage); err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category ID %s", ErrValidation, req.CategoryID)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, req.CategoryID)
	}

	now := time.Now()
	subcategory := &entity.Subcategory{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    categoryID,
		TaxApplicable: req.TaxApplicable,
		TaxPercentage: req.TaxPercentage,
		IsActive:      true,
	}

	if err := s.repo.Subcategory.Create(ctx, subcategory); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: subcategory %s", ErrDuplicateName, req.Name)
		}
		return nil, err
	}

	s.log.Info("Subcategory created",
		zap.String("subcategory_id", subcategory.ID.String()),
		zap.String("category_id", req.CategoryID),
		zap.String("name", subcategory.Name),
		zap.Bool("has_tax_override", subcategory.HasTaxOverride()),
	)

	resp := response.SubcategoryToResponse(subcategory)
	return &resp, nil
}

func (s *subcategoryService) GetSubcategoryByID(ctx context.Context, subcategoryID string) (*response.SubcategoryDetailResponse, error) {
	id, err := uuid.Parse(subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subcategory ID %s", ErrValidation, subcategoryID)
	}

	subcategory, err := s.repo.Subcategory.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, fmt.Errorf("%w: %s", ErrSubcategoryNotFound, subcategoryID)
	}

	return &response.SubcategoryDetailResponse{
		SubcategoryResponse: response.SubcategoryToResponse(subcategory),
		EffectiveTax:        s.resolver.ResolveForSubcategory(ctx, subcategory),
	}, nil
}

func (s *subcategoryService) ListSubcategories(ctx context.Context, req *request.ListSubcategoriesRequest) (*response.PaginatedResponse[response.SubcategoryResponse], error) {
	var categoryID *uuid.UUID
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid category ID %s", ErrValidation, *req.CategoryID)
		}
		categoryID = &id
	}

	subcategories, err := s.repo.Subcategory.FindAll(ctx, categoryID, req.IsActive, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Subcategory.CountByFilter(ctx, categoryID, req.IsActive)
	if err != nil {
		return nil, err
	}

	subcategoryResponses := make([]response.SubcategoryResponse, len(subcategories))
	for i, subcategory := range subcategories {
		subcategoryResponses[i] = response.SubcategoryToResponse(subcategory)
	}

	return response.NewPaginatedResponse(subcategoryResponses, req.Page, req.PerPage, total), nil
}

func (s *subcategoryService) UpdateSubcategory(ctx context.Context, subcategoryID string, req *request.UpdateSubcategoryRequest) (*response.SubcategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update subcategory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subcategory ID %s", ErrValidation, subcategoryID)
	}

	subcategory, err := s.repo.Subcategory.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, fmt.Errorf("%w: %s", ErrSubcategoryNotFound, subcategoryID)
	}

	if req.Name != nil {
		subcategory.Name = *req.Name
	}
	if req.Description != nil {
		subcategory.Description = *req.Description
	}

	switch {
	case req.ClearOverride:
		// Back to inheriting from the category.
		subcategory.TaxApplicable = nil
		subcategory.TaxPercentage = nil
	case req.TaxApplicable != nil || req.TaxPercentage != nil:
		if err := validateOverridePair(req.TaxApplicable, req.TaxPercentage); err != nil {
			return nil, err
		}
		subcategory.TaxApplicable = req.TaxApplicable
		subcategory.TaxPercentage = req.TaxPercentage
	}

	subcategory.UpdatedAt = time.Now()

	if err := s.repo.Subcategory.Update(ctx, subcategory); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: subcategory %s", ErrDuplicateName, subcategory.Name)
		}
		return nil, err
	}

	s.log.Info("Subcategory updated",
		zap.String("subcategory_id", subcategoryID),
		zap.Bool("has_tax_override", subcategory.HasTaxOverride()),
	)

	resp := response.SubcategoryToResponse(subcategory)
	return &resp, nil
}

// DeleteSubcategory soft-deletes the subcategory and its items.
func (s *subcategoryService) DeleteSubcategory(ctx context.Context, subcategoryID string) error {
	id, err := uuid.Parse(subcategoryID)
	if err != nil {
		return fmt.Errorf("%w: invalid subcategory ID %s", ErrValidation, subcategoryID)
	}

	subcategory, err := s.repo.Subcategory.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if subcategory == nil {
		return fmt.Errorf("%w: %s", ErrSubcategoryNotFound, subcategoryID)
	}

	if err := s.repo.Item.SoftDeleteBySubcategory(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Subcategory.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Subcategory deleted", zap.String("subcategory_id", subcategoryID))
	return nil
}
