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

type CategoryService interface {
	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryDetailResponse, error)
	ListCategories(ctx context.Context, req *request.ListCategoriesRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	UpdateCategory(ctx context.Context, categoryID string, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error)
	GetTaxChangeImpact(ctx context.Context, categoryID string, newPercentage float64) (*response.TaxChangeImpactResponse, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.TaxApplicable && req.TaxPercentage <= 0 {
		return nil, fmt.Errorf("%w: tax_percentage is required when tax is applicable", ErrInvalidTaxConfig)
	}

	existing, err := s.repo.Category.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category %s", ErrDuplicateName, req.Name)
	}

	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		TaxApplicable: req.TaxApplicable,
		TaxPercentage: req.TaxPercentage,
		IsActive:      true,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: category %s", ErrDuplicateName, req.Name)
		}
		return nil, err
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
		zap.Bool("tax_applicable", category.TaxApplicable),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryDetailResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category ID %s", ErrValidation, categoryID)
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}

	subcategories, err := s.repo.Subcategory.FindByCategoryID(ctx, id)
	if err != nil {
		return nil, err
	}

	subcategoryResponses := make([]response.SubcategoryResponse, len(subcategories))
	for i, subcategory := range subcategories {
		subcategoryResponses[i] = response.SubcategoryToResponse(subcategory)
	}

	return &response.CategoryDetailResponse{
		CategoryResponse: response.CategoryToResponse(category),
		Subcategories:    subcategoryResponses,
	}, nil
}

func (s *categoryService) ListCategories(ctx context.Context, req *request.ListCategoriesRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	filter := repository.CategoryFilter{
		IsActive: req.IsActive,
		Search:   req.Search,
	}

	categories, err := s.repo.Category.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Category.CountByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		categoryResponses[i] = response.CategoryToResponse(category)
	}

	return response.NewPaginatedResponse(categoryResponses, req.Page, req.PerPage, total), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category ID %s", ErrValidation, categoryID)
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}

	if req.Name != nil && *req.Name != category.Name {
		existing, err := s.repo.Category.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("check category name: %w", err)
		}
		if existing != nil && existing.ID != category.ID {
			return nil, fmt.Errorf("%w: category %s", ErrDuplicateName, *req.Name)
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	taxChanged := false
	if req.TaxApplicable != nil && *req.TaxApplicable != category.TaxApplicable {
		category.TaxApplicable = *req.TaxApplicable
		taxChanged = true
	}
	if req.TaxPercentage != nil && *req.TaxPercentage != category.TaxPercentage {
		category.TaxPercentage = *req.TaxPercentage
		taxChanged = true
	}

	if category.TaxApplicable && category.TaxPercentage <= 0 {
		return nil, fmt.Errorf("%w: tax_percentage is required when tax is applicable", ErrInvalidTaxConfig)
	}

	if taxChanged {
		if err := s.reportTaxChangeImpact(ctx, category); err != nil {
			return nil, err
		}
	}

	category.UpdatedAt = time.Now()

	if err := s.repo.Category.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: category %s", ErrDuplicateName, category.Name)
		}
		return nil, err
	}

	s.log.Info("Category updated",
		zap.String("category_id", categoryID),
		zap.Bool("tax_changed", taxChanged),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

// reportTaxChangeImpact logs how many subcategories inherit the changed tax.
// Subcategories with their own override are unaffected; prices of everything
// else shift on the next calculation.
func (s *categoryService) reportTaxChangeImpact(ctx context.Context, category *entity.Category) error {
	subcategories, err := s.repo.Subcategory.FindByCategoryID(ctx, category.ID)
	if err != nil {
		return err
	}

	inheriting := 0
	for _, subcategory := range subcategories {
		if !subcategory.HasTaxOverride() {
			inheriting++
		}
	}

	if inheriting > 0 {
		s.log.Warn("Category tax change affects inheriting subcategories",
			zap.String("category_id", category.ID.String()),
			zap.Int("inheriting_subcategories", inheriting),
			zap.Bool("tax_applicable", category.TaxApplicable),
			zap.Float64("tax_percentage", category.TaxPercentage),
		)
	}

	return nil
}

// GetTaxChangeImpact previews a tax percentage change without applying it.
// Only subcategories without their own override (and their items) reprice.
func (s *categoryService) GetTaxChangeImpact(ctx context.Context, categoryID string, newPercentage float64) (*response.TaxChangeImpactResponse, error) {
	if newPercentage < 0 || newPercentage > 100 {
		return nil, fmt.Errorf("%w: new_percentage must be between 0 and 100", ErrInvalidTaxConfig)
	}

	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category ID %s", ErrValidation, categoryID)
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}

	subcategories, err := s.repo.Subcategory.FindByCategoryID(ctx, id)
	if err != nil {
		return nil, err
	}

	var inheritingIDs []uuid.UUID
	for _, subcategory := range subcategories {
		if !subcategory.HasTaxOverride() {
			inheritingIDs = append(inheritingIDs, subcategory.ID)
		}
	}

	var affectedItems int64
	if len(inheritingIDs) > 0 {
		affectedItems, err = s.repo.Item.CountBySubcategoryIDs(ctx, inheritingIDs)
		if err != nil {
			return nil, err
		}
	}

	return &response.TaxChangeImpactResponse{
		CategoryID:            categoryID,
		CurrentTaxApplicable:  category.TaxApplicable,
		CurrentTaxPercentage:  category.TaxPercentage,
		NewTaxPercentage:      newPercentage,
		AffectedSubcategories: len(inheritingIDs),
		AffectedItems:         affectedItems,
	}, nil
}

// DeleteCategory soft-deletes the category and cascades to its subcategories
// and their items. Nothing is hard-deleted.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return fmt.Errorf("%w: invalid category ID %s", ErrValidation, categoryID)
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}

	subcategories, err := s.repo.Subcategory.FindByCategoryID(ctx, id)
	if err != nil {
		return err
	}

	for _, subcategory := range subcategories {
		if err := s.repo.Item.SoftDeleteBySubcategory(ctx, subcategory.ID); err != nil {
			return err
		}
		if err := s.repo.Subcategory.SoftDelete(ctx, subcategory.ID); err != nil {
			return err
		}
	}

	if err := s.repo.Category.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Category deleted",
		zap.String("category_id", categoryID),
		zap.Int("cascaded_subcategories", len(subcategories)),
	)

	return nil
}
