package usecase

import (
	"context"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/data/repository"
	"menu-booking/internal/pricing"

	"go.uber.org/zap"
)

// TaxResolver loads the subcategory/category chain for an item and resolves
// its effective tax. Resolution fails closed: a broken chain yields no tax,
// never an error, so pricing keeps working while the catalog is being fixed.
type TaxResolver interface {
	ResolveForItem(ctx context.Context, item *entity.Item) pricing.TaxInfo
	ResolveForSubcategory(ctx context.Context, subcategory *entity.Subcategory) pricing.TaxInfo
}

type taxResolver struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTaxResolver(repo *repository.Repository, log *zap.Logger) TaxResolver {
	return &taxResolver{
		repo: repo,
		log:  log.With(zap.String("service", "tax_resolver")),
	}
}

func (r *taxResolver) ResolveForItem(ctx context.Context, item *entity.Item) pricing.TaxInfo {
	subcategory, err := r.repo.Subcategory.FindByIDIncludingInactive(ctx, item.SubcategoryID)
	if err != nil || subcategory == nil {
		r.log.Warn("Tax resolution failed, defaulting to no tax",
			zap.String("item_id", item.ID.String()),
			zap.String("subcategory_id", item.SubcategoryID.String()),
			zap.Error(err),
		)
		return pricing.NoTax()
	}

	return r.ResolveForSubcategory(ctx, subcategory)
}

func (r *taxResolver) ResolveForSubcategory(ctx context.Context, subcategory *entity.Subcategory) pricing.TaxInfo {
	// A full override answers without touching the category.
	if subcategory.HasTaxOverride() {
		return pricing.ResolveTax(subcategory, nil)
	}

	category, err := r.repo.Category.FindByIDIncludingInactive(ctx, subcategory.CategoryID)
	if err != nil || category == nil {
		r.log.Warn("Tax resolution failed, defaulting to no tax",
			zap.String("subcategory_id", subcategory.ID.String()),
			zap.String("category_id", subcategory.CategoryID.String()),
			zap.Error(err),
		)
		return pricing.NoTax()
	}

	return pricing.ResolveTax(subcategory, category)
}
