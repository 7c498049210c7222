package usecase

import (
	"context"
	"errors"
	"testing"

	"menu-booking/internal/data/repository"
	"menu-booking/internal/dto/request"
	"menu-booking/internal/pricing"

	"github.com/google/uuid"
)

func newTestSubcategoryService(repo *repository.Repository) SubcategoryService {
	log := testLogger()
	return NewSubcategoryService(repo, NewTaxResolver(repo, log), log)
}

func TestCreateSubcategoryHalfOverrideRejected(t *testing.T) {
	repo := newTestRepository()
	subcategory := seedCatalog(t, repo)
	service := newTestSubcategoryService(repo)

	_, err := service.CreateSubcategory(context.Background(), &request.CreateSubcategoryRequest{
		Name:          "Drinks",
		CategoryID:    subcategory.CategoryID.String(),
		TaxApplicable: boolPtr(true),
	})
	if !errors.Is(err, ErrInvalidTaxConfig) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidTaxConfig)
	}
}

func TestCreateSubcategoryCategoryNotFound(t *testing.T) {
	repo := newTestRepository()
	service := newTestSubcategoryService(repo)

	_, err := service.CreateSubcategory(context.Background(), &request.CreateSubcategoryRequest{
		Name:       "Drinks",
		CategoryID: uuid.New().String(),
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrCategoryNotFound)
	}
}

func TestGetSubcategoryDetailReportsEffectiveTax(t *testing.T) {
	repo := newTestRepository()
	subcategory := seedCatalog(t, repo)
	service := newTestSubcategoryService(repo)

	detail, err := service.GetSubcategoryByID(context.Background(), subcategory.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.EffectiveTax.Source != pricing.TaxSourceCategory {
		t.Errorf("effective tax source = %v, want %v", detail.EffectiveTax.Source, pricing.TaxSourceCategory)
	}
	if detail.EffectiveTax.TaxPercentage != 18 {
		t.Errorf("effective tax percentage = %v, want 18", detail.EffectiveTax.TaxPercentage)
	}
}

func TestUpdateSubcategorySetAndClearOverride(t *testing.T) {
	repo := newTestRepository()
	subcategory := seedCatalog(t, repo)
	service := newTestSubcategoryService(repo)
	ctx := context.Background()

	_, err := service.UpdateSubcategory(ctx, subcategory.ID.String(), &request.UpdateSubcategoryRequest{
		TaxApplicable: boolPtr(true),
		TaxPercentage: floatPtr(5),
	})
	if err != nil {
		t.Fatalf("set override failed: %v", err)
	}

	detail, err := service.GetSubcategoryByID(ctx, subcategory.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if detail.EffectiveTax.Source != pricing.TaxSourceSubcategory || detail.EffectiveTax.TaxPercentage != 5 {
		t.Errorf("effective tax = %+v, want subcategory override at 5", detail.EffectiveTax)
	}

	_, err = service.UpdateSubcategory(ctx, subcategory.ID.String(), &request.UpdateSubcategoryRequest{ClearOverride: true})
	if err != nil {
		t.Fatalf("clear override failed: %v", err)
	}

	detail, err = service.GetSubcategoryByID(ctx, subcategory.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if detail.EffectiveTax.Source != pricing.TaxSourceCategory || detail.EffectiveTax.TaxPercentage != 18 {
		t.Errorf("effective tax = %+v, want category inheritance at 18", detail.EffectiveTax)
	}
}

func TestUpdateSubcategoryOverrideWithZeroPercentage(t *testing.T) {
	repo := newTestRepository()
	subcategory := seedCatalog(t, repo)
	service := newTestSubcategoryService(repo)

	_, err := service.UpdateSubcategory(context.Background(), subcategory.ID.String(), &request.UpdateSubcategoryRequest{
		TaxApplicable: boolPtr(true),
		TaxPercentage: floatPtr(0),
	})
	if !errors.Is(err, ErrInvalidTaxConfig) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidTaxConfig)
	}
}

func TestDeleteSubcategoryCascadesToItems(t *testing.T) {
	repo := newTestRepository()
	subcategory := seedCatalog(t, repo)
	itemService := newTestItemService(repo)
	service := newTestSubcategoryService(repo)
	ctx := context.Background()

	item, err := itemService.CreateItem(ctx, &request.CreateItemRequest{
		Name:           "Pasta",
		SubcategoryID:  subcategory.ID.String(),
		PricingType:    "static",
		PricingDetails: staticDetails(100),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := service.DeleteSubcategory(ctx, subcategory.ID.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, _ := repo.Item.FindByID(ctx, uuid.MustParse(item.ID)); got != nil {
		t.Error("item should be inactive after subcategory delete")
	}
}
