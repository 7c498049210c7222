package usecase

import (
	"menu-booking/internal/data/repository"
	"menu-booking/pkg/database"

	"go.uber.org/zap"
)

type Service struct {
	Category    CategoryService
	Subcategory SubcategoryService
	Item        ItemService
	Addon       AddonService
	Booking     BookingService
}

func NewService(repo *repository.Repository, db database.PgxIface, log *zap.Logger) *Service {
	resolver := NewTaxResolver(repo, log)
	committer := NewBookingCommitter(db, repo.Booking, log)

	return &Service{
		Category:    NewCategoryService(repo, log),
		Subcategory: NewSubcategoryService(repo, resolver, log),
		Item:        NewItemService(repo, resolver, log),
		Addon:       NewAddonService(repo, log),
		Booking:     NewBookingService(repo, resolver, committer, log),
	}
}
