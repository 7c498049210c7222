package repository

import (
	"menu-booking/pkg/database"

	"go.uber.org/zap"
)

// Repository bundles every repository behind one handle for wiring.
type Repository struct {
	Category    CategoryRepository
	Subcategory SubcategoryRepository
	Item        ItemRepository
	Addon       AddonRepository
	Booking     BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Category:    NewCategoryRepository(db, log),
		Subcategory: NewSubcategoryRepository(db, log),
		Item:        NewItemRepository(db, log),
		Addon:       NewAddonRepository(db, log),
		Booking:     NewBookingRepository(db, log),
	}
}
