package adaptor

import (
	"menu-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Category    *CategoryHandler
	Subcategory *SubcategoryHandler
	Item        *ItemHandler
	Addon       *AddonHandler
	Booking     *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Category:    NewCategoryHandler(service.Category, log),
		Subcategory: NewSubcategoryHandler(service.Subcategory, log),
		Item:        NewItemHandler(service.Item, log),
		Addon:       NewAddonHandler(service.Addon, log),
		Booking:     NewBookingHandler(service.Booking, log),
	}
}
