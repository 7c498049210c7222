package wire

import (
	"menu-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, h *adaptor.CategoryHandler) {
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", h.CreateCategory)
		r.Get("/", h.ListCategories)
		r.Get("/{id}", h.GetCategoryByID)
		r.Get("/{id}/tax-impact", h.GetTaxChangeImpact)
		r.Put("/{id}", h.UpdateCategory)
		r.Delete("/{id}", h.DeleteCategory)
	})
}
