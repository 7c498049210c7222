package wire

import (
	"menu-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSubcategory(r chi.Router, h *adaptor.SubcategoryHandler) {
	r.Route("/subcategories", func(r chi.Router) {
		r.Post("/", h.CreateSubcategory)
		r.Get("/", h.ListSubcategories)
		r.Get("/{id}", h.GetSubcategoryByID)
		r.Put("/{id}", h.UpdateSubcategory)
		r.Delete("/{id}", h.DeleteSubcategory)
	})
}
