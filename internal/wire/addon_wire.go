package wire

import (
	"menu-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAddon(r chi.Router, h *adaptor.AddonHandler) {
	r.Route("/addons", func(r chi.Router) {
		r.Post("/", h.CreateAddon)
		r.Post("/calculate-total", h.CalculateAddonTotal)
		r.Get("/{id}", h.GetAddonByID)
		r.Put("/{id}", h.UpdateAddon)
		r.Delete("/{id}", h.DeleteAddon)
	})
}
