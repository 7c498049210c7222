package wire

import (
	"menu-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireItem(r chi.Router, h *adaptor.ItemHandler, addonHandler *adaptor.AddonHandler) {
	r.Route("/items", func(r chi.Router) {
		r.Post("/", h.CreateItem)
		r.Get("/", h.ListItems)
		r.Get("/{id}", h.GetItemByID)
		r.Put("/{id}", h.UpdateItem)
		r.Delete("/{id}", h.DeleteItem)

		// Computed views: never persisted, always derived from current config.
		r.Get("/{id}/price", h.GetItemPrice)
		r.Get("/{id}/with-addons", h.GetItemWithAddons)
		r.Get("/{id}/addons", addonHandler.GetAddonsByItem)
	})
}
