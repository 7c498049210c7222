package wire

import (
	"menu-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, h *adaptor.BookingHandler) {
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.CreateBooking)
		r.Get("/", h.ListBookings)
		r.Get("/available-slots/{item_id}", h.GetAvailableSlots)
		r.Get("/user/{email}", h.GetUserBookings)
		r.Get("/{id}", h.GetBookingByID)
		r.Put("/{id}/status", h.UpdateBookingStatus)
		r.Put("/{id}/cancel", h.CancelBooking)
	})
}
