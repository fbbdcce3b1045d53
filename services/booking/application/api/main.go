package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/pkg/identity"
	"github.com/ghuser/shareit/services/booking/application/handlers"
	appsvcs "github.com/ghuser/shareit/services/booking/application/services"
)

// BookingRoutes registers booking-engine endpoints on the provided chi
// router. Every endpoint requires the X-Sharer-User-Id header.
func BookingRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/bookings", func(r chi.Router) {
		r.Use(identity.RequireSharerID(a.Logger))

		r.Post("/", handlers.NewPostBookingHandler(svcs).Execute)
		r.Get("/", handlers.NewListBookingsHandler(svcs).Execute)
		r.Get("/owner", handlers.NewListOwnerBookingsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetBookingHandler(svcs).Execute)
		r.Patch("/{id}", handlers.NewPatchBookingHandler(svcs).Execute)
	})
}
