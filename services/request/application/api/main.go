package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/pkg/identity"
	"github.com/ghuser/shareit/services/request/application/handlers"
	appsvcs "github.com/ghuser/shareit/services/request/application/services"
)

// RequestRoutes registers item-request endpoints on the provided chi router.
// Every endpoint requires the X-Sharer-User-Id header.
func RequestRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/requests", func(r chi.Router) {
		r.Use(identity.RequireSharerID(a.Logger))

		r.Post("/", handlers.NewPostRequestHandler(svcs).Execute)
		r.Get("/", handlers.NewListOwnRequestsHandler(svcs).Execute)
		r.Get("/all", handlers.NewListOtherRequestsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetRequestHandler(svcs).Execute)
	})
}
