package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/pkg/identity"
	"github.com/ghuser/shareit/services/item/application/handlers"
	appsvcs "github.com/ghuser/shareit/services/item/application/services"
)

// ItemRoutes registers catalog endpoints on the provided chi router. Every
// endpoint requires the X-Sharer-User-Id header.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/items", func(r chi.Router) {
		r.Use(identity.RequireSharerID(a.Logger))

		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
		r.Get("/search", handlers.NewSearchItemsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Patch("/{id}", handlers.NewPatchItemHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		r.Post("/{id}/comment", handlers.NewPostCommentHandler(svcs).Execute)
	})
}
