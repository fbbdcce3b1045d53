package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shareit/pkg/app"
	"github.com/ghuser/shareit/services/user/application/handlers"
	appsvcs "github.com/ghuser/shareit/services/user/application/services"
)

// UserRoutes registers user directory endpoints on the provided chi router.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.NewPostUserHandler(svcs).Execute)
		r.Get("/", handlers.NewListUsersHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetUserHandler(svcs).Execute)
		r.Patch("/{id}", handlers.NewPatchUserHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteUserHandler(svcs).Execute)
	})
}
