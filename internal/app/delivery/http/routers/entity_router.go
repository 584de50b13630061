package routers

import (
	"uesvalle-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachEntityRoutes[T any](router chi.Router, entityController *controllers.EntityController[T]) {
	router.Get("/", entityController.List)
	router.Post("/", entityController.Create)
	router.Get("/form", entityController.NewForm)
	router.Get("/{id}", entityController.Get)
	router.Put("/{id}", entityController.Update)
	router.Delete("/{id}", entityController.Delete)
	router.Get("/{id}/form", entityController.EditForm)
}
