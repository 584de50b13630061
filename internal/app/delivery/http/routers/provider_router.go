package routers

import (
	"uesvalle-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachProviderDetailRoutes(router chi.Router, providerDetailController *controllers.ProviderDetailController) {
	router.Get("/{id}/detail", providerDetailController.GetDetail)
}
