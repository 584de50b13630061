package routers

import (
	"uesvalle-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, dashboardController *controllers.DashboardController) {
	router.Get("/", dashboardController.GetDashboard)
	router.Get("/reports/by-status", dashboardController.GetReportsByStatus)
}
