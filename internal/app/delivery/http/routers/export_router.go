package routers

import (
	"uesvalle-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachExportRoutes(router chi.Router, exportController *controllers.ExportController) {
	router.Get("/merge", exportController.ListMerged)
	router.Get("/merge.xlsx", exportController.DownloadSpreadsheet)
	router.Get("/csv", exportController.DownloadCSV)
	router.Post("/archives", exportController.CreateArchive)
	router.Get("/archives/latest", exportController.GetLatestArchive)
}
