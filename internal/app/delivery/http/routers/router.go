package routers

import (
	"fmt"
	"strings"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/delivery/http/controllers"
	"uesvalle-service/internal/app/delivery/http/middlewares"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// EntityControllers groups the generic list/edit controller of every entity.
type EntityControllers struct {
	Provider       *controllers.EntityController[models.Provider]
	Laboratory     *controllers.EntityController[models.Laboratory]
	Technician     *controllers.EntityController[models.Technician]
	SampleRequest  *controllers.EntityController[models.SampleRequest]
	Requester      *controllers.EntityController[models.Requester]
	Report         *controllers.EntityController[models.Report]
	Location       *controllers.EntityController[models.Location]
	Representative *controllers.EntityController[models.Representative]
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	entityControllers *EntityControllers,
	dashboardController *controllers.DashboardController,
	exportController *controllers.ExportController,
	providerDetailController *controllers.ProviderDetailController,
) {
	router.Use(cors.Handler(buildCORSOptions(internalConfig.App.FrontendDomain)))
	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	versionPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.Version, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middlewares.Authenticate)

			r.Route(resourcePath(constvars.ResourceProviders), func(r chi.Router) {
				attachEntityRoutes(r, entityControllers.Provider)
				attachProviderDetailRoutes(r, providerDetailController)
			})
			r.Route(resourcePath(constvars.ResourceLaboratories), func(r chi.Router) {
				attachEntityRoutes(r, entityControllers.Laboratory)
			})
			r.Route(resourcePath(constvars.ResourceTechnicians), func(r chi.Router) {
				attachEntityRoutes(r, entityControllers.Technician)
			})
			r.Route(resourcePath(constvars.ResourceSampleRequests), func(r chi.Router) {
				attachEntityRoutes(r, entityControllers.SampleRequest)
			})
			r.Route(resourcePath(constvars.ResourceRequesters), func(r chi.Router) {
				attachEntityRoutes(r, entityControllers.Requester)
			})
			r.Route(resourcePath(constvars.ResourceReports), func(r chi.Router) {
				attachEntityRoutes(r, entityControllers.Report)
			})
			r.Route(resourcePath(constvars.ResourceLocations), func(r chi.Router) {
				attachEntityRoutes(r, entityControllers.Location)
			})
			r.Route(resourcePath(constvars.ResourceRepresentatives), func(r chi.Router) {
				attachEntityRoutes(r, entityControllers.Representative)
			})

			r.Route(resourcePath(constvars.ResourceDashboard), func(r chi.Router) {
				attachDashboardRoutes(r, dashboardController)
			})
			r.Route(resourcePath(constvars.ResourceExport), func(r chi.Router) {
				attachExportRoutes(r, exportController)
			})
		})
	})
}

func resourcePath(resource string) string {
	return "/" + resource
}

// buildCORSOptions allows credentials only for explicitly configured
// origins. Without a front end domain any origin may call, without cookies
// or auth headers being shared.
func buildCORSOptions(frontendDomain string) cors.Options {
	options := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		AllowCredentials: false,
		MaxAge:           300,
	}

	origins := make([]string, 0)
	for _, origin := range strings.Split(frontendDomain, ",") {
		if origin = strings.TrimSpace(origin); origin != "" && origin != "*" {
			origins = append(origins, origin)
		}
	}
	if len(origins) > 0 {
		options.AllowedOrigins = origins
		options.AllowCredentials = true
	}
	return options
}
