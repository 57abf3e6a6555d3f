package routers

import (
	"fmt"
	"slices"
	"strings"

	"servicerequest-service/internal/app/config"
	"servicerequest-service/internal/app/delivery/http/controllers"
	"servicerequest-service/internal/app/delivery/http/middlewares"
	"servicerequest-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	serviceRequestController *controllers.ServiceRequestController,
	healthController *controllers.HealthController,
) {
	corsOptions := newCorsOptions(internalConfig.App.CorsAllowedOrigins)
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Get("/healthz", healthController.Check)

	endpointPrefix := strings.Trim(internalConfig.App.EndpointPrefix, "/")
	if endpointPrefix == "" {
		attachRoutes(router, middlewares, serviceRequestController)
		return
	}

	router.Route(fmt.Sprintf("/%s", endpointPrefix), func(r chi.Router) {
		attachRoutes(r, middlewares, serviceRequestController)
	})
}

func attachRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceRequestController *controllers.ServiceRequestController) {
	router.Route("/servicerequest", func(r chi.Router) {
		attachServiceRequestRoutes(r, middlewares, serviceRequestController)
	})
}

// newCorsOptions falls back to any origin when none are configured.
// Credentials are only allowed for an explicit origin list.
func newCorsOptions(allowedOrigins []string) cors.Options {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: !slices.Contains(allowedOrigins, "*"),
		MaxAge:           300,
	}
}
