package routers

import (
	"servicerequest-service/internal/app/delivery/http/controllers"
	"servicerequest-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachServiceRequestRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceRequestController *controllers.ServiceRequestController) {
	router.With(middlewares.BodyBuffer).Post("/", serviceRequestController.Create)
	router.Get("/all", serviceRequestController.FindAll)
	router.Get("/by-patient-identifier", serviceRequestController.FindByPatientIdentifier)
	router.Get("/{id}", serviceRequestController.FindByID)
}
