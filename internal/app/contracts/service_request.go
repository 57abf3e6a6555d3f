package contracts

import (
	"context"
	"servicerequest-service/internal/app/models"
	"servicerequest-service/internal/pkg/dto/requests"
)

type ServiceRequestUsecase interface {
	// Submit validates, normalizes and stores raw, which may be a JSON
	// text ([]byte or string) or an already decoded mapping.
	Submit(ctx context.Context, raw interface{}) (models.ServiceRequest, error)
	// Validate returns what Submit would store, minus the id, without
	// touching the store.
	Validate(ctx context.Context, raw interface{}) (models.ServiceRequest, error)
	FindByID(ctx context.Context, serviceRequestID string) (models.ServiceRequest, error)
	FindByPatientIdentifier(ctx context.Context, query *requests.PatientIdentifierQuery) (models.ServiceRequest, error)
	FindAll(ctx context.Context) ([]models.ServiceRequest, error)
}

// ServiceRequestRepository lookups return a nil record and a nil error
// when nothing matches.
type ServiceRequestRepository interface {
	Insert(ctx context.Context, serviceRequest models.ServiceRequest) (string, error)
	FindByID(ctx context.Context, serviceRequestID string) (models.ServiceRequest, error)
	FindByPatientIdentifier(ctx context.Context, system, value string) (models.ServiceRequest, error)
	FindAll(ctx context.Context) ([]models.ServiceRequest, error)
	EnsureIndexes(ctx context.Context) error
}

// SchemaValidator checks a document against the FHIR ServiceRequest
// definition and returns its canonical sparse form.
type SchemaValidator interface {
	Validate(ctx context.Context, document map[string]interface{}) (map[string]interface{}, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
