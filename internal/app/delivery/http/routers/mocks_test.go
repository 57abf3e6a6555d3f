package routers

import (
	"context"
	"sync"

	"servicerequest-service/internal/app/models"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/dto/requests"
	"servicerequest-service/internal/pkg/exceptions"
	"servicerequest-service/internal/pkg/utils"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockServiceRequestUsecase struct {
	mock.Mock
}

func (m *MockServiceRequestUsecase) Submit(ctx context.Context, raw interface{}) (models.ServiceRequest, error) {
	args := m.Called(ctx, raw)
	serviceRequest, _ := args.Get(0).(models.ServiceRequest)
	return serviceRequest, args.Error(1)
}

func (m *MockServiceRequestUsecase) Validate(ctx context.Context, raw interface{}) (models.ServiceRequest, error) {
	args := m.Called(ctx, raw)
	serviceRequest, _ := args.Get(0).(models.ServiceRequest)
	return serviceRequest, args.Error(1)
}

func (m *MockServiceRequestUsecase) FindByID(ctx context.Context, serviceRequestID string) (models.ServiceRequest, error) {
	args := m.Called(ctx, serviceRequestID)
	serviceRequest, _ := args.Get(0).(models.ServiceRequest)
	return serviceRequest, args.Error(1)
}

func (m *MockServiceRequestUsecase) FindByPatientIdentifier(ctx context.Context, query *requests.PatientIdentifierQuery) (models.ServiceRequest, error) {
	args := m.Called(ctx, query)
	serviceRequest, _ := args.Get(0).(models.ServiceRequest)
	return serviceRequest, args.Error(1)
}

func (m *MockServiceRequestUsecase) FindAll(ctx context.Context) ([]models.ServiceRequest, error) {
	args := m.Called(ctx)
	serviceRequests, _ := args.Get(0).([]models.ServiceRequest)
	return serviceRequests, args.Error(1)
}

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Ping(ctx context.Context) error {
	return s.err
}

// memoryRepository keeps records in insertion order and mimics the
// identifier rules of the Mongo repository.
type memoryRepository struct {
	mu      sync.Mutex
	records []models.ServiceRequest
}

func (r *memoryRepository) Insert(ctx context.Context, serviceRequest models.ServiceRequest) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := models.ServiceRequest(utils.CloneDocument(serviceRequest))
	stored[constvars.FieldID] = id
	r.records = append(r.records, stored)
	return id, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, serviceRequestID string) (models.ServiceRequest, error) {
	if _, err := primitive.ObjectIDFromHex(serviceRequestID); err != nil {
		return nil, exceptions.ErrInvalidIdentifier(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ID() == serviceRequestID {
			return record, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) FindByPatientIdentifier(ctx context.Context, system, value string) (models.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		identifier, ok := record.PatientIdentifier()
		if ok && identifier.System == system && identifier.Value == value {
			return record, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]models.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ServiceRequest{}, r.records...), nil
}

func (r *memoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

// resourceTypeValidator only checks resourceType and status, then prunes.
type resourceTypeValidator struct{}

func (resourceTypeValidator) Validate(ctx context.Context, document map[string]interface{}) (map[string]interface{}, error) {
	if _, ok := document[constvars.FieldResourceType]; !ok {
		return nil, exceptions.ErrSchemaViolation(nil, "Missing 'resourceType' property")
	}
	if status, _ := document["status"].(string); status == "" {
		return nil, exceptions.ErrSchemaViolation(nil, "ServiceRequest.status: minimum required = 1, but only found 0")
	}
	return utils.PruneEmptyValues(document), nil
}
