package service_requests

import (
	"context"
	"servicerequest-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockServiceRequestRepository struct {
	mock.Mock
}

func (m *MockServiceRequestRepository) Insert(ctx context.Context, serviceRequest models.ServiceRequest) (string, error) {
	args := m.Called(ctx, serviceRequest)
	return args.String(0), args.Error(1)
}

func (m *MockServiceRequestRepository) FindByID(ctx context.Context, serviceRequestID string) (models.ServiceRequest, error) {
	args := m.Called(ctx, serviceRequestID)
	serviceRequest, _ := args.Get(0).(models.ServiceRequest)
	return serviceRequest, args.Error(1)
}

func (m *MockServiceRequestRepository) FindByPatientIdentifier(ctx context.Context, system, value string) (models.ServiceRequest, error) {
	args := m.Called(ctx, system, value)
	serviceRequest, _ := args.Get(0).(models.ServiceRequest)
	return serviceRequest, args.Error(1)
}

func (m *MockServiceRequestRepository) FindAll(ctx context.Context) ([]models.ServiceRequest, error) {
	args := m.Called(ctx)
	serviceRequests, _ := args.Get(0).([]models.ServiceRequest)
	return serviceRequests, args.Error(1)
}

func (m *MockServiceRequestRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSchemaValidator struct {
	mock.Mock
}

func (m *MockSchemaValidator) Validate(ctx context.Context, document map[string]interface{}) (map[string]interface{}, error) {
	args := m.Called(ctx, document)
	normalized, _ := args.Get(0).(map[string]interface{})
	return normalized, args.Error(1)
}
