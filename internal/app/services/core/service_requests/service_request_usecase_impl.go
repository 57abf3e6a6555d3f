package service_requests

import (
	"context"
	"errors"
	"servicerequest-service/internal/app/contracts"
	"servicerequest-service/internal/app/models"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/dto/requests"
	"servicerequest-service/internal/pkg/exceptions"
	"servicerequest-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var errNotJSONObject = errors.New("document is not a JSON object")

type serviceRequestUsecase struct {
	ServiceRequestRepository contracts.ServiceRequestRepository
	SchemaValidator          contracts.SchemaValidator
	Log                      *zap.Logger
}

func NewServiceRequestUsecase(
	serviceRequestRepository contracts.ServiceRequestRepository,
	schemaValidator contracts.SchemaValidator,
	logger *zap.Logger,
) contracts.ServiceRequestUsecase {
	return &serviceRequestUsecase{
		ServiceRequestRepository: serviceRequestRepository,
		SchemaValidator:          schemaValidator,
		Log:                      logger,
	}
}

// Submit runs the write pipeline: decode, set patientIdentifier aside,
// validate and normalize the FHIR body, merge the identifier back and
// store the result. The stored record is returned with its new id.
func (uc *serviceRequestUsecase) Submit(ctx context.Context, raw interface{}) (models.ServiceRequest, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("serviceRequestUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	serviceRequest, err := uc.prepare(ctx, raw)
	if err != nil {
		return nil, err
	}

	serviceRequestID, err := uc.ServiceRequestRepository.Insert(ctx, serviceRequest)
	if err != nil {
		uc.Log.Error("serviceRequestUsecase.Submit error inserting service request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	serviceRequest[constvars.FieldID] = serviceRequestID

	_, hasPatientIdentifier := serviceRequest[constvars.FieldPatientIdentifier]
	uc.Log.Info("serviceRequestUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestIDKey, serviceRequestID),
		zap.Bool(constvars.LoggingHasPatientIDKey, hasPatientIdentifier),
	)
	return serviceRequest, nil
}

// Validate runs the write pipeline without storing anything.
func (uc *serviceRequestUsecase) Validate(ctx context.Context, raw interface{}) (models.ServiceRequest, error) {
	uc.Log.Info("serviceRequestUsecase.Validate called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return uc.prepare(ctx, raw)
}

func (uc *serviceRequestUsecase) prepare(ctx context.Context, raw interface{}) (models.ServiceRequest, error) {
	requestID := utils.GetRequestID(ctx)

	document, err := decodeDocument(raw)
	if err != nil {
		uc.Log.Info("serviceRequestUsecase.prepare malformed input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Log.Debug("serviceRequestUsecase.prepare received document",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingDocumentKey, document),
	)

	fhirDocument := utils.CloneDocument(document)
	patientIdentifier := fhirDocument[constvars.FieldPatientIdentifier]
	delete(fhirDocument, constvars.FieldPatientIdentifier)
	delete(fhirDocument, constvars.FieldID)
	delete(fhirDocument, constvars.FieldMongoID)

	normalized, err := uc.SchemaValidator.Validate(ctx, fhirDocument)
	if err != nil {
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) {
			err = exceptions.ErrSchemaValidator(err)
		}
		uc.Log.Info("serviceRequestUsecase.prepare validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
		)
		return nil, err
	}

	serviceRequest := models.ServiceRequest(normalized)
	if isPresent(patientIdentifier) {
		serviceRequest[constvars.FieldPatientIdentifier] = patientIdentifier
	}
	return serviceRequest, nil
}

func (uc *serviceRequestUsecase) FindByID(ctx context.Context, serviceRequestID string) (models.ServiceRequest, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("serviceRequestUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestIDKey, serviceRequestID),
	)

	serviceRequest, err := uc.ServiceRequestRepository.FindByID(ctx, serviceRequestID)
	if err != nil {
		return nil, err
	}
	if serviceRequest == nil {
		uc.Log.Info("serviceRequestUsecase.FindByID service request not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceRequestIDKey, serviceRequestID),
		)
		return nil, exceptions.ErrServiceRequestNotFound(nil)
	}

	uc.Log.Info("serviceRequestUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return serviceRequest, nil
}

// FindByPatientIdentifier returns the first record carrying the exact
// system and value pair. Further matches are not reported.
func (uc *serviceRequestUsecase) FindByPatientIdentifier(ctx context.Context, query *requests.PatientIdentifierQuery) (models.ServiceRequest, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("serviceRequestUsecase.FindByPatientIdentifier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientSystemKey, query.System),
	)

	serviceRequest, err := uc.ServiceRequestRepository.FindByPatientIdentifier(ctx, query.System, query.Value)
	if err != nil {
		return nil, err
	}
	if serviceRequest == nil {
		uc.Log.Info("serviceRequestUsecase.FindByPatientIdentifier service request not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrServiceRequestNotFoundForPatient(nil)
	}
	return serviceRequest, nil
}

func (uc *serviceRequestUsecase) FindAll(ctx context.Context) ([]models.ServiceRequest, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("serviceRequestUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	serviceRequests, err := uc.ServiceRequestRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if serviceRequests == nil {
		serviceRequests = []models.ServiceRequest{}
	}

	uc.Log.Info("serviceRequestUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingServiceRequestsCount, len(serviceRequests)),
	)
	return serviceRequests, nil
}

// decodeDocument accepts serialized JSON text or an already decoded
// mapping. Anything that is not a JSON object is malformed input.
func decodeDocument(raw interface{}) (map[string]interface{}, error) {
	switch v := raw.(type) {
	case models.ServiceRequest:
		if v == nil {
			return nil, exceptions.ErrMalformedInput(errNotJSONObject)
		}
		return v, nil
	case map[string]interface{}:
		if v == nil {
			return nil, exceptions.ErrMalformedInput(errNotJSONObject)
		}
		return v, nil
	case []byte:
		return decodeJSONObject(v)
	case json.RawMessage:
		return decodeJSONObject(v)
	case string:
		return decodeJSONObject([]byte(v))
	default:
		return nil, exceptions.ErrMalformedInput(errNotJSONObject)
	}
}

func decodeJSONObject(data []byte) (map[string]interface{}, error) {
	var decoded interface{}
	err := json.Unmarshal(data, &decoded)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	document, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, exceptions.ErrMalformedInput(errNotJSONObject)
	}
	return document, nil
}

// isPresent treats null, empty strings and empty objects or arrays as
// absent, so they are not merged back into the stored record.
func isPresent(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case map[string]interface{}:
		return len(v) > 0
	case []interface{}:
		return len(v) > 0
	default:
		return true
	}
}
