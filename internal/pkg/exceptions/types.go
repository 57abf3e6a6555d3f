package exceptions

import (
	"fmt"
	"servicerequest-service/internal/pkg/constvars"
)

// Request shape
var (
	ErrMalformedInput = func(err error) *CustomError {
		return BuildNewCustomError(err, KindMalformedInput, constvars.StatusBadRequest, constvars.ErrClientMalformedServiceRequest, constvars.ErrDevMalformedServiceRequest)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindMalformedInput, constvars.StatusBadRequest, constvars.ErrClientMalformedServiceRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrReadRequestBody = func(err error) *CustomError {
		return BuildNewCustomError(err, KindMalformedInput, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadRequestBody)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, KindRequestRejected, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrRequestBodyTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, KindMalformedInput, constvars.StatusRequestEntityTooLarge, constvars.ErrClientRequestBodyTooLarge, constvars.ErrDevRequestBodyTooLarge)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindMalformedInput, constvars.StatusBadRequest, FormatAllValidationErrors(err), constvars.ErrDevValidationFailed)
	}
)

// Write pipeline
var (
	ErrSchemaViolation = func(err error, diagnostics string) *CustomError {
		return BuildNewCustomError(err, KindSchemaViolation, constvars.StatusUnprocessableEntity, fmt.Sprintf(constvars.ErrClientSchemaViolation, diagnostics), constvars.ErrDevSchemaViolation)
	}
	ErrSchemaValidator = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSchemaValidatorFailed)
	}
)

// Lookup
var (
	ErrInvalidIdentifier = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidIdentifier, constvars.StatusBadRequest, constvars.ErrClientInvalidServiceRequestID, constvars.ErrDevDBStringNotObjectID)
	}
	ErrServiceRequestNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientServiceRequestNotFound, constvars.ErrDevServiceRequestNotFound)
	}
	ErrServiceRequestNotFoundForPatient = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientServiceRequestNotFoundPatient, constvars.ErrDevServiceRequestNotFound)
	}
)

// Infrastructure
var (
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBCreateIndex = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCreateIndex)
	}
	ErrMongoDBConnection = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBConnectionFailed)
	}
	ErrMongoDBUnexpectedInsertedID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBUnexpectedInsertedID)
	}
	ErrRedisSetData = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGetData = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInfrastructureFailure, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerPanicRecovered)
	}
)
