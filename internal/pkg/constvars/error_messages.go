package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"max":         "maximum at %s characters long",
	"hexadecimal": "must be a hexadecimal string",
	"len":         "must be %s characters long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"max": true,
	"len": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientMalformedServiceRequest       = "the request body is not a valid JSON object"
	ErrClientRequestBodyTooLarge           = "the request body is too large"
	ErrClientSchemaViolation               = "FHIR data validation error: %s"
	ErrClientInvalidServiceRequestID       = "the ServiceRequest ID format is not valid"
	ErrClientServiceRequestNotFound        = "ServiceRequest not found for the given ID"
	ErrClientServiceRequestNotFoundPatient = "ServiceRequest not found for the given patient identifier"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON     = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON   = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed    = "validation failed"
	ErrDevReadRequestBody     = "failed to read request body"
	ErrDevRequestBodyTooLarge = "request body exceeds the configured limit"
	ErrDevTooManyRequests     = "request rate limit exceeded"

	// Write pipeline messages
	ErrDevMalformedServiceRequest = "service request document is not a JSON object"
	ErrDevSchemaViolation         = "service request failed FHIR schema validation"
	ErrDevSchemaValidatorFailed   = "FHIR schema validator could not process the document"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on database"
	ErrDevDBConnectionFailed         = "failed to connect to database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBUnexpectedInsertedID     = "database returned an inserted ID that is not an object ID"

	// Lookup messages
	ErrDevServiceRequestNotFound = "service request document not found"

	// Redis messages
	ErrDevRedisSetData = "failed to SET data into redis"
	ErrDevRedisGetData = "failed to GET data from redis"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanicRecovered   = "panic recovered while serving request"
)
