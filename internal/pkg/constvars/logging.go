package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingOperationKey         = "operation"
	LoggingErrorKindKey         = "error_kind"
	LoggingServiceRequestIDKey  = "service_request_id"
	LoggingPatientSystemKey     = "patient_identifier_system"
	LoggingHasPatientIDKey      = "has_patient_identifier"
	LoggingServiceRequestsCount = "service_requests_count"
	LoggingDocumentKey          = "document"
	LoggingIssuesCountKey       = "issues_count"
	LoggingCacheKey             = "cache_key"
	LoggingDatabaseNameKey      = "database_name"
	LoggingCollectionNameKey    = "collection_name"
)
