package constvars

const (
	ResourceServiceRequest = "ServiceRequest"
)

// Document keys handled by the write pipeline and the record store.
const (
	FieldMongoID           = "_id"
	FieldID                = "id"
	FieldResourceType      = "resourceType"
	FieldPatientIdentifier = "patientIdentifier"

	FieldPatientIdentifierSystem = "patientIdentifier.system"
	FieldPatientIdentifierValue  = "patientIdentifier.value"
)

const (
	MongoDefaultDatabaseName          = "HIS"
	MongoCollectionServiceRequests    = "serviceRequest"
	MongoIndexPatientIdentifierLookup = "patient_identifier_lookup"
)

const (
	RedisKeyServiceRequestByID = "servicerequest:id:%s"
)
