package requests

// PatientIdentifierQuery carries the query parameters of the
// by-patient-identifier lookup.
type PatientIdentifierQuery struct {
	System string `json:"system" validate:"required,max=2048"`
	Value  string `json:"value" validate:"required,max=1024"`
}
