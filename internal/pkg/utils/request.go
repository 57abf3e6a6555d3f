package utils

import (
	"net/http"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/dto/requests"

	"github.com/google/uuid"
)

func BuildPatientIdentifierQuery(r *http.Request) *requests.PatientIdentifierQuery {
	return &requests.PatientIdentifierQuery{
		System: r.URL.Query().Get("system"),
		Value:  r.URL.Query().Get("value"),
	}
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}
