package responses

import "servicerequest-service/internal/app/models"

// ServiceRequestList is the listing payload. The key name is consumed by
// existing frontends and must not change.
type ServiceRequestList struct {
	ServiceRequests []models.ServiceRequest `json:"serviceRequests"`
}
