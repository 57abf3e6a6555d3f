package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceRequestAccessors(t *testing.T) {
	sr := ServiceRequest{
		"id":           "65f1c0ffee00000000000001",
		"resourceType": "ServiceRequest",
		"patientIdentifier": map[string]interface{}{
			"system": "http://hospital.example/mrn",
			"value":  "12345",
		},
	}

	assert.Equal(t, "65f1c0ffee00000000000001", sr.ID())
	assert.Equal(t, "ServiceRequest", sr.ResourceType())

	identifier, ok := sr.PatientIdentifier()
	assert.True(t, ok)
	assert.Equal(t, PatientIdentifier{System: "http://hospital.example/mrn", Value: "12345"}, identifier)

	t.Run("Missing Patient Identifier", func(t *testing.T) {
		_, ok := ServiceRequest{"resourceType": "ServiceRequest"}.PatientIdentifier()
		assert.False(t, ok)
	})

	t.Run("Empty Patient Identifier", func(t *testing.T) {
		_, ok := ServiceRequest{"patientIdentifier": map[string]interface{}{}}.PatientIdentifier()
		assert.False(t, ok)
	})
}

func TestServiceRequestSummary(t *testing.T) {
	sr := ServiceRequest{
		"id":         "abc",
		"status":     "active",
		"intent":     "order",
		"authoredOn": "2024-03-01",
		"code": map[string]interface{}{
			"coding": []interface{}{
				map[string]interface{}{"system": "http://loinc.org", "code": "24627-2"},
			},
		},
		"subject":   map[string]interface{}{"reference": "Patient/1"},
		"requester": map[string]interface{}{"reference": "Practitioner/7", "display": "Dr. Rivera"},
		"note": []interface{}{
			map[string]interface{}{"text": "fasting"},
			map[string]interface{}{"authorString": "x"},
		},
	}

	summary := sr.Summary()

	assert.Equal(t, "active", summary.Status)
	assert.Equal(t, "order", summary.Intent)
	assert.Equal(t, "24627-2", summary.Code)
	assert.Equal(t, "Patient/1", summary.Subject)
	assert.Equal(t, "Dr. Rivera", summary.Requester)
	assert.Equal(t, []string{"fasting"}, summary.Notes)
	assert.Nil(t, summary.PatientIdentifier)

	text := summary.String()
	assert.Contains(t, text, "Status: active\n")
	assert.Contains(t, text, "Requester: Dr. Rivera\n")
	assert.NotContains(t, text, "Priority")
}
