package models

import (
	"servicerequest-service/internal/pkg/constvars"
	"strings"
)

// ServiceRequest is a stored FHIR ServiceRequest document. The FHIR body
// is kept untyped so that every element accepted by the schema validator
// survives storage, together with the id and patientIdentifier fields.
type ServiceRequest map[string]interface{}

type PatientIdentifier struct {
	System string `json:"system" bson:"system"`
	Value  string `json:"value" bson:"value"`
}

func (p PatientIdentifier) IsZero() bool {
	return p.System == "" && p.Value == ""
}

func (sr ServiceRequest) ID() string {
	id, _ := sr[constvars.FieldID].(string)
	return id
}

func (sr ServiceRequest) ResourceType() string {
	resourceType, _ := sr[constvars.FieldResourceType].(string)
	return resourceType
}

// PatientIdentifier returns the typed view of the auxiliary identifier
// and whether one was present.
func (sr ServiceRequest) PatientIdentifier() (PatientIdentifier, bool) {
	raw, ok := sr[constvars.FieldPatientIdentifier].(map[string]interface{})
	if !ok {
		return PatientIdentifier{}, false
	}
	identifier := PatientIdentifier{}
	identifier.System, _ = raw["system"].(string)
	identifier.Value, _ = raw["value"].(string)
	return identifier, !identifier.IsZero()
}

// ServiceRequestSummary is a partial, human readable projection used by
// the command line tools.
type ServiceRequestSummary struct {
	ID                string
	Status            string
	Intent            string
	Priority          string
	Code              string
	Subject           string
	Requester         string
	AuthoredOn        string
	Notes             []string
	PatientIdentifier *PatientIdentifier
}

func (sr ServiceRequest) Summary() ServiceRequestSummary {
	summary := ServiceRequestSummary{
		ID:         sr.ID(),
		Status:     stringField(sr, "status"),
		Intent:     stringField(sr, "intent"),
		Priority:   stringField(sr, "priority"),
		Code:       codeableConceptText(sr["code"]),
		Subject:    referenceText(sr["subject"]),
		Requester:  referenceText(sr["requester"]),
		AuthoredOn: stringField(sr, "authoredOn"),
	}

	if notes, ok := sr["note"].([]interface{}); ok {
		for _, note := range notes {
			if annotation, ok := note.(map[string]interface{}); ok {
				if text := stringField(annotation, "text"); text != "" {
					summary.Notes = append(summary.Notes, text)
				}
			}
		}
	}

	if identifier, ok := sr.PatientIdentifier(); ok {
		summary.PatientIdentifier = &identifier
	}
	return summary
}

func (s ServiceRequestSummary) String() string {
	var b strings.Builder
	writeLine := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	writeLine("ID", s.ID)
	writeLine("Status", s.Status)
	writeLine("Intent", s.Intent)
	writeLine("Priority", s.Priority)
	writeLine("Code", s.Code)
	writeLine("Subject", s.Subject)
	writeLine("Requester", s.Requester)
	writeLine("Authored on", s.AuthoredOn)
	for _, note := range s.Notes {
		writeLine("Note", note)
	}
	if s.PatientIdentifier != nil {
		writeLine("Patient identifier", s.PatientIdentifier.System+"|"+s.PatientIdentifier.Value)
	}
	return b.String()
}

func stringField(m map[string]interface{}, key string) string {
	value, _ := m[key].(string)
	return value
}

// codeableConceptText prefers the concept text, then the first coding
// display, then the first coding code.
func codeableConceptText(value interface{}) string {
	concept, ok := value.(map[string]interface{})
	if !ok {
		return ""
	}
	if text := stringField(concept, "text"); text != "" {
		return text
	}
	codings, _ := concept["coding"].([]interface{})
	for _, raw := range codings {
		coding, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if display := stringField(coding, "display"); display != "" {
			return display
		}
		if code := stringField(coding, "code"); code != "" {
			return code
		}
	}
	return ""
}

func referenceText(value interface{}) string {
	reference, ok := value.(map[string]interface{})
	if !ok {
		return ""
	}
	if display := stringField(reference, "display"); display != "" {
		return display
	}
	return stringField(reference, "reference")
}
