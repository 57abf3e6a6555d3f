package utils

import (
	"servicerequest-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizePatientIdentifierQuery(input *requests.PatientIdentifierQuery) {
	input.System = strings.TrimSpace(input.System)
	input.Value = strings.TrimSpace(input.Value)
}

// CloneDocument copies the top-level keys of doc so callers can add or
// remove fields without touching the caller's mapping.
func CloneDocument(doc map[string]interface{}) map[string]interface{} {
	clone := make(map[string]interface{}, len(doc))
	for key, value := range doc {
		clone[key] = value
	}
	return clone
}

// PruneEmptyValues returns a copy of doc without null values, empty
// strings, empty arrays and empty objects, at any depth. Zero numbers and
// false booleans are kept.
func PruneEmptyValues(doc map[string]interface{}) map[string]interface{} {
	pruned, ok := pruneValue(doc)
	if !ok {
		return map[string]interface{}{}
	}
	return pruned.(map[string]interface{})
}

func pruneValue(value interface{}) (interface{}, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		return v, v != ""
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, item := range v {
			if pruned, ok := pruneValue(item); ok {
				result[key] = pruned
			}
		}
		return result, len(result) > 0
	case []interface{}:
		result := make([]interface{}, 0, len(v))
		for _, item := range v {
			if pruned, ok := pruneValue(item); ok {
				result = append(result, pruned)
			}
		}
		return result, len(result) > 0
	default:
		return v, true
	}
}
