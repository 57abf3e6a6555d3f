package fhirschema

import (
	"context"
	"errors"
	"fmt"
	"servicerequest-service/internal/app/config"
	"servicerequest-service/internal/app/contracts"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/exceptions"
	"servicerequest-service/internal/pkg/utils"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofhir/validator/pkg/issue"
	validatorlogger "github.com/gofhir/validator/pkg/logger"
	"github.com/gofhir/validator/pkg/validator"
	"go.uber.org/zap"
)

const diagnosticsSeparator = "; "

type fhirValidator struct {
	validator *validator.Validator
	Log       *zap.Logger
}

// NewFHIRValidator loads the embedded FHIR definitions for the configured
// release. Loading takes a few seconds, so one instance is shared per
// process.
func NewFHIRValidator(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.SchemaValidator, error) {
	validatorlogger.SetLevel(validatorlogger.LevelNone)

	v, err := validator.New(
		validator.WithVersion(internalConfig.FHIR.Version),
		validator.WithStrictMode(internalConfig.FHIR.StrictMode),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("FHIR schema validator ready",
		zap.String("fhir_version", v.Version()),
		zap.Bool("strict_mode", internalConfig.FHIR.StrictMode),
	)
	return &fhirValidator{
		validator: v,
		Log:       logger,
	}, nil
}

// Validate checks document against the ServiceRequest definition and
// returns it with empty values pruned. Every error level issue is
// reported in the violation message.
func (v *fhirValidator) Validate(ctx context.Context, document map[string]interface{}) (map[string]interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	v.Log.Info("fhirValidator.Validate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resourceType, _ := document[constvars.FieldResourceType].(string)
	if resourceType != "" && resourceType != constvars.ResourceServiceRequest {
		diagnostics := fmt.Sprintf("resourceType must be '%s', got '%s'", constvars.ResourceServiceRequest, resourceType)
		return nil, exceptions.ErrSchemaViolation(nil, diagnostics)
	}

	body, err := json.Marshal(document)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := v.validator.Validate(ctx, body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSchemaValidator(err)
	}

	if result.HasErrors() {
		v.Log.Info("fhirValidator.Validate document rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingIssuesCountKey, result.ErrorCount()),
		)
		return nil, exceptions.ErrSchemaViolation(nil, FormatIssues(result.Issues))
	}

	v.Log.Info("fhirValidator.Validate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return utils.PruneEmptyValues(document), nil
}

// FormatIssues joins the error and fatal issues as "path: diagnostics".
func FormatIssues(issues []issue.Issue) string {
	messages := make([]string, 0, len(issues))
	for _, each := range issues {
		if each.Severity != issue.SeverityError && each.Severity != issue.SeverityFatal {
			continue
		}
		if len(each.Expression) > 0 {
			messages = append(messages, fmt.Sprintf("%s: %s", strings.Join(each.Expression, ", "), each.Diagnostics))
			continue
		}
		messages = append(messages, each.Diagnostics)
	}
	return strings.Join(messages, diagnosticsSeparator)
}
