package utils

import (
	"errors"
	"net/http"
	"servicerequest-service/internal/pkg/constvars"
	"servicerequest-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildSuccessResponse writes data as the response body without an
// envelope. Records are returned exactly as they are stored.
func BuildSuccessResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// BuildErrorResponse maps err to its status code and client message.
// Developer messages and call-site locations go to the log only.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		logCustomError(log, customErr)
	} else if err != nil {
		log.Error(err.Error(),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindInfrastructureFailure)),
		)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	json.NewEncoder(w).Encode(response)
}

func logCustomError(log *zap.Logger, customErr *exceptions.CustomError) {
	fields := []zap.Field{
		zap.String(constvars.LoggingErrorKindKey, string(customErr.Kind)),
		zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
	}

	if customErr.Kind != exceptions.KindInfrastructureFailure {
		log.Info(customErr.DevMessage, fields...)
		return
	}

	for _, location := range customErr.Locations {
		location := map[string]interface{}{
			"file":          location.File,
			"line":          location.Line,
			"function_name": location.FunctionName,
		}
		log.Error(customErr.DevMessage,
			append(fields, zap.Any("location", location))...,
		)
	}
}
