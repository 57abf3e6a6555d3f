package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"servicerequest-service/internal/pkg/constvars"
)

// Kind tags a failure so callers can map it to an outcome without
// inspecting the underlying driver or parser error.
type Kind string

const (
	KindMalformedInput        Kind = "MalformedInput"
	KindSchemaViolation       Kind = "SchemaViolation"
	KindInvalidIdentifier     Kind = "InvalidIdentifier"
	KindNotFound              Kind = "NotFound"
	KindInfrastructureFailure Kind = "InfrastructureFailure"

	// KindRequestRejected covers transport level refusals such as rate limiting.
	KindRequestRejected Kind = "RequestRejected"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"-"`
	Kind          Kind       `json:"-"`
	Locations     []Location `json:"-"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	loc := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, loc.File, loc.Line, loc.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError is used by the constructor variables in types.go.
// The recorded location is the caller of the constructor.
func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		Success:       false,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Kind:          kind,
		Err:           err,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	var inner *CustomError
	if errors.As(err, &inner) {
		customErr.Locations = append(customErr.Locations, inner.Locations...)
	}
	customErr.Locations = append([]Location{getLocation(3)}, customErr.Locations...)
	return customErr
}

// KindOf reports the outcome tag carried by err. Untagged errors are
// treated as infrastructure failures.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindInfrastructureFailure
}

func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
