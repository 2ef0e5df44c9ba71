// Package result provides the success-or-error type used across the command
// layer. Expected outcomes (validation, not found, ownership) travel as a
// Failure carrying a severity-tagged *Error; panics are reserved for
// programmer errors such as a nil callback.
package result

import "net/http"

// Code is the machine-readable identifier of an Error.
type Code string

const (
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeConflict         Code = "CONFLICT"
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeForbidden        Code = "FORBIDDEN"
	CodeUnexpected       Code = "UNEXPECTED"
	CodeCritical         Code = "CRITICAL"
)

// Severity classifies an Error for response mapping.
type Severity int

const (
	// SeverityWarning is an expected, client-correctable outcome.
	SeverityWarning Severity = iota
	// SeverityError is an unexpected internal failure the caller cannot retry.
	SeverityError
	// SeverityCritical means a dependency or the service itself is unavailable.
	SeverityCritical
)

// String returns the severity name used in response bodies and logs.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// StatusClass is the family of response statuses a Severity maps to.
type StatusClass int

const (
	// ClientError is the 4xx family.
	ClientError StatusClass = iota
	// ServerError is the 500 family.
	ServerError
	// Unavailable is 503 Service Unavailable.
	Unavailable
)

// StatusClass maps the severity onto its response class.
// Unknown severities are treated as server errors.
func (s Severity) StatusClass() StatusClass {
	switch s {
	case SeverityWarning:
		return ClientError
	case SeverityCritical:
		return Unavailable
	default:
		return ServerError
	}
}

// HTTPStatus returns the representative HTTP status for the severity:
// 400, 500 or 503.
func (s Severity) HTTPStatus() int {
	switch s.StatusClass() {
	case ClientError:
		return http.StatusBadRequest
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, a human-readable message and a severity.
// It implements the error interface so it can be logged and wrapped like any
// other Go error.
type Error struct {
	Code     Code
	Message  string
	Severity Severity
}

// Error implements the error interface.
func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Is reports whether target is an *Error with the same code, so
// errors.Is(err, result.NotFound("")) matches any not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus refines the severity's status within its class using the code.
// A Warning always yields a 4xx, an Error a 500 and a Critical a 503.
func (e *Error) HTTPStatus() int {
	if e.Severity.StatusClass() != ClientError {
		return e.Severity.HTTPStatus()
	}
	switch e.Code {
	case CodeValidationFailed:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// ValidationFailed reports a broken business rule.
func ValidationFailed(message string) *Error {
	return &Error{Code: CodeValidationFailed, Message: message, Severity: SeverityWarning}
}

// NotFound reports a missing resource.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message, Severity: SeverityWarning}
}

// Conflict reports a request that clashes with the current state.
func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message, Severity: SeverityWarning}
}

// Unauthorized reports a missing or unknown caller identity.
func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message, Severity: SeverityWarning}
}

// Forbidden reports a caller acting on a resource they do not own.
func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message, Severity: SeverityWarning}
}

// Unexpected reports an internal failure.
func Unexpected(message string) *Error {
	return &Error{Code: CodeUnexpected, Message: message, Severity: SeverityError}
}

// Critical reports that the service cannot currently do its job.
func Critical(message string) *Error {
	return &Error{Code: CodeCritical, Message: message, Severity: SeverityCritical}
}
