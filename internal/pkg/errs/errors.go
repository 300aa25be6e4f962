package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each failure kind in the pipeline taxonomy.
// Callers classify failures with errors.Is against these, while the
// concrete error types below carry the details for logging.
var (
	ErrValueIsRequired  = errors.New("value is required")
	ErrTransport        = errors.New("transport failure")
	ErrAuth             = errors.New("authentication failure")
	ErrValidation       = errors.New("validation failure")
	ErrUpstreamBusiness = errors.New("upstream business failure")
	ErrUpload           = errors.New("upload failure")
	ErrUnexpected       = errors.New("unexpected failure")
)

// ValueIsRequiredError indicates a required value (typically a configuration
// parameter) is missing. Used by fail-fast startup validation.
type ValueIsRequiredError struct {
	ParamName string
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func (e *ValueIsRequiredError) Error() string {
	return fmt.Sprintf("value is required: %s", sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// TransportError indicates the remote call never produced a usable response:
// connection refused, timeout, DNS failure, or a broken body read.
type TransportError struct {
	Op    string
	Cause error
}

// NewTransportError creates an error for a failed remote call.
func NewTransportError(op string, cause error) *TransportError {
	return &TransportError{Op: op, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("transport failure: %s", sanitize(e.Op))
	}
	return fmt.Sprintf("transport failure: %s (cause: %s)", sanitize(e.Op), sanitize(e.Cause.Error()))
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

// AuthError indicates the remote endpoint rejected the supplied credentials.
// Distinguished from TransportError so a misconfigured credential set is
// visible as such in the logs rather than as a generic call failure.
type AuthError struct {
	Op         string
	StatusCode int
}

// NewAuthError creates an error for a rejected authentication attempt.
func NewAuthError(op string, statusCode int) *AuthError {
	return &AuthError{Op: op, StatusCode: statusCode}
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failure: %s (status: %d)", sanitize(e.Op), e.StatusCode)
}

func (e *AuthError) Unwrap() error {
	return ErrAuth
}

// ValidationError indicates an order carried malformed or missing required
// fields, such as an unparsable shipping locality id.
type ValidationError struct {
	ParamName string
	Cause     error
}

// NewValidationError creates an error for an invalid field value.
func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

// NewValidationErrorWithCause creates an error for an invalid field value
// with the underlying cause preserved for unwrapping.
func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("validation failure: %s", sanitize(e.ParamName))
	}
	return fmt.Sprintf("validation failure: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause.Error()))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UpstreamBusinessError indicates the marketplace API answered the call but
// flagged the operation as failed, e.g. an AWB request with isError set.
// OrderID may be empty when the rejection is not tied to a single order.
type UpstreamBusinessError struct {
	OrderID string
	Message string
}

// NewUpstreamBusinessError creates an error for an operation the upstream
// API explicitly rejected. An empty message is normalized to "unknown".
func NewUpstreamBusinessError(orderID string, message string) *UpstreamBusinessError {
	if message == "" {
		message = "unknown"
	}
	return &UpstreamBusinessError{OrderID: orderID, Message: message}
}

func (e *UpstreamBusinessError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("upstream business failure: %s", sanitize(e.Message))
	}
	return fmt.Sprintf("upstream business failure: order %s: %s", sanitize(e.OrderID), sanitize(e.Message))
}

func (e *UpstreamBusinessError) Unwrap() error {
	return ErrUpstreamBusiness
}

// UploadError indicates the remote archive store could not be reached,
// authenticated against, or written to.
type UploadError struct {
	Path  string
	Cause error
}

// NewUploadErrorWithCause creates an error for a failed archive upload.
func NewUploadErrorWithCause(path string, cause error) *UploadError {
	return &UploadError{Path: path, Cause: cause}
}

func (e *UploadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("upload failure: %s", sanitize(e.Path))
	}
	return fmt.Sprintf("upload failure: %s (cause: %s)", sanitize(e.Path), sanitize(e.Cause.Error()))
}

func (e *UploadError) Unwrap() error {
	return ErrUpload
}

// UnexpectedError is the final catch-all kind. Anything that does not map to
// one of the anticipated kinds is wrapped here instead of being swallowed.
type UnexpectedError struct {
	Op    string
	Cause error
}

// NewUnexpectedErrorWithCause wraps a failure that no anticipated kind covers.
func NewUnexpectedErrorWithCause(op string, cause error) *UnexpectedError {
	return &UnexpectedError{Op: op, Cause: cause}
}

func (e *UnexpectedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("unexpected failure: %s", sanitize(e.Op))
	}
	return fmt.Sprintf("unexpected failure: %s (cause: %s)", sanitize(e.Op), sanitize(e.Cause.Error()))
}

func (e *UnexpectedError) Unwrap() error {
	return ErrUnexpected
}

// sanitize flattens newlines so an error message always stays on one log line.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
