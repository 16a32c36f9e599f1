package apperror

import (
	"errors"
)

// Kind classifies an application error by what the caller can do about it.
type Kind int

const (
	// ValidationFailed means a client-side precondition was not met. The
	// operation was blocked before any network call was issued.
	ValidationFailed Kind = iota
	// CatalogUnavailable means a product or customer listing could not be
	// fetched; the consumer must treat the list as empty.
	CatalogUnavailable
	// SubmissionRejected means the server declined a create/update, usually
	// with a reason string and sometimes a field-level error map.
	SubmissionRejected
	// NotFound means a detail fetch referenced a record that does not exist.
	NotFound
	// NetworkFailure is a transport-level failure, indistinguishable from a
	// timeout.
	NetworkFailure
)

func (k Kind) String() string {
	switch k {
	case ValidationFailed:
		return "validation_failed"
	case CatalogUnavailable:
		return "catalog_unavailable"
	case SubmissionRejected:
		return "submission_rejected"
	case NotFound:
		return "not_found"
	case NetworkFailure:
		return "network_failure"
	}
	return "unknown"
}

// AppError represents an application error scoped to a single operation.
// No AppError is fatal to the process.
type AppError struct {
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	cause   error
}

// FieldError represents a validation error for a specific field, either
// raised locally or mapped back from a server error map.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// NewValidationError creates a local validation error from field errors.
func NewValidationError(fieldErrors ...FieldError) *AppError {
	return &AppError{
		Kind:    ValidationFailed,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewValidationMessage creates a local validation error with a single message.
func NewValidationMessage(message string) *AppError {
	return &AppError{Kind: ValidationFailed, Message: message}
}

// NewCatalogUnavailable wraps a failed catalog/customer list fetch.
func NewCatalogUnavailable(resource string, cause error) *AppError {
	return &AppError{
		Kind:    CatalogUnavailable,
		Message: "Failed to load " + resource,
		cause:   cause,
	}
}

// NewSubmissionRejected creates a server-rejection error carrying the
// server-provided reason and optional field error map.
func NewSubmissionRejected(message string, fieldErrors []FieldError) *AppError {
	if message == "" {
		message = "Request rejected by server"
	}
	return &AppError{
		Kind:    SubmissionRejected,
		Message: message,
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error for the named resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Kind: NotFound, Message: resource + " not found"}
}

// NewNetworkFailure wraps a transport-level error.
func NewNetworkFailure(cause error) *AppError {
	return &AppError{
		Kind:    NetworkFailure,
		Message: "Network request failed",
		cause:   cause,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// GetAppError converts an error to AppError if possible; anything else is
// treated as a network failure at the boundary.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewNetworkFailure(err)
}

// FieldMessage returns the message for a named field, if present.
func (e *AppError) FieldMessage(field string) (string, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}
