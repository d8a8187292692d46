package types

import (
	"errors"
	"fmt"
)

// Error kinds for the domain operations. Handlers map these to HTTP statuses,
// everything else treats them as opaque classifications.
const (
	KindValidation   = "validation"
	KindAuthRequired = "auth_required"
	KindNotFound     = "not_found"
	KindFetch        = "fetch"
)

// DomainError classifies a failed domain operation.
type DomainError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// ValidationError reports bad or missing input, detected before any store write.
func ValidationError(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// AuthRequiredError reports a missing or invalid session.
func AuthRequiredError(message string) *DomainError {
	return &DomainError{Kind: KindAuthRequired, Message: message}
}

// NotFoundError reports a row that does not exist or is not owned by the caller.
func NotFoundError(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// FetchError wraps a failed store call.
func FetchError(cause error) *DomainError {
	return &DomainError{Kind: KindFetch, Message: "store operation failed", cause: cause}
}

// KindOf returns the DomainError kind, or KindFetch for unclassified errors.
func KindOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindFetch
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind string) bool {
	return KindOf(err) == kind
}
