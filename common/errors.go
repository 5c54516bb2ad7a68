package common

import "errors"

const (
	ErrKindInvalidInput    = "invalid_input"
	ErrKindNotFound        = "not_found"
	ErrKindUnauthenticated = "unauthenticated"
	ErrKindForbidden       = "forbidden"
	ErrKindConflict        = "conflict"
)

// ApiError carries the error taxonomy kind alongside the user-visible
// message. Routes translate the kind into an HTTP status.
type ApiError struct {
	Kind    string
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func InvalidInput(message string) *ApiError {
	return &ApiError{Kind: ErrKindInvalidInput, Message: message}
}

func NotFound(message string) *ApiError {
	return &ApiError{Kind: ErrKindNotFound, Message: message}
}

func Unauthenticated(message string) *ApiError {
	return &ApiError{Kind: ErrKindUnauthenticated, Message: message}
}

func Forbidden(message string) *ApiError {
	return &ApiError{Kind: ErrKindForbidden, Message: message}
}

func Conflict(message string) *ApiError {
	return &ApiError{Kind: ErrKindConflict, Message: message}
}

func AsApiError(err error) (*ApiError, bool) {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
