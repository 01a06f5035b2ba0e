package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The message is identical for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when the email is already registered to another user.
	ErrEmailTaken = errors.New("email already exists")
	// ErrUserNotFound is returned when the referenced user record is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword is returned when the current password does not verify.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrUnauthenticated is returned when the bearer token is missing or invalid.
	ErrUnauthenticated = errors.New("invalid or missing token")
)

// ValidationError reports malformed or missing input with a client-safe message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with the given message.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy becomes a 500 with a generic message; the original error is never
// leaked to the client.
func MapErrorToHTTP(err error) *HTTPError {
	var validation *ValidationError
	switch {
	case errors.As(err, &validation):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: validation.Message}
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrWrongPassword):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, ErrUnauthenticated):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: err.Error()}
	case errors.Is(err, ErrUserNotFound):
		return &HTTPError{StatusCode: http.StatusNotFound, Message: err.Error()}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	}
}
