package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrPostNotFound is returned when a micropost is not found.
	ErrPostNotFound = errors.New("micropost not found")
	// ErrRelationshipNotFound is returned when a follow edge is not found.
	ErrRelationshipNotFound = errors.New("relationship not found")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotSignedIn is returned when an action needs a session and there is none.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrForbidden is returned when the signed-in account may not perform an action.
	ErrForbidden = errors.New("forbidden")
	// ErrCannotDeleteSelf is returned when an admin tries to delete their own account.
	ErrCannotDeleteSelf = errors.New("cannot delete yourself")
	// ErrCannotFollowSelf is returned when an account tries to follow itself.
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
	// ErrAlreadyFollowing is returned when the follow edge already exists.
	ErrAlreadyFollowing = errors.New("already following")
)

// ValidationErrors is the full, ordered list of messages for a rejected submission.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// AsValidation extracts validation messages from err, if any.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	if v, ok := AsValidation(err); ok {
		return NewHTTPError(http.StatusUnprocessableEntity, v.Error(), "VALIDATION_FAILED")
	}
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ACCOUNT_NOT_FOUND")
	case errors.Is(err, ErrPostNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MICROPOST_NOT_FOUND")
	case errors.Is(err, ErrRelationshipNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RELATIONSHIP_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotSignedIn):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_SIGNED_IN")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrCannotDeleteSelf):
		return NewHTTPError(http.StatusForbidden, err.Error(), "CANNOT_DELETE_SELF")
	case errors.Is(err, ErrCannotFollowSelf):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "CANNOT_FOLLOW_SELF")
	case errors.Is(err, ErrAlreadyFollowing):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_FOLLOWING")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
