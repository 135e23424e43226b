package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when the caller presents no valid identity.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrForbidden is returned when a valid identity lacks the required role or ownership.
	ErrForbidden = errors.New("operation not allowed")

	// ErrRoomExists is returned when creating a room whose number is taken.
	ErrRoomExists = errors.New("room already exists")
	// ErrRoomNotFound is returned when a referenced room is absent.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomAtCapacity is returned when an allocation would exceed room capacity.
	ErrRoomAtCapacity = errors.New("room is at capacity")
	// ErrAlreadyAllocated is returned when a student already holds a room.
	ErrAlreadyAllocated = errors.New("student already allocated a room")

	// ErrTicketNotFound is returned when a maintenance ticket is absent.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrGatePassNotFound is returned when a gate pass is absent.
	ErrGatePassNotFound = errors.New("gate pass not found")
	// ErrDocumentNotFound is returned when a document is absent.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidMeal is returned for meals outside breakfast/lunch/dinner.
	ErrInvalidMeal = errors.New("invalid meal")
	// ErrInvalidStatus is returned for status values outside the record's enumeration.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrServedExceedsPrepared is returned when mess stats report more plates served than prepared.
	ErrServedExceedsPrepared = errors.New("served cannot exceed prepared")
	// ErrInvalidAmount is returned when a fee amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
)

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
	switch err {
	case ErrUnauthenticated:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrRoomNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ROOM_NOT_FOUND")
	case ErrTicketNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TICKET_NOT_FOUND")
	case ErrGatePassNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "GATEPASS_NOT_FOUND")
	case ErrDocumentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "DOCUMENT_NOT_FOUND")
	case ErrRoomExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "ROOM_EXISTS")
	case ErrAlreadyAllocated:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_ALLOCATED")
	case ErrRoomAtCapacity:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROOM_AT_CAPACITY")
	case ErrInvalidMeal:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_MEAL")
	case ErrInvalidStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case ErrServedExceedsPrepared:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SERVED_EXCEEDS_PREPARED")
	case ErrInvalidAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
