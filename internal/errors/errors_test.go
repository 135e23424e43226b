package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{ErrRoomNotFound, http.StatusNotFound, "ROOM_NOT_FOUND"},
		{ErrTicketNotFound, http.StatusNotFound, "TICKET_NOT_FOUND"},
		{ErrGatePassNotFound, http.StatusNotFound, "GATEPASS_NOT_FOUND"},
		{ErrDocumentNotFound, http.StatusNotFound, "DOCUMENT_NOT_FOUND"},
		{ErrRoomExists, http.StatusConflict, "ROOM_EXISTS"},
		{ErrAlreadyAllocated, http.StatusConflict, "ALREADY_ALLOCATED"},
		{ErrRoomAtCapacity, http.StatusBadRequest, "ROOM_AT_CAPACITY"},
		{ErrInvalidMeal, http.StatusBadRequest, "INVALID_MEAL"},
		{ErrInvalidStatus, http.StatusBadRequest, "INVALID_STATUS"},
		{ErrServedExceedsPrepared, http.StatusBadRequest, "SERVED_EXCEEDS_PREPARED"},
		{ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestHTTPError_ToErrorResponse(t *testing.T) {
	httpErr := MapErrorToHTTP(ErrForbidden)
	resp := httpErr.ToErrorResponse()
	assert.Equal(t, ErrForbidden.Error(), resp.Error)
	assert.Equal(t, "FORBIDDEN", resp.Code)
}
