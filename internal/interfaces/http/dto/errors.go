package dto

import (
	"net/http"

	"github.com/ims/backend/internal/domain/shared"
)

// Error codes used by the HTTP layer on top of the domain codes
const (
	ErrCodeInternal   = "INTERNAL"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound:     http.StatusNotFound,
	shared.CodeForbidden:    http.StatusForbidden,
	shared.CodeConflict:     http.StatusConflict,
	shared.CodeInvalidInput: http.StatusBadRequest,
	shared.CodeUnauthorized: http.StatusUnauthorized,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInternal:         http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code,
// defaulting to 500 for unknown codes.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
