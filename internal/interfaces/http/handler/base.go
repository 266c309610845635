package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/interfaces/http/dto"
	"github.com/ims/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getActor returns the authenticated actor. Routes using it always sit
// behind the auth middleware, so a missing actor is a wiring bug.
func getActor(c *gin.Context) (identity.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	return actor, ok
}

// parseID parses the :id path parameter as a UUID
func parseID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Null sends a 200 response with a JSON null data field
func (h *BaseHandler) Null(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewNullResponse())
}

// Message sends a 200 response carrying only a confirmation message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.errorResponse(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// HandleBindingError sends a 400 response for a request body binding
// failure, listing per-field details when the error came from validation
func (h *BaseHandler) HandleBindingError(c *gin.Context, err error) {
	if details := middleware.FormatValidationErrors(err); details != nil {
		requestID := c.GetString("request_id")
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Validation failed", requestID, details))
		return
	}
	h.BadRequest(c, err.Error())
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.errorResponse(c, http.StatusUnauthorized, shared.CodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.errorResponse(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleDomainError converts a domain error to its HTTP response
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.errorResponse(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}
	h.InternalError(c, "An unexpected error occurred")
}

func (h *BaseHandler) errorResponse(c *gin.Context, status int, code, message string) {
	requestID := c.GetString("request_id")
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, requestID))
}
