package handler

import (
	"net/http"

	"github.com/fiscal/registros/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with data as the body
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Message sends a 200 confirmation message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// Error sends an error body with the given status
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, message)
}
