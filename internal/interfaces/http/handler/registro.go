package handler

import (
	"context"
	"net/http"

	registroapp "github.com/fiscal/registros/internal/application/registro"
	"github.com/fiscal/registros/internal/infrastructure/logger"
	"github.com/fiscal/registros/internal/interfaces/http/dto"
	"github.com/fiscal/registros/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegistroService is the application surface the handler needs.
type RegistroService interface {
	List(ctx context.Context) ([]registroapp.RegistroResponse, error)
	SetApproval(ctx context.Context, rfc string, approved bool) (string, error)
}

// RegistroHandler serves the registration review API.
type RegistroHandler struct {
	BaseHandler
	service RegistroService
}

// NewRegistroHandler creates a new RegistroHandler
func NewRegistroHandler(service RegistroService) *RegistroHandler {
	return &RegistroHandler{service: service}
}

// List godoc
// @ID           listRegistros
// @Summary      List registration records
// @Description  Returns every registration joined with its client, whatever its approval status. APROBACION is null while pending.
// @Tags         registros
// @Produce      json
// @Success      200 {array}  registro.RegistroResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /registros [get]
func (h *RegistroHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.InternalError(c, dto.MsgListFailed)
		return
	}
	h.Success(c, records)
}

// SetApproval godoc
// @ID           setRegistroApproval
// @Summary      Approve or reject a registration
// @Description  Sets the approval flag for the record with the given RFC. aprobacion must be a JSON boolean.
// @Tags         registros
// @Accept       json
// @Produce      json
// @Param        request body     registro.SetApprovalRequest true "Decision"
// @Success      200     {object} dto.MessageResponse
// @Failure      400     {object} dto.ErrorResponse
// @Failure      404     {object} dto.ErrorResponse
// @Failure      500     {object} dto.ErrorResponse
// @Router       /registros [post]
func (h *RegistroHandler) SetApproval(c *gin.Context) {
	var req registroapp.SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetGinLogger(c).Debug("Rejected approval request",
			zap.Strings("fields", middleware.InvalidFields(err)),
			zap.Error(err),
		)
		h.BadRequest(c, dto.MsgInvalidApproval)
		return
	}

	msg, err := h.service.SetApproval(c.Request.Context(), req.Rfc, *req.Aprobacion)
	if err != nil {
		switch dto.StatusFor(err) {
		case http.StatusBadRequest:
			h.BadRequest(c, dto.MsgInvalidApproval)
		case http.StatusNotFound:
			h.NotFound(c, dto.MsgNotFound)
		default:
			h.InternalError(c, dto.MsgUpdateFailed)
		}
		return
	}
	h.Message(c, msg)
}
