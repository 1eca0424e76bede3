// Package web serves the operator review page. It reads and writes
// registrations only through the registros HTTP API.
package web

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/fiscal/registros/internal/infrastructure/logger"
	"github.com/fiscal/registros/internal/interfaces/web/assets"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"maragu.dev/gomponents"
)

// Client is the subset of the registros API the page uses.
type Client interface {
	List(ctx context.Context) ([]Registro, error)
	SetApproval(ctx context.Context, rfc string, approved bool) (string, error)
}

// Options configures the review page.
type Options struct {
	DatastarURL   string
	DocumentsBase string
	ToastTTL      time.Duration
}

// Handler renders the review page and its fragments.
type Handler struct {
	api  Client
	opts pageOptions
}

// NewHandler creates the review page handler.
func NewHandler(api Client, opts Options) *Handler {
	if opts.ToastTTL <= 0 {
		opts.ToastTTL = 3 * time.Second
	}
	if opts.DocumentsBase == "" {
		opts.DocumentsBase = "/"
	}
	return &Handler{
		api: api,
		opts: pageOptions{
			DatastarURL:   opts.DatastarURL,
			DocumentsBase: opts.DocumentsBase,
			ToastTTL:      opts.ToastTTL,
		},
	}
}

// RegisterRoutes mounts the page, its fragments and the stylesheet.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	static, err := fs.Sub(assets.StaticFS(), "static")
	if err != nil {
		panic(err)
	}
	rg.StaticFS("/ui/static", http.FS(static))

	rg.GET("/", h.Index)
	rg.GET("/ui/registros", h.Registros)
	rg.POST("/ui/registros/:rfc/aprobacion", h.SetApproval)
}

// Index renders the page shell.
func (h *Handler) Index(c *gin.Context) {
	renderHTML(c.Writer, http.StatusOK, shellPage(h.opts))
}

// Registros renders the list fragment.
func (h *Handler) Registros(c *gin.Context) {
	renderHTML(c.Writer, http.StatusOK, h.listFragment(c))
}

// SetApproval forwards a decision to the API, then answers with a toast
// describing the real outcome and a fresh list.
func (h *Handler) SetApproval(c *gin.Context) {
	rfc := c.Param("rfc")
	approved, err := strconv.ParseBool(c.Query("valor"))
	if err != nil {
		toast := h.newToast(SeverityError, "Valor de aprobación inválido")
		renderHTML(c.Writer, http.StatusOK, gomponents.Group{toastSlot(toast, h.opts.ToastTTL)})
		return
	}

	var toast *Toast
	if _, err := h.api.SetApproval(c.Request.Context(), rfc, approved); err != nil {
		logger.GetGinLogger(c).Warn("Approval request failed",
			zap.String("rfc", rfc),
			zap.Bool("aprobacion", approved),
			zap.Error(err),
		)
		toast = h.newToast(SeverityError, failureMessage(rfc, err))
	} else {
		msg := "RFC " + rfc + " rechazado correctamente"
		if approved {
			msg = "RFC " + rfc + " aprobado correctamente"
		}
		toast = h.newToast(SeveritySuccess, msg)
	}

	renderHTML(c.Writer, http.StatusOK, gomponents.Group{
		toastSlot(toast, h.opts.ToastTTL),
		h.listFragment(c),
	})
}

func (h *Handler) listFragment(c *gin.Context) gomponents.Node {
	records, err := h.api.List(c.Request.Context())
	if err != nil {
		logger.GetGinLogger(c).Error("Failed to load registrations", zap.Error(err))
		return registrosErrorFragment("No se pudieron cargar los registros")
	}
	return registrosFragment(records, h.opts.DocumentsBase)
}

func (h *Handler) newToast(severity Severity, message string) *Toast {
	return &Toast{ID: "toast-" + uuid.NewString(), Message: message, Severity: severity}
}

func failureMessage(rfc string, err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "RFC " + rfc + ": " + apiErr.Message
	}
	return "RFC " + rfc + ": no se pudo contactar el servicio"
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
