package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/fiscal/registros/internal/infrastructure/logger"
	"github.com/fiscal/registros/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version string) *SystemHandler {
	return &SystemHandler{name: name, version: version, startTime: time.Now()}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name" example:"registros-fiscales"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
// @ID           getSystemInfo
// @Summary      Get system information
// @Tags         system
// @Produce      json
// @Success      200 {object} SystemInfoResponse
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      h.name,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Tags         system
// @Produce      json
// @Success      200 {object} PingResponse
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{Message: "pong", Timestamp: time.Now().Format(time.RFC3339)})
}

// Pinger reports store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
	Stats() (persistence.ConnectionStats, error)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string                       `json:"status" example:"healthy"`
	Time     string                       `json:"time"`
	Database string                       `json:"database" example:"ok"`
	Pool     *persistence.ConnectionStats `json:"pool,omitempty"`
}

// HealthHandler reports whether the store answers a ping.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @ID           health
// @Summary      Liveness and database reachability
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	now := time.Now().Format(time.RFC3339)
	if err := h.db.Ping(c.Request.Context()); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Time: now, Database: "error"})
		return
	}
	resp := HealthResponse{Status: "healthy", Time: now, Database: "ok"}
	if stats, err := h.db.Stats(); err == nil {
		resp.Pool = &stats
	}
	c.JSON(http.StatusOK, resp)
}
