package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fiscal/registros/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

func (f fakePinger) Stats() (persistence.ConnectionStats, error) {
	return persistence.ConnectionStats{MaxOpenConnections: 10, Idle: 2}, nil
}

func TestSystemHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewSystemHandler("registros-fiscales", "1.0.0")
	r := gin.New()
	r.GET("/info", h.GetSystemInfo)
	r.GET("/ping", h.Ping)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/info", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var info SystemInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "registros-fiscales", info.Name)
	assert.NotEmpty(t, info.GoVersion)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"pong"`)
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", NewHealthHandler(fakePinger{}).Health)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		require.NotNil(t, resp.Pool)
		assert.Equal(t, 10, resp.Pool.MaxOpenConnections)
	})

	t.Run("unhealthy", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", NewHealthHandler(fakePinger{err: errors.New("refused")}).Health)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"error"`)
		assert.NotContains(t, w.Body.String(), "refused")
	})
}
