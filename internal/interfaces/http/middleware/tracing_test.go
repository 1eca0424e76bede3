package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func TestTracing_RecordsServerSpan(t *testing.T) {
	recorder := setupTestTracer(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID(), TracingWithConfig(TracingConfig{ServiceName: "test", Enabled: true}), SpanEnricher())
	r.GET("/api/registros", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "x"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/registros", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("request_id", "req-1"))
}

func TestTracing_Disabled(t *testing.T) {
	recorder := setupTestTracer(t)
	r := newTestEngine(TracingWithConfig(TracingConfig{Enabled: false}), SpanEnricher())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, recorder.Ended())
}
