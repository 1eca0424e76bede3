package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "/api", r.prefix)
	assert.Empty(t, r.registrars)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	var hits int

	group := NewDomainGroup("test", "/test").
		Use(func(c *gin.Context) { hits++; c.Next() }).
		GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") }).
		POST("/ping", func(c *gin.Context) { c.String(http.StatusCreated, "created") })

	NewRouter(engine).Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/test/ping", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, hits)
}

func TestDomainGroup(t *testing.T) {
	g := NewDomainGroup("registros", "/registros")
	assert.Equal(t, "registros", g.Name())
	assert.Equal(t, "/registros", g.Prefix())

	g.GET("", nil).POST("", nil)
	assert.Len(t, g.routes, 2)
	assert.Equal(t, http.MethodPost, g.routes[1].method)
}
