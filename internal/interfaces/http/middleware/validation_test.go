package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidFields(t *testing.T) {
	SetupValidator()
	gin.SetMode(gin.TestMode)

	var bindErr error
	r := gin.New()
	r.POST("/bind", func(c *gin.Context) {
		var req struct {
			Rfc        string `json:"rfc" binding:"required"`
			Aprobacion *bool  `json:"aprobacion" binding:"required"`
		}
		bindErr = c.ShouldBindJSON(&req)
		c.Status(http.StatusNoContent)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(`{}`)))

	require.Error(t, bindErr)
	assert.ElementsMatch(t, []string{"rfc:required", "aprobacion:required"}, InvalidFields(bindErr))
	assert.Nil(t, InvalidFields(errors.New("invalid character")))
}
