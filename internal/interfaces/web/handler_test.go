package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClient is a mock implementation of Client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) List(ctx context.Context) ([]Registro, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Registro), args.Error(1)
}

func (m *MockClient) SetApproval(ctx context.Context, rfc string, approved bool) (string, error) {
	args := m.Called(ctx, rfc, approved)
	return args.String(0), args.Error(1)
}

func boolPtr(b bool) *bool { return &b }

func setupWebRouter(api Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(api, Options{
		DatastarURL: "https://cdn.example.com/datastar.js",
		ToastTTL:    3 * time.Second,
	}).RegisterRoutes(&r.RouterGroup)
	return r
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHandler_Index(t *testing.T) {
	r := setupWebRouter(new(MockClient))

	w := serve(r, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "<h1 class=\"title\">Registros Fiscales</h1>")
	assert.Contains(t, body, "Cargando registros...")
	assert.Contains(t, body, `data-init="@get(&#39;/ui/registros&#39;)"`)
	assert.Contains(t, body, `src="https://cdn.example.com/datastar.js"`)
	assert.Contains(t, body, `<div id="toast"></div>`)
}

func TestHandler_Static(t *testing.T) {
	r := setupWebRouter(new(MockClient))

	w := serve(r, http.MethodGet, "/ui/static/app.css")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".badge-pending")
}

func TestHandler_Registros(t *testing.T) {
	api := new(MockClient)
	api.On("List", mock.Anything).Return([]Registro{
		{RFC: "ABC010101AAA", Nombre: "Acme SA", Periodo: "2024-01"},
		{RFC: "APR010101AAA", Nombre: "Aprobada SA", Periodo: "2024-02", Aprobacion: boolPtr(true)},
		{RFC: "REC010101AAA", Nombre: "Rechazada SA", Periodo: "2024-03", Aprobacion: boolPtr(false)},
	}, nil)
	r := setupWebRouter(api)

	w := serve(r, http.MethodGet, "/ui/registros")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div id="registros">`))
	assert.Contains(t, body, `<span class="badge badge-pending">Pendiente</span>`)
	assert.Contains(t, body, `<span class="badge badge-approved">Aprobado</span>`)
	assert.Contains(t, body, `<span class="badge badge-rejected">Rechazado</span>`)
	assert.Contains(t, body, "Acme SA")
	assert.Contains(t, body, `href="/ABC010101AAA.pdf"`)
	assert.Contains(t, body, `rel="noopener noreferrer"`)

	// Approve is disabled only on the approved card; reject only on the rejected one.
	assert.Contains(t, body, `<button type="button" class="btn btn-approve" disabled>Aprobar</button>`)
	assert.Contains(t, body, `<button type="button" class="btn btn-reject" disabled>Rechazar</button>`)
	assert.Equal(t, 2, strings.Count(body, " disabled>"))
	assert.Contains(t, body, `@post(&#39;/ui/registros/ABC010101AAA/aprobacion?valor=true&#39;)`)
	assert.Contains(t, body, `@post(&#39;/ui/registros/APR010101AAA/aprobacion?valor=false&#39;)`)
}

func TestHandler_Registros_QuoteInRFCStaysInert(t *testing.T) {
	api := new(MockClient)
	api.On("List", mock.Anything).Return([]Registro{
		{RFC: "A'B);alert(1)//", Nombre: "Comillas SA", Periodo: "2024-01"},
	}, nil)
	r := setupWebRouter(api)

	w := serve(r, http.MethodGet, "/ui/registros")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	// The RFC is path-escaped inside the expression, so it cannot close the quoted URL.
	assert.Contains(t, body, `@post(&#39;/ui/registros/A%27B%29%3Balert%281%29%2F%2F/aprobacion?valor=true&#39;)`)
	assert.Contains(t, body, `<span class="rfc">A&#39;B);alert(1)//</span>`)
	assert.NotContains(t, body, "'B)")
	assert.NotContains(t, body, "&#39;B);alert(1)///aprobacion")
}

func TestHandler_Registros_Empty(t *testing.T) {
	api := new(MockClient)
	api.On("List", mock.Anything).Return([]Registro{}, nil)
	r := setupWebRouter(api)

	w := serve(r, http.MethodGet, "/ui/registros")

	assert.Equal(t, `<div id="registros"><p class="muted">No hay registros</p></div>`, w.Body.String())
}

func TestHandler_Registros_APIFailure(t *testing.T) {
	api := new(MockClient)
	api.On("List", mock.Anything).Return(nil, &APIError{StatusCode: 500, Message: "Error al obtener registros"})
	r := setupWebRouter(api)

	w := serve(r, http.MethodGet, "/ui/registros")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No se pudieron cargar los registros")
}

var toastIDPattern = regexp.MustCompile(`id="(toast-[0-9a-f-]{36})"`)

func TestHandler_SetApproval_Success(t *testing.T) {
	api := new(MockClient)
	api.On("SetApproval", mock.Anything, "ABC010101AAA", true).Return("Registro aprobado correctamente", nil)
	api.On("List", mock.Anything).Return([]Registro{
		{RFC: "ABC010101AAA", Nombre: "Acme SA", Periodo: "2024-01", Aprobacion: boolPtr(true)},
	}, nil)
	r := setupWebRouter(api)

	w := serve(r, http.MethodPost, "/ui/registros/ABC010101AAA/aprobacion?valor=true")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div id="toast">`))
	assert.Contains(t, body, `class="toast toast-success"`)
	assert.Contains(t, body, "RFC ABC010101AAA aprobado correctamente")
	assert.Contains(t, body, "setTimeout(() =&gt; el.remove(), 3000)")
	assert.Contains(t, body, `<div id="registros">`)
	assert.Contains(t, body, "Aprobado</span>")
	api.AssertExpectations(t)
}

func TestHandler_SetApproval_Reject(t *testing.T) {
	api := new(MockClient)
	api.On("SetApproval", mock.Anything, "ABC010101AAA", false).Return("Registro marcado como no aprobado", nil)
	api.On("List", mock.Anything).Return([]Registro{}, nil)
	r := setupWebRouter(api)

	w := serve(r, http.MethodPost, "/ui/registros/ABC010101AAA/aprobacion?valor=false")

	assert.Contains(t, w.Body.String(), "RFC ABC010101AAA rechazado correctamente")
}

func TestHandler_SetApproval_FailureShowsError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"not found", &APIError{StatusCode: 404, Message: "Registro no encontrado"}, "RFC NOEXISTE0000: Registro no encontrado"},
		{"transport", errors.New("connection refused"), "RFC NOEXISTE0000: no se pudo contactar el servicio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockClient)
			api.On("SetApproval", mock.Anything, "NOEXISTE0000", true).Return("", tt.err)
			api.On("List", mock.Anything).Return([]Registro{}, nil)
			r := setupWebRouter(api)

			w := serve(r, http.MethodPost, "/ui/registros/NOEXISTE0000/aprobacion?valor=true")

			body := w.Body.String()
			assert.Contains(t, body, `class="toast toast-error"`)
			assert.Contains(t, body, tt.wantMsg)
			assert.NotContains(t, body, "correctamente")
			api.AssertCalled(t, "List", mock.Anything)
		})
	}
}

func TestHandler_SetApproval_InvalidValue(t *testing.T) {
	api := new(MockClient)
	r := setupWebRouter(api)

	w := serve(r, http.MethodPost, "/ui/registros/ABC010101AAA/aprobacion?valor=quizas")

	assert.Contains(t, w.Body.String(), "toast-error")
	api.AssertNotCalled(t, "SetApproval", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ToastIDsAreUnique(t *testing.T) {
	api := new(MockClient)
	api.On("SetApproval", mock.Anything, mock.Anything, mock.Anything).Return("ok", nil)
	api.On("List", mock.Anything).Return([]Registro{}, nil)
	r := setupWebRouter(api)

	first := toastIDPattern.FindStringSubmatch(serve(r, http.MethodPost, "/ui/registros/A/aprobacion?valor=true").Body.String())
	second := toastIDPattern.FindStringSubmatch(serve(r, http.MethodPost, "/ui/registros/A/aprobacion?valor=true").Body.String())

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.NotEqual(t, first[1], second[1])
}

func TestBadge(t *testing.T) {
	label, class := badge(nil)
	assert.Equal(t, "Pendiente", label)
	assert.Equal(t, "badge-pending", class)

	label, _ = badge(boolPtr(true))
	assert.Equal(t, "Aprobado", label)

	label, _ = badge(boolPtr(false))
	assert.Equal(t, "Rechazado", label)
}

func TestDocumentURL(t *testing.T) {
	assert.Equal(t, "/ABC010101AAA.pdf", documentURL("/", "ABC010101AAA"))
	assert.Equal(t, "https://docs.example.com/pdf/ABC010101AAA.pdf", documentURL("https://docs.example.com/pdf/", "ABC010101AAA"))
	assert.Equal(t, "/A%2FB.pdf", documentURL("", "A/B"))
}
