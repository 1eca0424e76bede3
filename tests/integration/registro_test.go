//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	registroapp "github.com/fiscal/registros/internal/application/registro"
	"github.com/fiscal/registros/internal/domain/registro"
	"github.com/fiscal/registros/internal/infrastructure/config"
	"github.com/fiscal/registros/internal/infrastructure/persistence"
	"github.com/fiscal/registros/internal/interfaces/http/handler"
	"github.com/fiscal/registros/internal/interfaces/http/middleware"
	"github.com/fiscal/registros/internal/interfaces/http/router"
	"github.com/fiscal/registros/internal/interfaces/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func boolPtr(b bool) *bool { return &b }

func TestRegistroRepository_Postgres(t *testing.T) {
	tdb := NewTestDB(t)
	repo := persistence.NewGormRegistroRepository(tdb.DB, persistence.DefaultTableNames())
	ctx := context.Background()

	t.Run("empty relation lists nothing", func(t *testing.T) {
		registros, err := repo.ListRegistrations(ctx)
		require.NoError(t, err)
		assert.NotNil(t, registros)
		assert.Empty(t, registros)
	})

	tdb.Seed("ABC010101AAA", "Acme SA", "2024-01", nil)
	tdb.Seed("XYZ020202BBB", "Beta SC", "2024-02", boolPtr(false))
	require.NoError(t, tdb.DB.Exec(
		"INSERT INTO RegistrosFiscales (RFC, Periodo, aprobacion) VALUES ('HUERFANO0000', '2024-03', NULL)").Error)

	t.Run("inner join drops registrations without a client", func(t *testing.T) {
		registros, err := repo.ListRegistrations(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []registro.Registro{
			{RFC: "ABC010101AAA", Nombre: "Acme SA", Periodo: "2024-01"},
			{RFC: "XYZ020202BBB", Nombre: "Beta SC", Periodo: "2024-02", Aprobacion: boolPtr(false)},
		}, registros)
	})

	t.Run("update reports affected rows", func(t *testing.T) {
		affected, err := repo.SetApproval(ctx, "ABC010101AAA", true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		affected, err = repo.SetApproval(ctx, "NOEXISTE0000", true)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("cancelled context surfaces a store error", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.ListRegistrations(cancelled)
		assert.Error(t, err)
	})
}

func TestReviewFlow_Postgres(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tdb := NewTestDB(t)
	tdb.Seed("ABC010101AAA", "Acme SA", "2024-01", nil)
	tdb.Seed("XYZ020202BBB", "Beta SC", "2024-02", boolPtr(true))

	middleware.SetupValidator()
	repo := persistence.NewGormRegistroRepository(tdb.DB, persistence.DefaultTableNames())
	api, err := router.NewEngine(router.EngineDeps{
		Logger: zap.NewNop(),
		HTTP: config.HTTPConfig{
			MaxBodySize:      64 << 10,
			CORSAllowMethods: []string{"GET", "POST", "OPTIONS"},
		},
		Registros: registroapp.NewRegistroService(repo),
		Health:    tdb.Database,
		System:    handler.NewSystemHandler("registros-fiscales", "test"),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := web.NewAPIClient(srv.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("health reports the database", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("api client reads and writes through the service", func(t *testing.T) {
		msg, err := client.SetApproval(ctx, "ABC010101AAA", false)
		require.NoError(t, err)
		assert.Equal(t, registroapp.MsgUnapproved, msg)

		registros, err := client.List(ctx)
		require.NoError(t, err)
		require.Len(t, registros, 2)
		for _, r := range registros {
			require.NotNil(t, r.Aprobacion, r.RFC)
		}
	})

	t.Run("unknown rfc is not found", func(t *testing.T) {
		_, err := client.SetApproval(ctx, "NOEXISTE0000", true)
		var apiErr *web.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("review page decision refreshes the list", func(t *testing.T) {
		ui := gin.New()
		web.NewHandler(client, web.Options{ToastTTL: time.Second}).RegisterRoutes(&ui.RouterGroup)

		req := httptest.NewRequest(http.MethodPost, "/ui/registros/ABC010101AAA/aprobacion?valor=true", nil)
		w := httptest.NewRecorder()
		ui.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "RFC ABC010101AAA aprobado correctamente")
		assert.Contains(t, body, "toast-success")
		assert.Equal(t, 2, strings.Count(body, "badge-approved"))
	})
}
