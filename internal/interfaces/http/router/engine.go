package router

import (
	"time"

	"github.com/fiscal/registros/internal/infrastructure/config"
	"github.com/fiscal/registros/internal/infrastructure/logger"
	"github.com/fiscal/registros/internal/interfaces/http/handler"
	"github.com/fiscal/registros/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// EngineDeps collects everything the HTTP engine serves.
type EngineDeps struct {
	Logger    *zap.Logger
	HTTP      config.HTTPConfig
	Swagger   config.SwaggerConfig
	Tracing   middleware.TracingConfig
	Meter     metric.Meter // nil disables HTTP metrics
	Registros handler.RegistroService
	Health    handler.Pinger
	System    *handler.SystemHandler
	// UI is mounted at the root, outside the API prefix. Optional.
	UI RouteRegistrar
}

// NewEngine builds the gin engine with the middleware chain and all routes.
//
// Middleware order: RequestID, tracing, recovery, request logging, security
// headers, CORS, body limit, metrics.
func NewEngine(deps EngineDeps) (*gin.Engine, error) {
	engine := gin.New()
	if err := engine.SetTrustedProxies(deps.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingWithConfig(deps.Tracing), middleware.SpanEnricher())
	engine.Use(logger.Recovery(deps.Logger))
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(middleware.SecureWithConfig(middleware.DefaultSecurityConfig()))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: deps.HTTP.CORSAllowOrigins,
		AllowMethods: deps.HTTP.CORSAllowMethods,
		AllowHeaders: deps.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(deps.HTTP.MaxBodySize))
	engine.Use(middleware.HTTPMetrics(deps.Meter))

	engine.GET("/health", handler.NewHealthHandler(deps.Health).Health)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    deps.Swagger.Enabled,
			AllowedIPs: deps.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	registroHandler := handler.NewRegistroHandler(deps.Registros)
	registroRoutes := NewDomainGroup("registros", "/registros").
		GET("", registroHandler.List).
		POST("", registroHandler.SetApproval)

	r := NewRouter(engine).Register(registroRoutes)
	if deps.System != nil {
		r.Register(NewDomainGroup("system", "/system").
			GET("/info", deps.System.GetSystemInfo).
			GET("/ping", deps.System.Ping))
	}
	r.Setup()

	if deps.UI != nil {
		deps.UI.RegisterRoutes(&engine.RouterGroup)
	}
	return engine, nil
}
