package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	registroapp "github.com/fiscal/registros/internal/application/registro"
	"github.com/fiscal/registros/internal/infrastructure/config"
	"github.com/fiscal/registros/internal/infrastructure/logger"
	"github.com/fiscal/registros/internal/infrastructure/persistence"
	"github.com/fiscal/registros/internal/infrastructure/telemetry"
	"github.com/fiscal/registros/internal/interfaces/http/handler"
	"github.com/fiscal/registros/internal/interfaces/http/middleware"
	"github.com/fiscal/registros/internal/interfaces/http/router"
	"github.com/fiscal/registros/internal/interfaces/web"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/fiscal/registros/docs"
)

//	@title			Registros Fiscales API
//	@version		1.0
//	@description	Revisión y aprobación de registros fiscales

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath	/api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}

	// Bootstrap logger for provider setup; replaced once the OTLP log core exists.
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()

	logsProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize OTEL logs", zap.Error(err))
	}

	log := bootLog
	if logsProvider.IsEnabled() {
		log, err = logger.New(logCfg, logsProvider.NewZapCore(logger.ParseLevel(cfg.Log.Level)))
		if err != nil {
			bootLog.Fatal("Failed to initialize logger", zap.Error(err))
		}
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting registros service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter", zap.Error(err))
	}

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.ProfilingServer,
		ApplicationName: cfg.Telemetry.ServiceName,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabase(ctx, &cfg.Database, persistence.WithLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected",
		zap.String("driver", cfg.Database.Driver),
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        telemetry.DBSystemFor(cfg.Database.Driver),
	}, log)
	if err := dbTracing.Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	repo := persistence.NewGormRegistroRepository(db.DB, persistence.TableNames{
		Registros: cfg.Database.RegistrosTable,
		Clientes:  cfg.Database.ClientesTable,
	})
	service := registroapp.NewRegistroService(repo)

	meter := meterProvider.Meter(telemetry.TracerName)
	if meterProvider.IsEnabled() {
		reviewMetrics, err := telemetry.NewReviewMetrics(meter)
		if err != nil {
			log.Warn("Review metrics unavailable", zap.Error(err))
		} else {
			service.SetReviewMetrics(reviewMetrics)
		}
	} else {
		meter = nil
	}

	middleware.SetupValidator()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := router.EngineDeps{
		Logger:  log,
		HTTP:    cfg.HTTP,
		Swagger: cfg.Swagger,
		Tracing: middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		},
		Meter:     meter,
		Registros: service,
		Health:    db,
		System:    handler.NewSystemHandler(cfg.App.Name, telemetry.ServiceVersion),
	}
	if cfg.Client.Enabled {
		deps.UI = web.NewHandler(
			web.NewAPIClient(cfg.Client.APIBaseURL, cfg.Client.APITimeout),
			web.Options{
				DatastarURL:   cfg.Client.DatastarScriptURL,
				DocumentsBase: cfg.Client.DocumentsBase,
				ToastTTL:      cfg.Client.NotificationTTL,
			},
		)
		log.Info("Review page enabled", zap.String("api_base_url", cfg.Client.APIBaseURL))
	}

	engine, err := router.NewEngine(deps)
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Warn("Failed to close database", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Failed to stop profiler", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to shutdown meter provider", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to shutdown tracer provider", zap.Error(err))
	}
	// Logs last so the shutdown messages above are exported.
	if err := logsProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to shutdown logger provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
