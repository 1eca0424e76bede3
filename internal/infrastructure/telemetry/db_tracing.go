package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds database tracing configuration.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // keep bound variables in db.statement
	SlowQueryThresh time.Duration // default 200ms
	DBSystem        string        // postgresql, mssql or sqlite
}

// DBTracingPlugin instruments a gorm pool with otelgorm spans and flags slow queries.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a new database tracing plugin.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}
	return &DBTracingPlugin{config: cfg, logger: logger}
}

type contextKey string

const queryStartTimeKey contextKey = "otel_query_start_time"

// Register installs otelgorm and the slow-query callbacks. The gateway only
// issues raw statements, so the Row and Raw processors are the ones hooked.
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBSystem)}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	row, raw := db.Callback().Row(), db.Callback().Raw()
	if err := row.Before("gorm:row").Register("otel_timing:before_row", markQueryStart); err != nil {
		return err
	}
	if err := raw.Before("gorm:raw").Register("otel_timing:before_raw", markQueryStart); err != nil {
		return err
	}
	if err := row.After("gorm:row").Register("otel_slow_query:row", p.slowQueryCallback); err != nil {
		return err
	}
	if err := raw.After("gorm:raw").Register("otel_slow_query:raw", p.slowQueryCallback); err != nil {
		return err
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
		zap.String("db_system", p.config.DBSystem),
	)
	return nil
}

func markQueryStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartTimeKey, time.Now())
	}
}

func (p *DBTracingPlugin) slowQueryCallback(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		RecordError(span, db.Error)
	}

	if start, ok := ctx.Value(queryStartTimeKey).(time.Time); ok {
		if elapsed := time.Since(start); elapsed > p.config.SlowQueryThresh {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
			span.AddEvent("slow_query_warning", trace.WithAttributes(
				attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
			))
		}
	}
}

// DBSystemFor maps a configured driver to the semconv db.system value.
func DBSystemFor(driver string) string {
	switch driver {
	case "sqlserver":
		return "mssql"
	case "sqlite":
		return "sqlite"
	default:
		return "postgresql"
	}
}
