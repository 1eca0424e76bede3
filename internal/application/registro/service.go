package registro

import (
	"context"
	"time"

	"github.com/fiscal/registros/internal/domain/registro"
	"github.com/fiscal/registros/internal/infrastructure/logger"
	"github.com/fiscal/registros/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Confirmation messages returned by SetApproval.
const (
	MsgApproved   = "Registro aprobado correctamente"
	MsgUnapproved = "Registro marcado como no aprobado"
)

// RegistroService lists registration records and records review decisions.
type RegistroService struct {
	repo    registro.Repository
	metrics *telemetry.ReviewMetrics
}

// NewRegistroService creates a new RegistroService
func NewRegistroService(repo registro.Repository) *RegistroService {
	return &RegistroService{repo: repo}
}

// SetReviewMetrics enables review counters. A nil value disables them.
func (s *RegistroService) SetReviewMetrics(m *telemetry.ReviewMetrics) {
	s.metrics = m
}

// List returns every joined record regardless of approval status.
func (s *RegistroService) List(ctx context.Context) ([]RegistroResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "registro", "list")
	defer span.End()
	start := time.Now()

	var (
		records []registro.Registro
		err     error
	)
	telemetry.WithProfilingLabels(ctx, func(ctx context.Context) {
		records, err = s.repo.ListRegistrations(ctx)
	}, "operation", "registro.list")
	if err != nil {
		telemetry.RecordError(span, err)
		s.metrics.RecordList(ctx, -1, time.Since(start))
		logger.L(ctx).Error("Failed to list registrations", zap.Error(err))
		return nil, err
	}

	span.SetAttributes(telemetry.AttrCount.Int(len(records)))
	s.metrics.RecordList(ctx, len(records), time.Since(start))
	return ToRegistroResponses(records), nil
}

// SetApproval validates rfc, stores the decision and returns the confirmation
// message. It returns registro.ErrRegistroNotFound when no row matched.
func (s *RegistroService) SetApproval(ctx context.Context, rfc string, approved bool) (string, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "registro", "set_approval", telemetry.AttrApproved.Bool(approved))
	defer span.End()
	start := time.Now()

	if err := registro.ValidateRFC(rfc); err != nil {
		s.metrics.RecordApproval(ctx, telemetry.OutcomeInvalid, time.Since(start))
		return "", err
	}
	span.SetAttributes(telemetry.AttrRFC.String(rfc))

	var (
		affected int64
		err      error
	)
	telemetry.WithProfilingLabels(ctx, func(ctx context.Context) {
		affected, err = s.repo.SetApproval(ctx, rfc, approved)
	}, "operation", "registro.set_approval")
	if err != nil {
		telemetry.RecordError(span, err)
		s.metrics.RecordApproval(ctx, telemetry.OutcomeError, time.Since(start))
		logger.L(ctx).Error("Failed to update registration",
			zap.String("rfc", rfc),
			zap.Bool("aprobacion", approved),
			zap.Error(err),
		)
		return "", err
	}

	if affected == 0 {
		s.metrics.RecordApproval(ctx, telemetry.OutcomeNotFound, time.Since(start))
		logger.L(ctx).Warn("Approval targeted unknown RFC", zap.String("rfc", rfc))
		return "", registro.ErrRegistroNotFound
	}

	outcome, msg := telemetry.OutcomeRejected, MsgUnapproved
	if approved {
		outcome, msg = telemetry.OutcomeApproved, MsgApproved
	}
	span.SetAttributes(telemetry.AttrOutcome.String(outcome))
	s.metrics.RecordApproval(ctx, outcome, time.Since(start))
	logger.L(ctx).Info("Registration reviewed",
		zap.String("rfc", rfc),
		zap.Bool("aprobacion", approved),
		zap.Int64("rows_affected", affected),
	)
	return msg, nil
}
