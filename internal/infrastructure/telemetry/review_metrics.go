package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Review outcomes recorded on registro_approval_total.
const (
	OutcomeApproved = "approved"
	OutcomeRejected = "rejected"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// ReviewMetrics counts review activity against the registration table.
type ReviewMetrics struct {
	approvals *Counter
	lists     *Counter
	listRows  *Histogram
	duration  *Histogram
}

// NewReviewMetrics registers the review instruments on meter.
func NewReviewMetrics(meter metric.Meter) (*ReviewMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	approvals, err := NewCounter(meter, "registro_approval_total", "Approval decisions by outcome", "{decision}")
	if err != nil {
		return nil, err
	}
	lists, err := NewCounter(meter, "registro_list_total", "Registration listings served", "{request}")
	if err != nil {
		return nil, err
	}
	listRows, err := NewHistogram(meter, "registro_list_rows", "Rows returned per listing", "{row}",
		0, 1, 10, 50, 100, 500, 1000, 5000)
	if err != nil {
		return nil, err
	}
	duration, err := NewHistogram(meter, "registro_operation_duration_seconds", "Gateway operation latency", "s",
		HTTPDurationBuckets...)
	if err != nil {
		return nil, err
	}

	return &ReviewMetrics{approvals: approvals, lists: lists, listRows: listRows, duration: duration}, nil
}

// RecordApproval counts one approval decision with its outcome.
func (m *ReviewMetrics) RecordApproval(ctx context.Context, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.approvals.Inc(ctx, AttrOutcome.String(outcome))
	m.duration.RecordDuration(ctx, d, attribute.String("operation", "set_approval"), AttrOutcome.String(outcome))
}

// RecordList counts one listing. rows is negative when the read failed.
func (m *ReviewMetrics) RecordList(ctx context.Context, rows int, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if rows < 0 {
		outcome = OutcomeError
	} else {
		m.listRows.histogram.Record(ctx, float64(rows))
	}
	m.lists.Inc(ctx, AttrOutcome.String(outcome))
	m.duration.RecordDuration(ctx, d, attribute.String("operation", "list"), AttrOutcome.String(outcome))
}
