package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const allocationMeterName = "allocation.service"

// Allocation result labels.
const (
	ResultGranted   = "granted"
	ResultRepeat    = "repeat"
	ResultExhausted = "exhausted"
	ResultRejected  = "rejected"
	ResultFailed    = "failed"
)

type AllocationMetrics struct {
	allocationsTotal   metric.Int64Counter
	prizesGrantedTotal metric.Int64Counter
	drawDuration       metric.Float64Histogram
	eligiblePrizes     metric.Int64Histogram
}

func NewAllocationMetrics() (*AllocationMetrics, error) {
	meter := otel.Meter(allocationMeterName)

	allocationsTotal, err := meter.Int64Counter(
		"allocation_requests_total",
		metric.WithDescription("Total number of allocation decisions"),
		metric.WithUnit("{allocation}"),
	)
	if err != nil {
		return nil, err
	}

	prizesGrantedTotal, err := meter.Int64Counter(
		"allocation_prizes_granted_total",
		metric.WithDescription("Prizes granted, by prize name"),
		metric.WithUnit("{prize}"),
	)
	if err != nil {
		return nil, err
	}

	drawDuration, err := meter.Float64Histogram(
		"allocation_decision_duration_seconds",
		metric.WithDescription("Time spent deciding a single allocation"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	eligiblePrizes, err := meter.Int64Histogram(
		"allocation_eligible_prizes",
		metric.WithDescription("Size of the eligible set at decision time"),
		metric.WithUnit("{prize}"),
	)
	if err != nil {
		return nil, err
	}

	return &AllocationMetrics{
		allocationsTotal:   allocationsTotal,
		prizesGrantedTotal: prizesGrantedTotal,
		drawDuration:       drawDuration,
		eligiblePrizes:     eligiblePrizes,
	}, nil
}

func (m *AllocationMetrics) RecordAllocation(ctx context.Context, result string) {
	m.allocationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
	))
}

func (m *AllocationMetrics) RecordPrizeGranted(ctx context.Context, prize string) {
	m.prizesGrantedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("prize", prize),
	))
}

func (m *AllocationMetrics) RecordDecisionDuration(ctx context.Context, duration time.Duration) {
	m.drawDuration.Record(ctx, duration.Seconds())
}

func (m *AllocationMetrics) RecordEligiblePrizes(ctx context.Context, count int) {
	m.eligiblePrizes.Record(ctx, int64(count))
}
