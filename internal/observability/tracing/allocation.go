package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const allocationTracerName = "github.com/KasumiMercury/tombola-prize-allocation/internal/service/allocation"

func AllocationTracer() trace.Tracer {
	return otel.Tracer(allocationTracerName)
}

func StartAllocationSpan(ctx context.Context, entryID, day string) (context.Context, trace.Span) {
	return AllocationTracer().Start(ctx, "allocation.decide",
		trace.WithAttributes(
			attribute.String("entry_id", entryID),
			attribute.String("day", day),
		),
	)
}

func StartDrawSpan(ctx context.Context, eligibleCount int) (context.Context, trace.Span) {
	return AllocationTracer().Start(ctx, "allocation.draw",
		trace.WithAttributes(
			attribute.Int("draw.eligible_count", eligibleCount),
		),
	)
}

func StartCommitSpan(ctx context.Context, entryID, prize string) (context.Context, trace.Span) {
	return AllocationTracer().Start(ctx, "allocation.commit",
		trace.WithAttributes(
			attribute.String("entry_id", entryID),
			attribute.String("prize", prize),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordAllocationResult(span trace.Span, prize string, already bool, err error) {
	span.SetAttributes(
		attribute.String("allocation.prize", prize),
		attribute.Bool("allocation.already", already),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
