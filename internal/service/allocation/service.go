package allocation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/observability/metrics"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/observability/tracing"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/service/draw"
)

// Service is the prize allocation engine. It grants each entry exactly
// one prize, bounded by per-prize daily caps, and is idempotent under
// retries and double-submits.
type Service struct {
	ledger            domain.AllocationLedger
	prizeConfig       domain.PrizeConfigRepository
	catalog           domain.Catalog
	dayProvider       *domain.DayProvider
	picker            *draw.Picker
	allocationMetrics *metrics.AllocationMetrics
}

func NewService(
	ledger domain.AllocationLedger,
	prizeConfig domain.PrizeConfigRepository,
	catalog domain.Catalog,
	dayProvider *domain.DayProvider,
	picker *draw.Picker,
	allocationMetrics *metrics.AllocationMetrics,
) *Service {
	return &Service{
		ledger:            ledger,
		prizeConfig:       prizeConfig,
		catalog:           catalog,
		dayProvider:       dayProvider,
		picker:            picker,
		allocationMetrics: allocationMetrics,
	}
}

// Allocate decides which prize the entry receives at time now.
//
// The decision itself runs without locks; only the final ledger insert
// is atomic. When two requests race for the same entry the insert's
// uniqueness constraint picks the winner and the loser re-reads the
// committed outcome, so callers never observe two different prizes.
func (s *Service) Allocate(ctx context.Context, entryID string, now time.Time) (*Result, error) {
	day := s.dayProvider.DayKey(now)

	ctx, span := tracing.StartAllocationSpan(ctx, entryID, day)
	defer span.End()

	start := time.Now()
	defer func() {
		if s.allocationMetrics != nil {
			s.allocationMetrics.RecordDecisionDuration(ctx, time.Since(start))
		}
	}()

	// Replay the committed outcome if the entry already spun.
	existing, err := s.ledger.FindOutcome(ctx, entryID)
	if err == nil {
		slog.DebugContext(ctx, "entry already allocated",
			slog.String("entry_id", entryID),
			slog.String("prize", existing.Prize),
		)
		s.recordResult(ctx, span, metrics.ResultRepeat, existing.Prize, true, nil)
		return &Result{Prize: existing.Prize, Day: existing.Day, Already: true}, nil
	}
	if !errors.Is(err, domain.ErrOutcomeNotFound) {
		s.recordResult(ctx, span, metrics.ResultFailed, "", false, err)
		return nil, fmt.Errorf("find outcome: %w", err)
	}

	exists, err := s.ledger.EntryExists(ctx, entryID)
	if err != nil {
		s.recordResult(ctx, span, metrics.ResultFailed, "", false, err)
		return nil, fmt.Errorf("check entry: %w", err)
	}
	if !exists {
		s.recordResult(ctx, span, metrics.ResultRejected, "", false, domain.ErrEntryNotFound)
		return nil, domain.ErrEntryNotFound
	}

	eligible, err := s.eligiblePrizes(ctx, day)
	if err != nil {
		s.recordResult(ctx, span, metrics.ResultFailed, "", false, err)
		return nil, err
	}

	if s.allocationMetrics != nil {
		s.allocationMetrics.RecordEligiblePrizes(ctx, len(eligible))
	}

	if len(eligible) == 0 {
		slog.InfoContext(ctx, "all prize quotas exhausted",
			slog.String("entry_id", entryID),
			slog.String("day", day),
		)
		s.recordResult(ctx, span, metrics.ResultExhausted, "", false, domain.ErrQuotaExhausted)
		return nil, domain.ErrQuotaExhausted
	}

	prize, err := s.drawPrize(ctx, eligible)
	if err != nil {
		s.recordResult(ctx, span, metrics.ResultFailed, "", false, err)
		return nil, fmt.Errorf("draw prize: %w", err)
	}

	outcome := &domain.Outcome{
		EntryID:   entryID,
		Prize:     prize,
		Day:       day,
		CreatedAt: now.UTC(),
	}

	commitCtx, commitSpan := tracing.StartCommitSpan(ctx, entryID, prize)
	err = s.ledger.InsertOutcome(commitCtx, outcome)
	commitSpan.End()

	if err != nil {
		if errors.Is(err, domain.ErrOutcomeExists) {
			// Lost a double-submit race; the winner's outcome is the
			// entry's prize.
			committed, findErr := s.ledger.FindOutcome(ctx, entryID)
			if findErr != nil {
				s.recordResult(ctx, span, metrics.ResultFailed, "", false, findErr)
				return nil, fmt.Errorf("re-read outcome after conflict: %w", findErr)
			}
			slog.InfoContext(ctx, "allocation race resolved to committed outcome",
				slog.String("entry_id", entryID),
				slog.String("prize", committed.Prize),
			)
			s.recordResult(ctx, span, metrics.ResultRepeat, committed.Prize, true, nil)
			return &Result{Prize: committed.Prize, Day: committed.Day, Already: true}, nil
		}
		s.recordResult(ctx, span, metrics.ResultFailed, "", false, err)
		return nil, fmt.Errorf("commit outcome: %w", err)
	}

	slog.InfoContext(ctx, "prize granted",
		slog.String("entry_id", entryID),
		slog.String("prize", prize),
		slog.String("day", day),
	)

	if s.allocationMetrics != nil {
		s.allocationMetrics.RecordPrizeGranted(ctx, prize)
	}
	s.recordResult(ctx, span, metrics.ResultGranted, prize, false, nil)

	return &Result{Prize: prize, Day: day, Already: false}, nil
}

// eligiblePrizes filters the catalog down to prizes whose daily cap is
// not yet exhausted, preserving catalog order. Usage is re-aggregated
// from the ledger on every decision so the count can never drift.
func (s *Service) eligiblePrizes(ctx context.Context, day string) ([]string, error) {
	usage, err := s.ledger.UsageForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("daily usage: %w", err)
	}

	caps, err := s.prizeConfig.GetCaps(ctx, s.catalog)
	if err != nil {
		return nil, fmt.Errorf("prize caps: %w", err)
	}

	eligible := make([]string, 0, len(s.catalog))
	for _, prize := range s.catalog {
		prizeCap := caps[prize]
		if !prizeCap.Unlimited() && int64(usage[prize]) >= *prizeCap.Cap {
			continue
		}
		eligible = append(eligible, prize)
	}

	return eligible, nil
}

// drawPrize runs the weighted draw over the eligible set. A failed
// weight read degrades to default weights instead of failing the spin;
// the draw itself falls back to uniform when all weights are zero.
func (s *Service) drawPrize(ctx context.Context, eligible []string) (string, error) {
	drawCtx, drawSpan := tracing.StartDrawSpan(ctx, len(eligible))
	defer drawSpan.End()

	weightValues := make(map[string]float64, len(eligible))
	weights, err := s.prizeConfig.GetWeights(drawCtx, s.catalog)
	if err != nil {
		slog.WarnContext(drawCtx, "failed to read prize weights, using defaults",
			slog.String("error", err.Error()),
		)
	} else {
		for prize, w := range weights {
			weightValues[prize] = w.Weight
		}
	}

	return s.picker.Pick(eligible, weightValues)
}

func (s *Service) recordResult(ctx context.Context, span trace.Span, result, prize string, already bool, err error) {
	tracing.RecordAllocationResult(span, prize, already, err)
	if s.allocationMetrics != nil {
		s.allocationMetrics.RecordAllocation(ctx, result)
	}
}
