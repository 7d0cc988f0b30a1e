package allocation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/service/draw"
)

type fixedSource struct {
	value float64
}

func (s *fixedSource) Float64() (float64, error) {
	return s.value, nil
}

func capOf(n int64) *int64 {
	return &n
}

func newTestService(ledger domain.AllocationLedger, prizeConfig domain.PrizeConfigRepository, catalog domain.Catalog, source draw.Source) *Service {
	dayProvider, err := domain.NewDayProvider("UTC")
	if err != nil {
		panic(err)
	}
	return NewService(ledger, prizeConfig, catalog, dayProvider, draw.NewPicker(source), nil)
}

func unlimitedCaps(catalog domain.Catalog) map[string]domain.PrizeCap {
	caps := make(map[string]domain.PrizeCap, len(catalog))
	for _, prize := range catalog {
		caps[prize] = domain.PrizeCap{Prize: prize}
	}
	return caps
}

func defaultWeights(catalog domain.Catalog) map[string]domain.PrizeWeight {
	weights := make(map[string]domain.PrizeWeight, len(catalog))
	for _, prize := range catalog {
		weights[prize] = domain.PrizeWeight{Prize: prize, Weight: domain.DefaultWeight}
	}
	return weights
}

func TestAllocateReplaysExistingOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A", "B"}
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	ledger := domain.NewMockAllocationLedger(ctrl)
	ledger.EXPECT().FindOutcome(gomock.Any(), "entry-1").Return(&domain.Outcome{
		EntryID: "entry-1",
		Prize:   "A",
		Day:     "2026-08-14",
	}, nil)

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)

	svc := newTestService(ledger, prizeConfig, catalog, &fixedSource{value: 0})

	result, err := svc.Allocate(context.Background(), "entry-1", now)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if !result.Already {
		t.Error("expected Already = true for a replayed outcome")
	}
	if result.Prize != "A" {
		t.Errorf("Prize = %q, want %q", result.Prize, "A")
	}
	if result.Day != "2026-08-14" {
		t.Errorf("Day = %q, want the committed day, got a recomputed one", result.Day)
	}
}

func TestAllocateUnknownEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A"}

	ledger := domain.NewMockAllocationLedger(ctrl)
	ledger.EXPECT().FindOutcome(gomock.Any(), "ghost").Return(nil, domain.ErrOutcomeNotFound)
	ledger.EXPECT().EntryExists(gomock.Any(), "ghost").Return(false, nil)

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)

	svc := newTestService(ledger, prizeConfig, catalog, &fixedSource{value: 0})

	_, err := svc.Allocate(context.Background(), "ghost", time.Now())
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("Allocate() error = %v, want ErrEntryNotFound", err)
	}
}

func TestAllocateQuotaExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A", "B"}
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	ledger := domain.NewMockAllocationLedger(ctrl)
	ledger.EXPECT().FindOutcome(gomock.Any(), "entry-1").Return(nil, domain.ErrOutcomeNotFound)
	ledger.EXPECT().EntryExists(gomock.Any(), "entry-1").Return(true, nil)
	ledger.EXPECT().UsageForDay(gomock.Any(), "2026-08-15").Return(map[string]int{"A": 3, "B": 1}, nil)

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
	prizeConfig.EXPECT().GetCaps(gomock.Any(), catalog).Return(map[string]domain.PrizeCap{
		"A": {Prize: "A", Cap: capOf(3)},
		"B": {Prize: "B", Cap: capOf(1)},
	}, nil)

	svc := newTestService(ledger, prizeConfig, catalog, &fixedSource{value: 0})

	_, err := svc.Allocate(context.Background(), "entry-1", now)
	if !errors.Is(err, domain.ErrQuotaExhausted) {
		t.Errorf("Allocate() error = %v, want ErrQuotaExhausted", err)
	}
}

// A prize whose daily cap is used up must never be drawn, whatever the
// random source produces. With catalog {X, Y}, X capped at 1 and one X
// already granted today, every remaining draw lands on Y.
func TestAllocateFiltersCappedPrizes(t *testing.T) {
	catalog := domain.Catalog{"X", "Y"}
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	for _, value := range []float64{0, 0.25, 0.5, 0.999999} {
		ctrl := gomock.NewController(t)

		ledger := domain.NewMockAllocationLedger(ctrl)
		ledger.EXPECT().FindOutcome(gomock.Any(), "entry-2").Return(nil, domain.ErrOutcomeNotFound)
		ledger.EXPECT().EntryExists(gomock.Any(), "entry-2").Return(true, nil)
		ledger.EXPECT().UsageForDay(gomock.Any(), "2026-08-15").Return(map[string]int{"X": 1}, nil)
		ledger.EXPECT().InsertOutcome(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, outcome *domain.Outcome) error {
				if outcome.Prize != "Y" {
					t.Errorf("source %v: committed prize %q, want %q", value, outcome.Prize, "Y")
				}
				if outcome.Day != "2026-08-15" {
					t.Errorf("source %v: committed day %q, want %q", value, outcome.Day, "2026-08-15")
				}
				return nil
			})

		prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
		prizeConfig.EXPECT().GetCaps(gomock.Any(), catalog).Return(map[string]domain.PrizeCap{
			"X": {Prize: "X", Cap: capOf(1)},
			"Y": {Prize: "Y"},
		}, nil)
		prizeConfig.EXPECT().GetWeights(gomock.Any(), catalog).Return(defaultWeights(catalog), nil)

		svc := newTestService(ledger, prizeConfig, catalog, &fixedSource{value: value})

		result, err := svc.Allocate(context.Background(), "entry-2", now)
		if err != nil {
			t.Fatalf("source %v: Allocate() error = %v", value, err)
		}
		if result.Prize != "Y" {
			t.Errorf("source %v: Prize = %q, want %q", value, result.Prize, "Y")
		}
		if result.Already {
			t.Errorf("source %v: expected Already = false on a fresh grant", value)
		}
	}
}

// Cap values of zero or below mean unlimited, so a zero cap must not
// shrink the eligible set.
func TestAllocateZeroCapIsUnlimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A"}
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	ledger := domain.NewMockAllocationLedger(ctrl)
	ledger.EXPECT().FindOutcome(gomock.Any(), "entry-3").Return(nil, domain.ErrOutcomeNotFound)
	ledger.EXPECT().EntryExists(gomock.Any(), "entry-3").Return(true, nil)
	ledger.EXPECT().UsageForDay(gomock.Any(), "2026-08-15").Return(map[string]int{"A": 500}, nil)
	ledger.EXPECT().InsertOutcome(gomock.Any(), gomock.Any()).Return(nil)

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
	prizeConfig.EXPECT().GetCaps(gomock.Any(), catalog).Return(map[string]domain.PrizeCap{
		"A": {Prize: "A", Cap: capOf(0)},
	}, nil)
	prizeConfig.EXPECT().GetWeights(gomock.Any(), catalog).Return(defaultWeights(catalog), nil)

	svc := newTestService(ledger, prizeConfig, catalog, &fixedSource{value: 0.5})

	result, err := svc.Allocate(context.Background(), "entry-3", now)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if result.Prize != "A" {
		t.Errorf("Prize = %q, want %q", result.Prize, "A")
	}
}

// Losing the guarded insert must resolve to the winner's committed
// prize, not the loser's draw.
func TestAllocateConflictResolvesToCommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A", "B"}
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	ledger := domain.NewMockAllocationLedger(ctrl)
	first := ledger.EXPECT().FindOutcome(gomock.Any(), "entry-4").Return(nil, domain.ErrOutcomeNotFound)
	ledger.EXPECT().EntryExists(gomock.Any(), "entry-4").Return(true, nil)
	ledger.EXPECT().UsageForDay(gomock.Any(), "2026-08-15").Return(map[string]int{}, nil)
	ledger.EXPECT().InsertOutcome(gomock.Any(), gomock.Any()).Return(domain.ErrOutcomeExists)
	ledger.EXPECT().FindOutcome(gomock.Any(), "entry-4").After(first).Return(&domain.Outcome{
		EntryID: "entry-4",
		Prize:   "B",
		Day:     "2026-08-15",
	}, nil)

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
	prizeConfig.EXPECT().GetCaps(gomock.Any(), catalog).Return(unlimitedCaps(catalog), nil)
	prizeConfig.EXPECT().GetWeights(gomock.Any(), catalog).Return(defaultWeights(catalog), nil)

	// The loser's own draw lands on A; the committed outcome wins.
	svc := newTestService(ledger, prizeConfig, catalog, &fixedSource{value: 0})

	result, err := svc.Allocate(context.Background(), "entry-4", now)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if !result.Already {
		t.Error("expected Already = true after losing the insert race")
	}
	if result.Prize != "B" {
		t.Errorf("Prize = %q, want committed %q", result.Prize, "B")
	}
}

// A weight read failure degrades to default weights instead of failing
// the spin.
func TestAllocateWeightReadFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A"}
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	ledger := domain.NewMockAllocationLedger(ctrl)
	ledger.EXPECT().FindOutcome(gomock.Any(), "entry-5").Return(nil, domain.ErrOutcomeNotFound)
	ledger.EXPECT().EntryExists(gomock.Any(), "entry-5").Return(true, nil)
	ledger.EXPECT().UsageForDay(gomock.Any(), "2026-08-15").Return(map[string]int{}, nil)
	ledger.EXPECT().InsertOutcome(gomock.Any(), gomock.Any()).Return(nil)

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
	prizeConfig.EXPECT().GetCaps(gomock.Any(), catalog).Return(unlimitedCaps(catalog), nil)
	prizeConfig.EXPECT().GetWeights(gomock.Any(), catalog).Return(nil, errors.New("redis down"))

	svc := newTestService(ledger, prizeConfig, catalog, &fixedSource{value: 0.5})

	result, err := svc.Allocate(context.Background(), "entry-5", now)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if result.Prize != "A" {
		t.Errorf("Prize = %q, want %q", result.Prize, "A")
	}
}

func TestAllocateLedgerFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := domain.Catalog{"A"}

	ledger := domain.NewMockAllocationLedger(ctrl)
	ledger.EXPECT().FindOutcome(gomock.Any(), "entry-6").Return(nil, errors.New("disk error"))

	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)

	svc := newTestService(ledger, prizeConfig, catalog, &fixedSource{value: 0})

	_, err := svc.Allocate(context.Background(), "entry-6", time.Now())
	if err == nil {
		t.Fatal("expected an error when the ledger read fails")
	}
	if errors.Is(err, domain.ErrEntryNotFound) || errors.Is(err, domain.ErrQuotaExhausted) {
		t.Errorf("infrastructure failure surfaced as a domain error: %v", err)
	}
}
