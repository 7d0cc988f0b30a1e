package allocation

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/infra/ledger"
	"github.com/KasumiMercury/tombola-prize-allocation/internal/service/draw"
)

// Concurrent spins for the same entry must converge on a single
// committed prize: one caller wins the guarded insert, everyone else
// replays the winner's outcome.
func TestAllocateConcurrentSpinsCommitOnce(t *testing.T) {
	store, err := ledger.Open(filepath.Join(t.TempDir(), "tombola.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	ctx := context.Background()
	entry := &domain.Entry{
		ID:        "entry-race",
		Name:      "Racer",
		Phone:     "0600000000",
		CreatedAt: time.Now().UTC(),
	}
	if err := store.CreateEntry(ctx, entry); err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	catalog := domain.Catalog{"A", "B", "C"}

	ctrl := gomock.NewController(t)
	prizeConfig := domain.NewMockPrizeConfigRepository(ctrl)
	prizeConfig.EXPECT().GetCaps(gomock.Any(), catalog).Return(unlimitedCaps(catalog), nil).AnyTimes()
	prizeConfig.EXPECT().GetWeights(gomock.Any(), catalog).Return(defaultWeights(catalog), nil).AnyTimes()

	svc := newTestService(store, prizeConfig, catalog, draw.NewCryptoSource())

	const callers = 8
	now := time.Now()

	results := make([]*Result, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Allocate(ctx, entry.ID, now)
		}(i)
	}
	wg.Wait()

	fresh := 0
	prize := ""
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: Allocate() error = %v", i, errs[i])
		}
		if prize == "" {
			prize = results[i].Prize
		}
		if results[i].Prize != prize {
			t.Errorf("caller %d: Prize = %q, another caller got %q", i, results[i].Prize, prize)
		}
		if !results[i].Already {
			fresh++
		}
	}
	if fresh != 1 {
		t.Errorf("fresh grants = %d, want exactly 1", fresh)
	}

	committed, err := store.FindOutcome(ctx, entry.ID)
	if err != nil {
		t.Fatalf("FindOutcome() error = %v", err)
	}
	if committed.Prize != prize {
		t.Errorf("committed prize %q, callers saw %q", committed.Prize, prize)
	}
}
