package domain

import (
	"context"
	"time"
)

// AllocationRecord is the analytics view of a single spin decision.
type AllocationRecord struct {
	EntryID   string
	Prize     string
	Day       string
	Already   bool
	GrantedAt time.Time
}

// AllocationRecorder ships allocation results to an analytics backend.
// Recording must never fail the request path; implementations log and
// continue on write errors.
type AllocationRecorder interface {
	RecordAllocation(ctx context.Context, record AllocationRecord) error
	Flush(ctx context.Context) error
	Close() error
}
