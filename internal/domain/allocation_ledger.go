package domain

import "context"

//go:generate mockgen -source=allocation_ledger.go -destination=allocation_ledger_mock.go -package=domain

// AllocationLedger is the durable record of entries and their committed
// outcomes. InsertOutcome must be atomic with respect to the uniqueness
// constraint on EntryID: it returns ErrOutcomeExists instead of
// overwriting when an outcome already exists for the entry.
type AllocationLedger interface {
	CreateEntry(ctx context.Context, entry *Entry) error
	EntryExists(ctx context.Context, entryID string) (bool, error)
	FindOutcome(ctx context.Context, entryID string) (*Outcome, error)
	InsertOutcome(ctx context.Context, outcome *Outcome) error
	UsageForDay(ctx context.Context, day string) (map[string]int, error)
	ListEntryRecords(ctx context.Context) ([]EntryRecord, error)
}
