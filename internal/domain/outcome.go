package domain

import "time"

// Outcome is the immutable record of which prize an entry was granted.
// At most one outcome ever exists per entry; the ledger's uniqueness
// constraint on EntryID is the sole enforcement mechanism.
type Outcome struct {
	EntryID   string
	Prize     string
	Day       string
	CreatedAt time.Time
}

func NewOutcome(entryID, prize, day string) *Outcome {
	return &Outcome{
		EntryID:   entryID,
		Prize:     prize,
		Day:       day,
		CreatedAt: time.Now().UTC(),
	}
}
