package ledger

import "errors"

var (
	ErrInvalidEntryData   = errors.New("invalid entry data")
	ErrInvalidOutcomeData = errors.New("invalid outcome data")
)
