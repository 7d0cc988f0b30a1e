package domain

import "errors"

var (
	ErrEntryNotFound   = errors.New("entry not found")
	ErrOutcomeNotFound = errors.New("outcome not found")
	ErrOutcomeExists   = errors.New("outcome already committed for entry")
	ErrQuotaExhausted  = errors.New("all prize quotas exhausted for the day")
	ErrUnknownPrize    = errors.New("prize is not in the catalog")
)
