package domain

import "time"

// Entry is a registered campaign participant. Entries are created once
// at registration and never mutated afterwards.
type Entry struct {
	ID               string
	Name             string
	Phone            string
	ExpiryMonth      string
	InsuranceCompany string
	City             string
	District         string
	Intermediary     string
	Zone             string
	CreatedAt        time.Time
}

// EntryRecord joins an entry with its outcome, if one has been
// committed. Used by the admin data and export views.
type EntryRecord struct {
	Entry   Entry
	Outcome *Outcome
}
