package domain

import "time"

const dayKeyFormat = "2006-01-02"

// DayProvider maps timestamps to calendar-day keys in a fixed civil
// timezone. Daily caps are scoped by this key; the key is stamped onto
// an outcome at commit time and never recomputed.
type DayProvider struct {
	loc *time.Location
}

func NewDayProvider(timezone string) (*DayProvider, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &DayProvider{loc: loc}, nil
}

func (p *DayProvider) DayKey(t time.Time) string {
	return t.In(p.loc).Format(dayKeyFormat)
}

func (p *DayProvider) Location() *time.Location {
	return p.loc
}
