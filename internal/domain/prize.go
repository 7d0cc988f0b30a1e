package domain

import "time"

// DefaultWeight is the draw weight applied to a prize that has never
// been configured by an administrator.
const DefaultWeight = 1.0

// Catalog is the fixed, ordered set of awardable prize names. It is
// closed for the lifetime of the process: administrators adjust weights
// and caps, never the set itself.
type Catalog []string

func (c Catalog) Contains(prize string) bool {
	for _, p := range c {
		if p == prize {
			return true
		}
	}
	return false
}

// PrizeWeight is the relative probability mass assigned to a prize.
type PrizeWeight struct {
	Prize     string
	Weight    float64
	UpdatedAt time.Time
}

// PrizeCap is the per-day award limit for a prize. A nil Cap means
// unlimited.
type PrizeCap struct {
	Prize     string
	Cap       *int64
	UpdatedAt time.Time
}

// Unlimited reports whether the cap places no limit on daily awards.
// Non-positive caps are normalized to unlimited so that an accidental
// zero entered in the admin UI never hard-blocks a prize.
func (c PrizeCap) Unlimited() bool {
	return c.Cap == nil || *c.Cap <= 0
}

// Remaining returns how many awards are left today given the current
// usage count, or -1 when the cap is unlimited.
func (c PrizeCap) Remaining(used int) int64 {
	if c.Unlimited() {
		return -1
	}
	remaining := *c.Cap - int64(used)
	if remaining < 0 {
		return 0
	}
	return remaining
}
