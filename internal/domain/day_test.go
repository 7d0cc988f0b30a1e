package domain

import (
	"testing"
	"time"
)

func TestNewDayProviderInvalidTimezone(t *testing.T) {
	if _, err := NewDayProvider("Not/AZone"); err == nil {
		t.Error("expected an error for an unknown timezone")
	}
}

func TestDayKeyFormat(t *testing.T) {
	provider, err := NewDayProvider("UTC")
	if err != nil {
		t.Fatalf("NewDayProvider() error = %v", err)
	}

	got := provider.DayKey(time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC))
	if got != "2026-08-05" {
		t.Errorf("DayKey() = %q, want %q", got, "2026-08-05")
	}
}

// The day key follows the campaign's civil timezone, not UTC: late
// evening UTC can already be the next calendar day locally.
func TestDayKeyCivilTimezoneBoundary(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		at       time.Time
		want     string
	}{
		{
			name:     "before local midnight",
			timezone: "Africa/Casablanca",
			at:       time.Date(2026, 8, 15, 22, 30, 0, 0, time.UTC),
			want:     "2026-08-15",
		},
		{
			// Casablanca runs UTC+1 in August, so 23:30 UTC has
			// crossed local midnight.
			name:     "after local midnight",
			timezone: "Africa/Casablanca",
			at:       time.Date(2026, 8, 15, 23, 30, 0, 0, time.UTC),
			want:     "2026-08-16",
		},
		{
			name:     "large positive offset",
			timezone: "Asia/Tokyo",
			at:       time.Date(2026, 8, 15, 20, 0, 0, 0, time.UTC),
			want:     "2026-08-16",
		},
		{
			name:     "negative offset holds the previous day",
			timezone: "America/New_York",
			at:       time.Date(2026, 8, 16, 2, 0, 0, 0, time.UTC),
			want:     "2026-08-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewDayProvider(tt.timezone)
			if err != nil {
				t.Fatalf("NewDayProvider(%q) error = %v", tt.timezone, err)
			}
			if got := provider.DayKey(tt.at); got != tt.want {
				t.Errorf("DayKey(%v in %s) = %q, want %q", tt.at, tt.timezone, got, tt.want)
			}
		})
	}
}

// The key is computed from the instant, not the wall clock it was
// expressed in: the same moment yields the same key whatever location
// the caller's time.Time carries.
func TestDayKeyIgnoresInputLocation(t *testing.T) {
	provider, err := NewDayProvider("Africa/Casablanca")
	if err != nil {
		t.Fatalf("NewDayProvider() error = %v", err)
	}

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	instant := time.Date(2026, 8, 15, 23, 30, 0, 0, time.UTC)
	if got, want := provider.DayKey(instant.In(tokyo)), provider.DayKey(instant); got != want {
		t.Errorf("DayKey() = %q for a relocated time, want %q", got, want)
	}
}
