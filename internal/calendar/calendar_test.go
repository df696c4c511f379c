package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, iso)
	if err != nil {
		t.Fatalf("bad test date %q: %v", iso, err)
	}
	return d
}

func TestCountWorkingDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		excluded DateSet
		want     int
	}{
		{"full working week", "2025-01-06", "2025-01-10", nil, 5},
		{"week plus weekend", "2025-01-06", "2025-01-12", nil, 5},
		{"two weeks", "2025-01-06", "2025-01-17", nil, 10},
		{"single weekday", "2025-01-08", "2025-01-08", nil, 1},
		{"start after end", "2025-01-10", "2025-01-06", nil, 0},
		{"excluded day skipped", "2025-01-06", "2025-01-10", NewDateSet("2025-01-08"), 4},
		{"everything excluded", "2025-01-06", "2025-01-07", NewDateSet("2025-01-06", "2025-01-07"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountWorkingDays(date(t, tt.start), date(t, tt.end), tt.excluded)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountWorkingDays_WeekendOnlyRange(t *testing.T) {
	// Saturday clamps forward to Monday, which lands past Sunday, so a
	// weekend-only range holds no working days. The floor-at-1 applies
	// only after the clamp and never resurrects an empty range.
	sat, sun := date(t, "2025-01-04"), date(t, "2025-01-05")
	assert.Equal(t, 0, CountWorkingDays(sat, sun, nil))
	assert.Equal(t, 0, CountWorkingDays(sat, sun, NewDateSet()))
}

func TestCountWorkingDays_ZeroTimes(t *testing.T) {
	assert.Equal(t, 0, CountWorkingDays(time.Time{}, date(t, "2025-01-10"), nil))
	assert.Equal(t, 0, CountWorkingDays(date(t, "2025-01-06"), time.Time{}, nil))
}

func TestClampToWorkingDay(t *testing.T) {
	// Saturday clamps forward to Monday.
	assert.Equal(t, date(t, "2025-01-06"), ClampToWorkingDay(date(t, "2025-01-04"), nil))
	// A working day stays put.
	assert.Equal(t, date(t, "2025-01-08"), ClampToWorkingDay(date(t, "2025-01-08"), nil))
	// Excluded days push further.
	excluded := NewDateSet("2025-01-06", "2025-01-07")
	assert.Equal(t, date(t, "2025-01-08"), ClampToWorkingDay(date(t, "2025-01-04"), excluded))
}

func TestNextWorkingDay(t *testing.T) {
	// Friday rolls to Monday.
	assert.Equal(t, date(t, "2025-01-13"), NextWorkingDay(date(t, "2025-01-10"), nil))
	// Midweek is just the next day.
	assert.Equal(t, date(t, "2025-01-08"), NextWorkingDay(date(t, "2025-01-07"), nil))
}

func TestAddWorkingDays(t *testing.T) {
	mon := date(t, "2025-01-06")
	// n=1 is the start day itself.
	assert.Equal(t, mon, AddWorkingDays(mon, 1, nil))
	assert.Equal(t, mon, AddWorkingDays(mon, 0, nil))
	// Five working days from Monday end on Friday.
	assert.Equal(t, date(t, "2025-01-10"), AddWorkingDays(mon, 5, nil))
	// Six cross the weekend.
	assert.Equal(t, date(t, "2025-01-13"), AddWorkingDays(mon, 6, nil))
	// Excluded days stretch the span.
	excluded := NewDateSet("2025-01-08")
	assert.Equal(t, date(t, "2025-01-13"), AddWorkingDays(mon, 5, excluded))
	// Weekend starts clamp first.
	assert.Equal(t, date(t, "2025-01-10"), AddWorkingDays(date(t, "2025-01-04"), 5, nil))
}

func TestDayTruncation(t *testing.T) {
	stamp := time.Date(2025, 3, 15, 17, 45, 12, 0, time.FixedZone("X", 3600))
	got := Day(stamp)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}
