package calendar

import "time"

// DateLayout is the ISO calendar-date format used for PTO and holiday keys.
const DateLayout = "2006-01-02"

// maxWalk bounds every iterative date walk so pathological inputs (huge
// durations, fully-excluded calendars) terminate instead of spinning.
const maxWalk = 730

// DateSet is a set of ISO calendar dates to treat as non-working
// (personal PTO, dated company holidays). A nil set excludes nothing.
type DateSet map[string]struct{}

// NewDateSet builds a DateSet from ISO date strings.
func NewDateSet(dates ...string) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// Add inserts an ISO date into the set.
func (s DateSet) Add(date string) {
	s[date] = struct{}{}
}

// Contains reports whether the given day is in the set.
func (s DateSet) Contains(t time.Time) bool {
	if s == nil {
		return false
	}
	_, ok := s[t.Format(DateLayout)]
	return ok
}

// Day truncates a time to midnight UTC so comparisons are calendar-day
// comparisons regardless of the caller's clock.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWorkingDay reports whether the date is a weekday not present in the
// exclusion set.
func IsWorkingDay(t time.Time, excluded DateSet) bool {
	return !IsWeekend(t) && !excluded.Contains(t)
}

// CountWorkingDays counts working days in [start, end] inclusive, skipping
// weekends and excluded dates. The start is clamped forward to a working
// day first, so a weekend-only range counts 0, as do inverted ranges and
// zero-time inputs. When no exclusion set is supplied and the clamped
// start still lies in range, the count floors at 1; downstream duration
// math assumes a minimum one-day project.
func CountWorkingDays(start, end time.Time, excluded DateSet) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	from := ClampToWorkingDay(start, excluded)
	to := Day(end)
	if from.After(to) {
		return 0
	}
	count := 0
	cursor := from
	for steps := 0; !cursor.After(to) && steps < maxWalk; steps++ {
		if IsWorkingDay(cursor, excluded) {
			count++
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	if excluded == nil && count < 1 {
		return 1
	}
	return count
}

// ClampToWorkingDay returns the first working day on or after the given
// date. Zero times are returned unchanged.
func ClampToWorkingDay(t time.Time, excluded DateSet) time.Time {
	if t.IsZero() {
		return t
	}
	cursor := Day(t)
	for steps := 0; steps < maxWalk; steps++ {
		if IsWorkingDay(cursor, excluded) {
			return cursor
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	return cursor
}

// NextWorkingDay returns the first working day strictly after the given
// date.
func NextWorkingDay(t time.Time, excluded DateSet) time.Time {
	if t.IsZero() {
		return t
	}
	return ClampToWorkingDay(Day(t).AddDate(0, 0, 1), excluded)
}

// AddWorkingDays returns the date reached after n working days starting
// from the first working day on or after start: n=1 returns the clamped
// start itself, n=5 spans one working week.
func AddWorkingDays(start time.Time, n int, excluded DateSet) time.Time {
	if start.IsZero() {
		return start
	}
	if n <= 1 {
		return ClampToWorkingDay(start, excluded)
	}
	result := ClampToWorkingDay(start, excluded)
	remaining := n - 1
	for steps := 0; remaining > 0 && steps < maxWalk; steps++ {
		result = result.AddDate(0, 0, 1)
		if IsWorkingDay(result, excluded) {
			remaining--
		}
	}
	return result
}
