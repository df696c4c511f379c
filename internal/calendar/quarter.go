package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// FallbackWorkingDays is used when a quarter label is missing or malformed.
// 65 is the historical flat estimate of weekdays in a quarter.
const FallbackWorkingDays = 65

var quarterPattern = regexp.MustCompile(`^Q([1-4])-(\d{4})$`)

// QuarterRange is the first and last calendar day of a three-month period.
type QuarterRange struct {
	Label string
	Start time.Time
	End   time.Time
}

// ParseQuarter parses a label of the form "Q1-2025" into its date range.
func ParseQuarter(label string) (QuarterRange, error) {
	m := quarterPattern.FindStringSubmatch(label)
	if m == nil {
		return QuarterRange{}, fmt.Errorf("invalid quarter label %q (expected Q1-2025 form)", label)
	}
	quarter, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])

	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the month after the quarter is the quarter's last day.
	end := time.Date(year, startMonth+3, 0, 0, 0, 0, 0, time.UTC)

	return QuarterRange{Label: label, Start: start, End: end}, nil
}

// CurrentQuarterLabel returns the label for the quarter containing now.
func CurrentQuarterLabel(now time.Time) string {
	quarter := (int(now.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d-%d", quarter, now.Year())
}

// WorkingDaysInQuarter counts the weekdays in the labeled quarter. Missing
// or malformed labels fall back to FallbackWorkingDays rather than erroring,
// so capacity math degrades instead of failing.
func WorkingDaysInQuarter(label string) int {
	qr, err := ParseQuarter(label)
	if err != nil {
		return FallbackWorkingDays
	}
	days := 0
	for cursor := qr.Start; !cursor.After(qr.End); cursor = cursor.AddDate(0, 0, 1) {
		if !IsWeekend(cursor) {
			days++
		}
	}
	return days
}
