package cli

import (
	"github.com/spf13/pflag"

	"github.com/szabadkai/quarterback/internal/calendar"
)

// quarterValue is a pflag.Value that validates quarter labels at parse
// time, so "allocate --quarter Q1-205" fails before any work happens.
type quarterValue struct {
	label string
}

var _ pflag.Value = (*quarterValue)(nil)

func (q *quarterValue) String() string { return q.label }

func (q *quarterValue) Set(s string) error {
	if _, err := calendar.ParseQuarter(s); err != nil {
		return err
	}
	q.label = s
	return nil
}

func (q *quarterValue) Type() string { return "quarter" }
