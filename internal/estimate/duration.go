package estimate

import (
	"math"

	"github.com/szabadkai/quarterback/internal/domain"
)

const (
	// MaxMandays caps explicit man-day estimates; anything beyond this is
	// treated as input error and clamped.
	MaxMandays = 2000

	// DefaultMinScheduleDays is the floor applied to every derived
	// duration: no auto-scheduled project is shorter than this.
	DefaultMinScheduleDays = 3

	// DefaultBacklogDays is the fallback duration when nothing at all can
	// be derived for a project.
	DefaultBacklogDays = 14

	// DefaultStoryPointDayRatio converts story points to working days.
	DefaultStoryPointDayRatio = 1.0
)

// Options tune duration derivation. The zero value is usable: defaults are
// applied for unset fields.
type Options struct {
	StoryPointDayRatio float64
	MinScheduleDays    int
}

func (o Options) ratio() float64 {
	if o.StoryPointDayRatio <= 0 {
		return DefaultStoryPointDayRatio
	}
	return o.StoryPointDayRatio
}

func (o Options) minDays() int {
	if o.MinScheduleDays <= 0 {
		return DefaultMinScheduleDays
	}
	return o.MinScheduleDays
}

// NormalizeMandays validates an explicit man-day estimate: nil for absent
// or non-positive values, otherwise the estimate clamped to [1, MaxMandays].
func NormalizeMandays(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	days := *v
	if days > MaxMandays {
		days = MaxMandays
	}
	return &days
}

// DurationDays estimates a project's duration in working days. An explicit
// man-day estimate takes precedence; otherwise story points are converted
// at the configured ratio. Either way the result floors at the minimum
// schedulable duration.
func DurationDays(p *domain.Project, opts Options) int {
	if p == nil {
		return DefaultBacklogDays
	}
	if mandays := NormalizeMandays(p.MandayEstimate); mandays != nil {
		return maxInt(opts.minDays(), *mandays)
	}
	points := p.StoryPoints
	if points <= 0 {
		points = StoryPoints(p.ICEEffort, p.ICEConfidence, 0)
	}
	derived := int(math.Round(float64(points) * opts.ratio()))
	if derived <= 0 {
		return maxInt(opts.minDays(), DefaultBacklogDays)
	}
	return maxInt(opts.minDays(), derived)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
