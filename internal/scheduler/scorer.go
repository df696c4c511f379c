package scheduler

import (
	"sort"
	"time"

	"github.com/szabadkai/quarterback/internal/domain"
)

// Scoring weights and penalties. These are part of the observable
// allocation contract: changing any of them reorders assignments.
const (
	weightAvailability   = 0.30
	weightLoadBalance    = 0.35
	weightFocus          = 0.15
	weightTypePreference = 0.20

	// noFitPenalty pushes members who cannot absorb the project to the
	// bottom of the ranking without excluding them, keeping a fallback
	// path when literally nobody fits.
	noFitPenalty = 10.0
)

// PreferencePenalty maps a preference level to its scoring contribution.
// Negative values reward the match.
func PreferencePenalty(level domain.PreferenceLevel) float64 {
	switch level {
	case domain.PrefLoved:
		return -1
	case domain.PrefPreferred:
		return -0.5
	case domain.PrefAvoided:
		return 0.75
	case domain.PrefDisliked:
		return 1.5
	default:
		return 0
	}
}

// ScoredMember pairs an availability record with its composite score for
// one project. Lower scores are better.
type ScoredMember struct {
	Avail  *MemberAvailability
	Score  float64
	CanFit bool
}

// ScoreMembers ranks every member as a candidate host for a project
// needing requiredDays of work. The composite blends how soon the member
// can start, how loaded they already are, how dedicated their role is, and
// how much they want this type of work.
func ScoreMembers(availability []*MemberAvailability, projectType string, requiredDays int, rangeStart, rangeEnd time.Time) []ScoredMember {
	span := rangeEnd.Sub(rangeStart)
	if span <= 0 {
		span = 24 * time.Hour
	}

	scored := make([]ScoredMember, 0, len(availability))
	for _, avail := range availability {
		canFit := avail.RemainingCapacity() >= requiredDays

		offset := avail.NextAvailable.Sub(rangeStart)
		if offset < 0 {
			offset = 0
		}
		normalizedAvailability := float64(offset) / float64(span)

		utilization := 1.0
		if avail.EffectiveCapacity > 0 {
			utilization = float64(avail.Load) / float64(avail.EffectiveCapacity)
		}

		focusPenalty := 1 - avail.FocusPercent
		preference := PreferencePenalty(avail.Member.PreferenceFor(projectType))

		score := normalizedAvailability*weightAvailability +
			utilization*weightLoadBalance +
			focusPenalty*weightFocus +
			preference*weightTypePreference
		if !canFit {
			score += noFitPenalty
		}

		scored = append(scored, ScoredMember{Avail: avail, Score: score, CanFit: canFit})
	}

	// Stable sort keeps team order as the final tie-break, so identical
	// inputs always allocate identically.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})
	return scored
}
