package scheduler

import (
	"math"
	"time"

	"github.com/szabadkai/quarterback/internal/calendar"
	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/estimate"
)

// Assignment is one allocation decision: who hosts the project and on
// which working-day range.
type Assignment struct {
	ProjectID    string
	MemberID     string
	Start        time.Time
	End          time.Time
	RequiredDays int
}

// Result reports one allocation pass. Unplaced projects stay in the
// backlog; that is reportable but not fatal.
type Result struct {
	Assignments []Assignment
	Unplaced    []string
}

// ScheduledCount is the number of projects this pass placed.
func (r Result) ScheduledCount() int {
	return len(r.Assignments)
}

// AllocateBacklog runs one greedy best-fit pass over the snapshot's
// backlog within [rangeStart, rangeEnd]. Projects are visited in priority
// order (ICE desc, duration asc); for each, members are ranked by the
// composite score and the first candidate whose assignment still ends
// inside the horizon wins. A part-time member needs proportionally more
// calendar time, so the working-day span is requiredDays scaled up by
// their focus before the end date is walked out.
//
// This is per-item greedy, not globally optimal: iteration order and the
// scoring constants are part of the contract.
func AllocateBacklog(snap Snapshot, rangeStart, rangeEnd time.Time) Result {
	availability := BuildAvailability(snap, rangeStart, rangeEnd)
	if len(availability) == 0 {
		return Result{}
	}

	backlog := Backlog(snap.Projects)
	SortBacklog(backlog, snap.Estimate)

	var result Result
	for _, project := range backlog {
		requiredDays := estimate.DurationDays(project, snap.Estimate)
		assignment, ok := placeProject(project, requiredDays, availability, rangeStart, rangeEnd)
		if !ok {
			result.Unplaced = append(result.Unplaced, project.ID)
			continue
		}
		result.Assignments = append(result.Assignments, assignment)
	}
	return result
}

func placeProject(project *domain.Project, requiredDays int, availability []*MemberAvailability, rangeStart, rangeEnd time.Time) (Assignment, bool) {
	candidates := ScoreMembers(availability, project.Type, requiredDays, rangeStart, rangeEnd)

	horizon := calendar.Day(rangeEnd)
	for _, candidate := range candidates {
		avail := candidate.Avail

		startCandidate := avail.NextAvailable
		if rangeStart.After(startCandidate) {
			startCandidate = rangeStart
		}
		start := calendar.ClampToWorkingDay(startCandidate, avail.Unavailable)

		focus := avail.FocusPercent
		if focus <= 0 {
			focus = 1.0
		}
		adjustedDays := int(math.Ceil(float64(requiredDays) / focus))
		end := calendar.AddWorkingDays(start, adjustedDays, avail.Unavailable)
		if end.After(horizon) {
			continue
		}

		// Commit: this member hosts the project.
		next := calendar.NextWorkingDay(end, nil)
		avail.NextAvailable = calendar.ClampToWorkingDay(next, avail.Unavailable)
		avail.Load += requiredDays

		return Assignment{
			ProjectID:    project.ID,
			MemberID:     avail.MemberID,
			Start:        start,
			End:          end,
			RequiredDays: requiredDays,
		}, true
	}
	return Assignment{}, false
}
