package scheduler

import (
	"sort"

	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/estimate"
)

// SortBacklog orders backlog projects for allocation: highest ICE score
// first, then smallest duration first among equals (small items pack
// better), then insertion order. The sort is stable so identical inputs
// produce identical schedules.
func SortBacklog(backlog []*domain.Project, opts estimate.Options) {
	sort.SliceStable(backlog, func(i, j int) bool {
		a, b := backlog[i], backlog[j]
		if a.ICEScore != b.ICEScore {
			return a.ICEScore > b.ICEScore
		}
		return estimate.DurationDays(a, opts) < estimate.DurationDays(b, opts)
	})
}

// Backlog filters the snapshot's projects down to those still needing
// scheduling: missing an owner or missing a valid date range.
func Backlog(projects []*domain.Project) []*domain.Project {
	var backlog []*domain.Project
	for _, p := range projects {
		if p.InBacklog() {
			backlog = append(backlog, p)
		}
	}
	return backlog
}
