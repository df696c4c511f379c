package domain

import "time"

// Project is a candidate work item on the quarterly board. OwnerID is an
// optional single owner: the scheduler only ever assigns one person.
// A project missing either date, or missing an owner, sits in the backlog.
type Project struct {
	ID             string
	Name           string
	OwnerID        *string
	StartDate      *time.Time
	EndDate        *time.Time
	Status         ProjectStatus
	Type           string
	ICEImpact      int
	ICEConfidence  int
	ICEEffort      int
	ICEScore       float64
	StoryPoints    int
	MandayEstimate *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Scheduled reports whether the project has a valid date range:
// both dates present and start <= end.
func (p *Project) Scheduled() bool {
	if p.StartDate == nil || p.EndDate == nil {
		return false
	}
	return !p.StartDate.After(*p.EndDate)
}

// Owned reports whether the project has an owner.
func (p *Project) Owned() bool {
	return p.OwnerID != nil && *p.OwnerID != ""
}

// InBacklog reports whether the project still needs scheduling: either
// condition (no owner, no valid dates) is sufficient.
func (p *Project) InBacklog() bool {
	return !p.Owned() || !p.Scheduled()
}

// Unschedule clears the owner and date range, returning the project to the
// backlog.
func (p *Project) Unschedule(now time.Time) {
	p.OwnerID = nil
	p.StartDate = nil
	p.EndDate = nil
	p.UpdatedAt = now
}

// Assign sets the sole owner and date range produced by the scheduler.
func (p *Project) Assign(ownerID string, start, end time.Time, now time.Time) {
	p.OwnerID = &ownerID
	p.StartDate = &start
	p.EndDate = &end
	p.UpdatedAt = now
}
