package contract

import "time"

// PlanRequest asks for one auto-allocation pass over the backlog.
// Quarter overrides the persisted current quarter when non-empty.
type PlanRequest struct {
	Quarter string
}

// AssignmentView is one allocation decision, resolved to display names.
type AssignmentView struct {
	ProjectID    string
	ProjectName  string
	MemberID     string
	MemberName   string
	StartDate    string
	EndDate      string
	RequiredDays int
}

// PlanResponse reports the outcome of one allocation pass. A pass that
// places nothing while the backlog is non-empty fails with
// PlanErrNoCapacity instead of returning this.
type PlanResponse struct {
	Quarter        string
	RangeStart     time.Time
	RangeEnd       time.Time
	ScheduledCount int
	BacklogBefore  int
	Assignments    []AssignmentView
	Unplaced       []string
}

type PlanErrorCode string

const (
	PlanErrNoTeam         PlanErrorCode = "NO_TEAM"
	PlanErrInvalidQuarter PlanErrorCode = "INVALID_QUARTER"
	PlanErrEmptyBacklog   PlanErrorCode = "EMPTY_BACKLOG"
	PlanErrNoCapacity     PlanErrorCode = "NO_CAPACITY"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
