package service

import (
	"context"
	"time"

	"github.com/szabadkai/quarterback/internal/calendar"
	"github.com/szabadkai/quarterback/internal/contract"
	"github.com/szabadkai/quarterback/internal/db"
	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/estimate"
	"github.com/szabadkai/quarterback/internal/repository"
	"github.com/szabadkai/quarterback/internal/scheduler"
)

// PlanServiceImpl implements PlanService. The allocation pass itself is
// pure; only the commit step touches the database, and it runs inside a
// single transaction so a failed write leaves no partially applied plan.
type PlanServiceImpl struct {
	regions  repository.RegionRepo
	roles    repository.RoleRepo
	members  repository.MemberRepo
	holidays repository.HolidayRepo
	projects repository.ProjectRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
}

// NewPlanService creates a PlanService backed by the given repositories and
// unit of work.
func NewPlanService(
	regions repository.RegionRepo,
	roles repository.RoleRepo,
	members repository.MemberRepo,
	holidays repository.HolidayRepo,
	projects repository.ProjectRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
) *PlanServiceImpl {
	return &PlanServiceImpl{
		regions:  regions,
		roles:    roles,
		members:  members,
		holidays: holidays,
		projects: projects,
		settings: settings,
		uow:      uow,
	}
}

func (s *PlanServiceImpl) Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	planSettings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	quarter := resolveQuarter(req.Quarter, planSettings.CurrentQuarter)
	qr, err := calendar.ParseQuarter(quarter)
	if err != nil {
		return nil, &contract.PlanError{Code: contract.PlanErrInvalidQuarter, Message: err.Error()}
	}

	team, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(team) == 0 {
		return nil, &contract.PlanError{Code: contract.PlanErrNoTeam, Message: "no team members to schedule against"}
	}
	regions, err := s.regions.List(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidays.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	snap := scheduler.Snapshot{
		Team:     team,
		Regions:  regions,
		Roles:    roles,
		Holidays: holidays,
		Projects: projects,
		Estimate: estimate.Options{
			StoryPointDayRatio: planSettings.StoryPointDayRatio,
			MinScheduleDays:    planSettings.MinScheduleDays,
		},
	}

	backlogBefore := len(scheduler.Backlog(projects))
	if backlogBefore == 0 {
		return nil, &contract.PlanError{Code: contract.PlanErrEmptyBacklog, Message: "backlog is empty; nothing to allocate"}
	}

	result := scheduler.AllocateBacklog(snap, qr.Start, qr.End)
	if result.ScheduledCount() == 0 {
		return nil, &contract.PlanError{Code: contract.PlanErrNoCapacity, Message: "no project fits the remaining capacity this quarter"}
	}

	byID := make(map[string]*domain.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	memberNames := make(map[string]string, len(team))
	for _, m := range team {
		memberNames[m.ID] = m.Name
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		for _, a := range result.Assignments {
			p := byID[a.ProjectID]
			p.Assign(a.MemberID, a.Start, a.End, now)
			if err := txProjects.Update(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &contract.PlanResponse{
		Quarter:        quarter,
		RangeStart:     qr.Start,
		RangeEnd:       qr.End,
		ScheduledCount: result.ScheduledCount(),
		BacklogBefore:  backlogBefore,
	}
	for _, a := range result.Assignments {
		resp.Assignments = append(resp.Assignments, contract.AssignmentView{
			ProjectID:    a.ProjectID,
			ProjectName:  byID[a.ProjectID].Name,
			MemberID:     a.MemberID,
			MemberName:   memberNames[a.MemberID],
			StartDate:    a.Start.Format(calendar.DateLayout),
			EndDate:      a.End.Format(calendar.DateLayout),
			RequiredDays: a.RequiredDays,
		})
	}
	for _, id := range result.Unplaced {
		resp.Unplaced = append(resp.Unplaced, byID[id].Name)
	}
	return resp, nil
}
