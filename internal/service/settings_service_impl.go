package service

import (
	"context"
	"fmt"

	"github.com/szabadkai/quarterback/internal/calendar"
	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/repository"
)

// SettingsServiceImpl implements SettingsService.
type SettingsServiceImpl struct {
	settings repository.SettingsRepo
}

// NewSettingsService creates a SettingsService backed by the given repository.
func NewSettingsService(settings repository.SettingsRepo) *SettingsServiceImpl {
	return &SettingsServiceImpl{settings: settings}
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (*domain.PlanSettings, error) {
	return s.settings.Get(ctx)
}

func (s *SettingsServiceImpl) Update(ctx context.Context, ps *domain.PlanSettings) error {
	if ps.NumEngineers < 0 {
		return fmt.Errorf("engineer count must be non-negative")
	}
	if ps.PTOPerPerson < 0 {
		return fmt.Errorf("pto per person must be non-negative")
	}
	if ps.AdhocReservePct < 0 || ps.AdhocReservePct > 100 {
		return fmt.Errorf("adhoc reserve must be between 0 and 100")
	}
	if ps.BugReservePct < 0 || ps.BugReservePct > 100 {
		return fmt.Errorf("bug reserve must be between 0 and 100")
	}
	if ps.CurrentQuarter != "" {
		if _, err := calendar.ParseQuarter(ps.CurrentQuarter); err != nil {
			return err
		}
	}
	return s.settings.Update(ctx, ps)
}

func (s *SettingsServiceImpl) SetQuarter(ctx context.Context, label string) error {
	if _, err := calendar.ParseQuarter(label); err != nil {
		return err
	}
	ps, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	ps.CurrentQuarter = label
	return s.settings.Update(ctx, ps)
}
