package services

import (
	"context"
	"time"

	resp "soberup/internal/models/response_models"
	"soberup/pkg/utils"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, userID string, now time.Time) (*resp.DashboardResponse, error)
}

type dashboardService struct {
	users UserServiceInterface
	moods MoodServiceInterface
	loc   *time.Location
}

func NewDashboardService(users UserServiceInterface, moods MoodServiceInterface, loc *time.Location) DashboardService {
	return &dashboardService{users: users, moods: moods, loc: loc}
}

// BuildDashboard assembles the patient home screen: profile, today's mood
// and the calendar of the current month.
func (s *dashboardService) BuildDashboard(ctx context.Context, userID string, now time.Time) (*resp.DashboardResponse, error) {
	profile, err := s.users.GetProfile(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	today, err := s.moods.GetToday(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	local := now.In(s.loc)
	calendar, err := s.moods.GetMonth(ctx, userID, local.Year(), int(local.Month())-1)
	if err != nil {
		return nil, err
	}

	return &resp.DashboardResponse{
		Profile:       profile,
		TodayMood:     today,
		Calendar:      calendar,
		HasSOSContact: profile.SOSContact != nil,
		GeneratedAt:   utils.FormatRFC3339In(now, s.loc),
	}, nil
}
