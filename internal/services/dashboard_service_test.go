package services

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"soberup/internal/models/db_models"
	"soberup/pkg/metrics"
	"soberup/pkg/utils"
)

func TestBuildDashboard(t *testing.T) {
	u := patient("anna", "pw")
	since := time.Date(2024, 2, 1, 0, 0, 0, 0, berlin)
	u.SoberSince = &since
	u.SOSContact = db_models.SOSContact{Name: "Mia", Phone: "112"}

	users := NewUserService(newFakeUserRepo(u), berlin, zap.NewNop())
	moodRepo := newFakeMoodRepo()
	moods := NewMoodService(moodRepo, metrics.New(prometheus.NewRegistry()), berlin, zap.NewNop())
	svc := NewDashboardService(users, moods, berlin)

	now := time.Date(2024, 2, 20, 19, 0, 0, 0, berlin)
	_, err := moods.SaveMood(context.Background(), u.ID.String(), 3, "", now.Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = moods.SaveMood(context.Background(), u.ID.String(), 9, "good day", now)
	require.NoError(t, err)

	dash, err := svc.BuildDashboard(context.Background(), u.ID.String(), now)
	require.NoError(t, err)
	assert.Equal(t, 19, dash.Profile.SoberDays)
	require.NotNil(t, dash.TodayMood)
	assert.Equal(t, 9, dash.TodayMood.MoodValue)
	assert.Equal(t, 1, dash.Calendar.Month)
	assert.Equal(t, 2024, dash.Calendar.Year)
	assert.Len(t, dash.Calendar.Entries, 2)
	assert.Equal(t, "red", dash.Calendar.Days["2024-02-18"])
	assert.True(t, dash.HasSOSContact)
}

func TestBuildDashboard_UnknownUser(t *testing.T) {
	users := NewUserService(newFakeUserRepo(), berlin, zap.NewNop())
	moods := NewMoodService(newFakeMoodRepo(), nil, berlin, zap.NewNop())
	svc := NewDashboardService(users, moods, berlin)

	_, err := svc.BuildDashboard(context.Background(), uuidString(), time.Now())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
