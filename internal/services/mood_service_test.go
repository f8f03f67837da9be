package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"soberup/internal/domain"
	"soberup/internal/models/db_models"
	"soberup/pkg/metrics"
	"soberup/pkg/utils"
)

func newMoodService(repo *fakeMoodRepo) (MoodServiceInterface, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewMoodService(repo, metrics.New(reg), berlin, zap.NewNop()), reg
}

func TestSaveMood_RejectsOutOfRangeWithoutStorageCall(t *testing.T) {
	repo := newFakeMoodRepo()
	svc, _ := newMoodService(repo)
	userID := uuidString()

	for _, v := range []int{0, 11, -3} {
		resp, err := svc.SaveMood(context.Background(), userID, v, "note", time.Now())
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, domain.ErrInvalidMoodValue)
		assert.ErrorIs(t, err, utils.ErrInvalidMoodValue)
	}
	assert.Zero(t, repo.calls)
}

func TestSaveMood_SecondSaveSameDayUpdatesInPlace(t *testing.T) {
	repo := newFakeMoodRepo()
	svc, reg := newMoodService(repo)
	userID := uuidString()

	morning := time.Date(2024, 3, 10, 8, 0, 0, 0, berlin)
	evening := time.Date(2024, 3, 10, 22, 30, 0, 0, berlin)

	first, err := svc.SaveMood(context.Background(), userID, 2, "rough start", morning)
	require.NoError(t, err)
	assert.Equal(t, "CRITICAL", first.Band)
	assert.Equal(t, "red", first.Color)

	second, err := svc.SaveMood(context.Background(), userID, 8, "better", evening)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 8, second.MoodValue)
	assert.Equal(t, "better", second.Note)
	assert.Equal(t, "STABLE", second.Band)
	assert.Equal(t, "2024-03-10", second.Date)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, evening, repo.lastChecked[repo.entries[0].UserID])

	// one created/CRITICAL series and one updated/STABLE series
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "soberup_mood_entries_saved_total"))
}

func TestSaveMood_NextDayCreatesNewEntry(t *testing.T) {
	repo := newFakeMoodRepo()
	svc, _ := newMoodService(repo)
	userID := uuidString()

	lateNight := time.Date(2024, 3, 10, 23, 59, 0, 0, berlin)
	nextMorning := time.Date(2024, 3, 11, 0, 1, 0, 0, berlin)

	a, err := svc.SaveMood(context.Background(), userID, 5, "", lateNight)
	require.NoError(t, err)
	b, err := svc.SaveMood(context.Background(), userID, 6, "", nextMorning)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, repo.entries, 2)
}

func TestSaveMood_StorageFailures(t *testing.T) {
	repo := newFakeMoodRepo()
	repo.saveErr = errors.New("disk full")
	svc, _ := newMoodService(repo)

	_, err := svc.SaveMood(context.Background(), uuidString(), 5, "", time.Now())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	repo.saveErr = gorm.ErrRecordNotFound
	_, err = svc.SaveMood(context.Background(), uuidString(), 5, "", time.Now())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestSaveMood_RejectsMalformedUserID(t *testing.T) {
	repo := newFakeMoodRepo()
	svc, _ := newMoodService(repo)

	_, err := svc.SaveMood(context.Background(), "not-a-uuid", 5, "", time.Now())
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Zero(t, repo.calls)
}

func TestGetToday(t *testing.T) {
	repo := newFakeMoodRepo()
	svc, _ := newMoodService(repo)
	userID := uuidString()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, berlin)

	today, err := svc.GetToday(context.Background(), userID, now)
	require.NoError(t, err)
	assert.Nil(t, today)

	_, err = svc.SaveMood(context.Background(), userID, 4, "ok", now)
	require.NoError(t, err)

	today, err = svc.GetToday(context.Background(), userID, now.Add(3*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, today)
	assert.Equal(t, "NEUTRAL", today.Band)
}

func TestGetMonth_BuildsCalendarAndRejectsBadMonth(t *testing.T) {
	repo := newFakeMoodRepo()
	svc, _ := newMoodService(repo)
	userID := uuidString()

	for day, value := range map[int]int{1: 2, 15: 6, 29: 9} {
		_, err := svc.SaveMood(context.Background(), userID, value, "", time.Date(2024, 2, day, 10, 0, 0, 0, berlin))
		require.NoError(t, err)
	}
	_, err := svc.SaveMood(context.Background(), userID, 9, "", time.Date(2024, 3, 1, 10, 0, 0, 0, berlin))
	require.NoError(t, err)

	cal, err := svc.GetMonth(context.Background(), userID, 2024, 1)
	require.NoError(t, err)
	assert.Len(t, cal.Entries, 3)
	assert.Equal(t, map[string]string{
		"2024-02-01": "red",
		"2024-02-15": "yellow",
		"2024-02-29": "green",
	}, cal.Days)
	assert.Equal(t, "2024-02-29", cal.Entries[0].Date)

	calls := repo.calls
	_, err = svc.GetMonth(context.Background(), userID, 2024, 12)
	assert.ErrorIs(t, err, utils.ErrInvalidMonth)
	_, err = svc.GetMonth(context.Background(), userID, 0, 3)
	assert.ErrorIs(t, err, utils.ErrInvalidYear)
	assert.Equal(t, calls, repo.calls)
}

func TestGetMonth_CorruptEntryFailsLoudly(t *testing.T) {
	repo := newFakeMoodRepo()
	userID := uuidString()
	repo.entries = append(repo.entries, db_models.MoodEntry{
		UserID:    mustUUID(userID),
		Date:      time.Date(2024, 2, 3, 0, 0, 0, 0, berlin),
		DayKey:    "2024-02-03",
		MoodValue: 42,
	})
	svc, _ := newMoodService(repo)

	_, err := svc.GetMonth(context.Background(), userID, 2024, 1)
	assert.ErrorIs(t, err, utils.ErrCorruptRecord)
}

func TestGetRange(t *testing.T) {
	repo := newFakeMoodRepo()
	svc, _ := newMoodService(repo)
	userID := uuidString()

	for day := 1; day <= 5; day++ {
		_, err := svc.SaveMood(context.Background(), userID, day, "", time.Date(2024, 4, day, 18, 0, 0, 0, berlin))
		require.NoError(t, err)
	}

	entries, err := svc.GetRange(context.Background(), userID, "2024-04-02", "2024-04-04")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-04-04", entries[0].Date)
	assert.Equal(t, "2024-04-02", entries[2].Date)

	all, err := svc.GetRange(context.Background(), userID, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = svc.GetRange(context.Background(), userID, "2024-04-04", "2024-04-02")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.GetRange(context.Background(), userID, "04/02/2024", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
