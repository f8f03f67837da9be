package response_models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"soberup/internal/models/db_models"
	"soberup/pkg/utils"
)

func TestBuildUserProfile_DerivesSoberDays(t *testing.T) {
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	since := now.AddDate(0, 0, -12)
	u := &db_models.User{
		BaseModel:  db_models.BaseModel{ID: uuid.New(), CreatedAt: now.AddDate(-1, 0, 0)},
		Username:   "anna",
		Role:       "patient",
		Name:       "Anna",
		SoberSince: &since,
		SoberDays:  3, // stale cache
		Triggers:   pq.StringArray{"Stress"},
		SOSContact: db_models.SOSContact{Name: "Ben", Phone: "+49 170 000"},
	}

	got, err := BuildUserProfile(u, now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 12, got.SoberDays)
	assert.Equal(t, []string{"Stress"}, got.Triggers)
	require.NotNil(t, got.SOSContact)
	assert.Equal(t, "Ben", got.SOSContact.Name)
	assert.Nil(t, got.LastMoodCheck)
}

func TestBuildUserProfile_NoTrackingNoContact(t *testing.T) {
	u := &db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Role: "patient"}
	got, err := BuildUserProfile(u, time.Now(), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 0, got.SoberDays)
	assert.Nil(t, got.SoberSince)
	assert.Nil(t, got.SOSContact)
	assert.NotNil(t, got.Triggers)
}

func TestBuildUserProfile_UnknownRoleFails(t *testing.T) {
	u := &db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Role: "nurse"}
	_, err := BuildUserProfile(u, time.Now(), time.UTC)
	assert.ErrorIs(t, err, utils.ErrCorruptRecord)
}

func TestBuildMoodEntry_OutOfRangeFails(t *testing.T) {
	_, err := BuildMoodEntry(&db_models.MoodEntry{MoodValue: 0}, time.UTC)
	assert.ErrorIs(t, err, utils.ErrCorruptRecord)
}

func TestBuildMoodCalendar(t *testing.T) {
	day := func(d, v int) db_models.MoodEntry {
		return db_models.MoodEntry{
			BaseModel: db_models.BaseModel{ID: uuid.New()},
			Date:      time.Date(2024, 2, d, 0, 0, 0, 0, time.UTC),
			MoodValue: v,
		}
	}
	cal, err := BuildMoodCalendar(2024, 1, []db_models.MoodEntry{day(20, 9), day(12, 5), day(3, 2)}, time.UTC)
	require.NoError(t, err)

	assert.Len(t, cal.Entries, 3)
	assert.Equal(t, map[string]string{
		"2024-02-20": "green",
		"2024-02-12": "yellow",
		"2024-02-03": "red",
	}, cal.Days)
	assert.Equal(t, "STABLE", cal.Entries[0].Band)
}
