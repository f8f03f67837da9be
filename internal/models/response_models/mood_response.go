package response_models

import (
	"fmt"
	"time"

	"soberup/internal/domain"
	"soberup/internal/models/db_models"
	"soberup/pkg/utils"
)

type MoodEntryResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	MoodValue int    `json:"mood_value"`
	Band      string `json:"band"`
	Color     string `json:"color"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type MoodCalendarResponse struct {
	Year    int                 `json:"year"`
	Month   int                 `json:"month"`
	Entries []MoodEntryResponse `json:"entries"`
	// Days maps YYYY-MM-DD to the cell colour of that day.
	Days map[string]string `json:"days"`
}

func BuildMoodEntry(e *db_models.MoodEntry, loc *time.Location) (*MoodEntryResponse, error) {
	band, err := domain.ClassifyMood(e.MoodValue)
	if err != nil {
		return nil, fmt.Errorf("%w: mood entry %s has value %d", utils.ErrCorruptRecord, e.ID, e.MoodValue)
	}
	return &MoodEntryResponse{
		ID:        e.ID.String(),
		Date:      domain.DayKey(e.Date, loc),
		MoodValue: e.MoodValue,
		Band:      string(band),
		Color:     band.Color(),
		Note:      e.Note,
		CreatedAt: utils.FormatRFC3339In(e.CreatedAt, loc),
		UpdatedAt: utils.FormatRFC3339In(e.UpdatedAt, loc),
	}, nil
}

func BuildMoodEntries(entries []db_models.MoodEntry, loc *time.Location) ([]MoodEntryResponse, error) {
	out := make([]MoodEntryResponse, 0, len(entries))
	for i := range entries {
		resp, err := BuildMoodEntry(&entries[i], loc)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// BuildMoodCalendar expects entries newest first; if a day somehow holds
// more than one entry the newest decides its colour.
func BuildMoodCalendar(year, month int, entries []db_models.MoodEntry, loc *time.Location) (*MoodCalendarResponse, error) {
	views, err := BuildMoodEntries(entries, loc)
	if err != nil {
		return nil, err
	}
	days := make(map[string]string, len(views))
	for _, v := range views {
		if _, seen := days[v.Date]; !seen {
			days[v.Date] = v.Color
		}
	}
	return &MoodCalendarResponse{Year: year, Month: month, Entries: views, Days: days}, nil
}
