package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"soberup/internal/domain"
	"soberup/internal/models/db_models"
	"soberup/internal/models/response_models"
	"soberup/internal/repositories"
	"soberup/pkg/metrics"
	"soberup/pkg/utils"
)

type MoodServiceInterface interface {
	SaveMood(ctx context.Context, userID string, moodValue int, note string, now time.Time) (*response_models.MoodEntryResponse, error)
	// GetToday returns nil when nothing has been recorded today.
	GetToday(ctx context.Context, userID string, now time.Time) (*response_models.MoodEntryResponse, error)
	GetMonth(ctx context.Context, userID string, year, month int) (*response_models.MoodCalendarResponse, error)
	GetRange(ctx context.Context, userID, start, end string) ([]response_models.MoodEntryResponse, error)
}

type MoodService struct {
	moodRepo repositories.MoodRepository
	metrics  *metrics.Collectors
	loc      *time.Location
	logger   *zap.Logger
}

func NewMoodService(
	moodRepo repositories.MoodRepository,
	collectors *metrics.Collectors,
	loc *time.Location,
	logger *zap.Logger,
) MoodServiceInterface {
	return &MoodService{
		moodRepo: moodRepo,
		metrics:  collectors,
		loc:      loc,
		logger:   logger,
	}
}

// SaveMood records the mood for the calendar day of now. A second save on
// the same day overwrites value and note of the existing entry; its id and
// created_at stay. The entry and the user's last mood check are written
// together.
func (m *MoodService) SaveMood(ctx context.Context, userID string, moodValue int, note string, now time.Time) (*response_models.MoodEntryResponse, error) {
	band, err := domain.ClassifyMood(moodValue)
	if err != nil {
		return nil, err
	}
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	today := domain.TodayRange(now, m.loc)
	existing, err := m.moodRepo.FindInRange(ctx, id, today)
	if err != nil {
		return nil, storageFailure(m.logger, "find today's mood", id, err)
	}

	entry := &db_models.MoodEntry{
		UserID:    uuid.MustParse(id),
		Date:      today.Start,
		DayKey:    domain.DayKey(now, m.loc),
		MoodValue: moodValue,
		Note:      strings.TrimSpace(note),
	}
	kind := "created"
	if existing != nil {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		kind = "updated"
	} else {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	if err := m.moodRepo.SaveForDay(ctx, entry, now); err != nil {
		return nil, storageFailure(m.logger, "save mood", id, err)
	}

	// Read back so a concurrent first save of the same day reports the row
	// that actually won.
	saved, err := m.moodRepo.FindInRange(ctx, id, today)
	if err != nil {
		return nil, storageFailure(m.logger, "reload mood", id, err)
	}
	if saved == nil {
		saved = entry
	}

	m.metrics.MoodSaved(string(band), kind)
	m.logger.Info("mood saved",
		zap.String("user_id", id),
		zap.String("day", entry.DayKey),
		zap.String("band", string(band)),
		zap.String("kind", kind))

	return m.view(saved)
}

func (m *MoodService) GetToday(ctx context.Context, userID string, now time.Time) (*response_models.MoodEntryResponse, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	entry, err := m.moodRepo.FindInRange(ctx, id, domain.TodayRange(now, m.loc))
	if err != nil {
		return nil, storageFailure(m.logger, "find today's mood", id, err)
	}
	if entry == nil {
		return nil, nil
	}
	return m.view(entry)
}

// GetMonth takes a zero-based month.
func (m *MoodService) GetMonth(ctx context.Context, userID string, year, month int) (*response_models.MoodCalendarResponse, error) {
	rng, err := domain.MonthRange(year, month, m.loc)
	if err != nil {
		return nil, err
	}
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	entries, err := m.moodRepo.ListByUser(ctx, id, &rng.Start, &rng.End)
	if err != nil {
		return nil, storageFailure(m.logger, "list month", id, err)
	}
	calendar, err := response_models.BuildMoodCalendar(year, month, entries, m.loc)
	if err != nil {
		m.logger.Error("decoding mood entries failed", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	return calendar, nil
}

// GetRange lists entries between two YYYY-MM-DD days, both inclusive. Either
// bound may be empty to leave that side open.
func (m *MoodService) GetRange(ctx context.Context, userID, start, end string) ([]response_models.MoodEntryResponse, error) {
	startAt, err := m.parseBound(start, false)
	if err != nil {
		return nil, err
	}
	endAt, err := m.parseBound(end, true)
	if err != nil {
		return nil, err
	}
	if startAt != nil && endAt != nil && startAt.After(*endAt) {
		return nil, utils.ErrInvalidInput
	}
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	entries, err := m.moodRepo.ListByUser(ctx, id, startAt, endAt)
	if err != nil {
		return nil, storageFailure(m.logger, "list moods", id, err)
	}
	views, err := response_models.BuildMoodEntries(entries, m.loc)
	if err != nil {
		m.logger.Error("decoding mood entries failed", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	return views, nil
}

func (m *MoodService) parseBound(value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	day, err := domain.ParseDay(value, m.loc)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	rng := domain.DayRange(day, m.loc)
	if endOfDay {
		return &rng.End, nil
	}
	return &rng.Start, nil
}

func (m *MoodService) view(entry *db_models.MoodEntry) (*response_models.MoodEntryResponse, error) {
	resp, err := response_models.BuildMoodEntry(entry, m.loc)
	if err != nil {
		m.logger.Error("decoding mood entry failed", zap.Error(err))
		return nil, err
	}
	return resp, nil
}
