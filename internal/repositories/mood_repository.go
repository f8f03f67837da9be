package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"soberup/internal/domain"
	"soberup/internal/infra"
	"soberup/internal/models/db_models"
)

type MoodRepository interface {
	// ListByUser returns entries with start <= date <= end, newest first.
	// A nil bound is open.
	ListByUser(ctx context.Context, userID string, start, end *time.Time) ([]db_models.MoodEntry, error)
	FindInRange(ctx context.Context, userID string, rng domain.DateRange) (*db_models.MoodEntry, error)
	// SaveForDay upserts the entry on (user_id, day_key) and stamps the
	// user's last_mood_check, in one transaction. On conflict only
	// mood_value, note and updated_at change; id and created_at are kept.
	SaveForDay(ctx context.Context, entry *db_models.MoodEntry, checkedAt time.Time) error
}

type moodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) ListByUser(ctx context.Context, userID string, start, end *time.Time) ([]db_models.MoodEntry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var entries []db_models.MoodEntry
	err := query.Order("date DESC").Order("updated_at DESC").Find(&entries).Error
	return entries, err
}

func (r *moodRepository) FindInRange(ctx context.Context, userID string, rng domain.DateRange) (*db_models.MoodEntry, error) {
	entries, err := r.ListByUser(ctx, userID, &rng.Start, &rng.End)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (r *moodRepository) SaveForDay(ctx context.Context, entry *db_models.MoodEntry, checkedAt time.Time) (err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		err = infra.ReleaseTransaction(tx, err)
	}()

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood_value", "note", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return err
	}

	result := tx.Model(&db_models.User{}).
		Where("id = ?", entry.UserID).
		Update("last_mood_check", checkedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
