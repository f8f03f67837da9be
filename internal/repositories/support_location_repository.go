package repositories

import (
	"context"

	"gorm.io/gorm"
	"soberup/internal/models/db_models"
)

type SupportLocationRepository interface {
	ListAll(ctx context.Context) ([]db_models.SupportLocation, error)
	Create(ctx context.Context, location *db_models.SupportLocation) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type supportLocationRepository struct {
	db *gorm.DB
}

func NewSupportLocationRepository(db *gorm.DB) SupportLocationRepository {
	return &supportLocationRepository{db: db}
}

func (r *supportLocationRepository) ListAll(ctx context.Context) ([]db_models.SupportLocation, error) {
	var locations []db_models.SupportLocation
	err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error
	return locations, err
}

func (r *supportLocationRepository) Create(ctx context.Context, location *db_models.SupportLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *supportLocationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.SupportLocation{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}
