package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"soberup/internal/models/db_models"
)

// UserRepository is the storage side of the patient record.
//
// Trigger lists and the SOS contact are written as whole fields. Two
// sessions editing the same user concurrently overwrite each other; the
// last write wins.
type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) error
	FindById(ctx context.Context, id string) (*db_models.User, error)
	FindByName(ctx context.Context, name string) (*db_models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateSoberSince(ctx context.Context, id string, since time.Time, soberDays int) error
	UpdateTriggers(ctx context.Context, id string, triggers []string) error
	UpdateSOSContact(ctx context.Context, id string, contact db_models.SOSContact) error
	ListWithSoberSince(ctx context.Context) ([]db_models.User, error)
	RefreshSoberDays(ctx context.Context, id string, soberDays int) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindById(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// FindByName is the credential lookup: equality on name, at most one row.
func (u *userRepository) FindByName(ctx context.Context, name string) (*db_models.User, error) {
	var users []db_models.User
	err := u.db.WithContext(ctx).
		Where("name = ?", name).
		Order("created_at ASC").
		Limit(1).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (u *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

// UpdateFields applies a partial update. It reports gorm.ErrRecordNotFound
// when no user has the id.
func (u *userRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	result := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateSoberSince writes the streak start and its cached day count in a
// single statement so the two never disagree.
func (u *userRepository) UpdateSoberSince(ctx context.Context, id string, since time.Time, soberDays int) error {
	return u.UpdateFields(ctx, id, map[string]interface{}{
		"sober_since": since,
		"sober_days":  soberDays,
	})
}

func (u *userRepository) UpdateTriggers(ctx context.Context, id string, triggers []string) error {
	if triggers == nil {
		triggers = []string{}
	}
	return u.UpdateFields(ctx, id, map[string]interface{}{
		"triggers": pq.StringArray(triggers),
	})
}

func (u *userRepository) UpdateSOSContact(ctx context.Context, id string, contact db_models.SOSContact) error {
	return u.UpdateFields(ctx, id, map[string]interface{}{
		"sos_name":  contact.Name,
		"sos_phone": contact.Phone,
	})
}

func (u *userRepository) ListWithSoberSince(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := u.db.WithContext(ctx).
		Select("id", "sober_since", "sober_days").
		Where("sober_since IS NOT NULL").
		Find(&users).Error
	return users, err
}

// RefreshSoberDays only rewrites the cache column. It leaves updated_at
// alone because nothing the user did changed.
func (u *userRepository) RefreshSoberDays(ctx context.Context, id string, soberDays int) error {
	return u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		UpdateColumn("sober_days", soberDays).Error
}
