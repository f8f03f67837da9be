package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"soberup/internal/models/db_models"
)

func InitPostgresql(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return connectionPool, nil
}

// AutoMigrate creates or updates the tables of every persisted model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.MoodEntry{},
		&db_models.SupportLocation{},
	)
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database connection", zap.Error(err))
	} else {
		logger.Info("PostgreSQL database connection closed")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	return db.Begin()
}

// ReleaseTransaction rolls back when err is set and commits otherwise. The
// returned error is err itself, or the commit failure.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rollbackErr)
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		return fmt.Errorf("committing transaction: %w", commitErr)
	}
	return nil
}
