package services

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"soberup/pkg/utils"
)

func parseUserID(userID string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	return id.String(), nil
}

// storageFailure logs the cause and collapses it to the generic sentinel the
// API exposes. A missing user row is reported as ErrUserNotFound.
func storageFailure(logger *zap.Logger, op, userID string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrUserNotFound
	}
	logger.Error("storage call failed",
		zap.String("op", op),
		zap.String("user_id", userID),
		zap.Error(err))
	return utils.ErrDatabaseError
}
