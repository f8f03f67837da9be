package services

import (
	"context"

	"go.uber.org/zap"
	"soberup/internal/domain"
	"soberup/internal/models/response_models"
	"soberup/internal/repositories"
	"soberup/pkg/utils"
)

// TriggerServiceInterface manages a patient's trigger list. Every change
// writes the complete list back; concurrent edits are last-write-wins.
type TriggerServiceInterface interface {
	ListTriggers(ctx context.Context, userID string) ([]string, error)
	AddTrigger(ctx context.Context, userID, text string) ([]string, error)
	DeleteTrigger(ctx context.Context, userID, text string) ([]string, error)
}

type TriggerService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewTriggerService(userRepo repositories.UserRepository, logger *zap.Logger) TriggerServiceInterface {
	return &TriggerService{userRepo: userRepo, logger: logger}
}

func (t *TriggerService) current(ctx context.Context, id string) ([]string, error) {
	user, err := t.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, storageFailure(t.logger, "find user", id, err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return response_models.TriggerList(user.Triggers), nil
}

func (t *TriggerService) ListTriggers(ctx context.Context, userID string) ([]string, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	return t.current(ctx, id)
}

func (t *TriggerService) AddTrigger(ctx context.Context, userID, text string) ([]string, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	if _, err := domain.NormalizeTrigger(text); err != nil {
		return nil, err
	}

	existing, err := t.current(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := domain.AddTrigger(existing, text)
	if err != nil {
		return nil, err
	}

	if err := t.userRepo.UpdateTriggers(ctx, id, updated); err != nil {
		return nil, storageFailure(t.logger, "update triggers", id, err)
	}
	t.logger.Info("trigger added", zap.String("user_id", id), zap.Int("count", len(updated)))
	return updated, nil
}

// DeleteTrigger removes the first exact match. A trigger that is not in the
// list is not an error; the list is still written back unchanged.
func (t *TriggerService) DeleteTrigger(ctx context.Context, userID, text string) ([]string, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	existing, err := t.current(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := domain.RemoveTrigger(existing, text)

	if err := t.userRepo.UpdateTriggers(ctx, id, updated); err != nil {
		return nil, storageFailure(t.logger, "update triggers", id, err)
	}
	t.logger.Info("trigger removed", zap.String("user_id", id), zap.Int("count", len(updated)))
	return updated, nil
}
