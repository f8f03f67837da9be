package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"soberup/internal/domain"
	"soberup/internal/models/db_models"
	"soberup/internal/models/response_models"
	"soberup/internal/repositories"
	"soberup/pkg/utils"
)

type UserServiceInterface interface {
	GetProfile(ctx context.Context, userID string, now time.Time) (*response_models.UserProfileResponse, error)
	UpdateSOSContact(ctx context.Context, userID, name, phone string, now time.Time) (*response_models.UserProfileResponse, error)
	SetSoberSince(ctx context.Context, userID, date string, now time.Time) (*response_models.UserProfileResponse, error)
	MarkRelapse(ctx context.Context, userID string, now time.Time) (*response_models.UserProfileResponse, error)
}

type UserService struct {
	userRepo repositories.UserRepository
	loc      *time.Location
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, loc *time.Location, logger *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		loc:      loc,
		logger:   logger,
	}
}

func (s *UserService) loadUser(ctx context.Context, id string) (*db_models.User, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, storageFailure(s.logger, "find user", id, err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string, now time.Time) (*response_models.UserProfileResponse, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}
	profile, err := response_models.BuildUserProfile(user, now, s.loc)
	if err != nil {
		s.logger.Error("decoding user failed", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// UpdateSOSContact replaces the contact as a whole; both fields are required.
func (s *UserService) UpdateSOSContact(ctx context.Context, userID, name, phone string, now time.Time) (*response_models.UserProfileResponse, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	contact := db_models.SOSContact{Name: strings.TrimSpace(name), Phone: strings.TrimSpace(phone)}
	if !contact.IsSet() {
		return nil, utils.ErrInvalidInput
	}

	if err := s.userRepo.UpdateSOSContact(ctx, id, contact); err != nil {
		return nil, storageFailure(s.logger, "update sos contact", id, err)
	}
	s.logger.Info("sos contact updated", zap.String("user_id", id))
	return s.GetProfile(ctx, id, now)
}

// SetSoberSince starts the streak at midnight of the chosen day. The cached
// day count is recomputed and written together with the new start.
func (s *UserService) SetSoberSince(ctx context.Context, userID, date string, now time.Time) (*response_models.UserProfileResponse, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	day, err := domain.ParseDay(strings.TrimSpace(date), s.loc)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	since := domain.StartOfDay(day, s.loc)
	if since.After(now) {
		return nil, utils.ErrInvalidInput
	}

	return s.writeSoberSince(ctx, id, since, now)
}

// MarkRelapse records "I drank": the streak restarts now.
func (s *UserService) MarkRelapse(ctx context.Context, userID string, now time.Time) (*response_models.UserProfileResponse, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.writeSoberSince(ctx, id, domain.RelapseAt(now), now)
}

func (s *UserService) writeSoberSince(ctx context.Context, id string, since, now time.Time) (*response_models.UserProfileResponse, error) {
	days := domain.SoberDays(now, &since)
	if err := s.userRepo.UpdateSoberSince(ctx, id, since, days); err != nil {
		return nil, storageFailure(s.logger, "update sober since", id, err)
	}
	s.logger.Info("sober start updated", zap.String("user_id", id), zap.Time("sober_since", since), zap.Int("sober_days", days))
	return s.GetProfile(ctx, id, now)
}
