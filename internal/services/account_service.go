package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"soberup/internal/domain"
	"soberup/internal/models/request_models"
	"soberup/internal/models/response_models"
	"soberup/internal/repositories"
	mem "soberup/pkg/memcache"
	"soberup/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest, now time.Time) (*response_models.LoginResponse, error)
	Logout(token string, expiresAt time.Time)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type AccountService struct {
	userRepo   repositories.UserRepository
	jwtManager *utils.JWTManager
	revoked    mem.RevokedTokenStore
	loc        *time.Location
	logger     *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	jwtManager *utils.JWTManager,
	revoked mem.RevokedTokenStore,
	loc *time.Location,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		revoked:    revoked,
		loc:        loc,
		logger:     logger,
	}
}

// Login looks the user up by name and checks the password. An unknown name
// and a wrong password produce the same ErrInvalidCredentials.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest, now time.Time) (*response_models.LoginResponse, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" || request.Password == "" {
		return nil, utils.ErrInvalidInput
	}

	startTime := time.Now()

	user, err := a.userRepo.FindByName(ctx, name)
	if err != nil {
		a.logger.Error("credential lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	a.logger.Debug("credential lookup finished", zap.Duration("took", time.Since(startTime)))

	if user == nil || !utils.PasswordMatches(user.Password, request.Password) {
		a.logger.Info("login rejected")
		return nil, utils.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(user.Role)
	if err != nil {
		a.logger.Error("user has unknown role", zap.String("user_id", user.ID.String()), zap.String("role", user.Role))
		return nil, utils.ErrCorruptRecord
	}

	token, expiresAt, err := a.jwtManager.CreateToken(user.ID.String(), user.Username, string(role), now)
	if err != nil {
		a.logger.Error("signing token failed", zap.Error(err))
		return nil, err
	}

	a.logger.Info("login succeeded", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))

	return &response_models.LoginResponse{
		Token:     token,
		ExpiresAt: utils.FormatRFC3339In(expiresAt, a.loc),
		User: response_models.SessionUser{
			ID:       user.ID.String(),
			Username: user.Username,
			Role:     string(role),
			Name:     user.Name,
		},
	}, nil
}

// Logout clears the session by refusing the token until it would have
// expired anyway.
func (a *AccountService) Logout(token string, expiresAt time.Time) {
	a.revoked.Revoke(token, expiresAt)
}

func (a *AccountService) UsernameExists(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, utils.ErrInvalidInput
	}
	exists, err := a.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		a.logger.Error("username lookup failed", zap.Error(err))
		return false, utils.ErrDatabaseError
	}
	return exists, nil
}
