package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"soberup/internal/models/response_models"
	"soberup/internal/repositories"
	"soberup/pkg/utils"
)

type SupportLocationServiceInterface interface {
	ListAll(ctx context.Context) ([]response_models.SupportLocationResponse, error)
}

type SupportLocationService struct {
	repo   repositories.SupportLocationRepository
	loc    *time.Location
	logger *zap.Logger
}

func NewSupportLocationService(repo repositories.SupportLocationRepository, loc *time.Location, logger *zap.Logger) SupportLocationServiceInterface {
	return &SupportLocationService{repo: repo, loc: loc, logger: logger}
}

func (s *SupportLocationService) ListAll(ctx context.Context) ([]response_models.SupportLocationResponse, error) {
	locations, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("listing support locations failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SupportLocationResponse, 0, len(locations))
	for i := range locations {
		out = append(out, response_models.BuildSupportLocation(&locations[i], s.loc))
	}
	return out, nil
}
