package support_location_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"soberup/internal/repositories"
	"soberup/internal/services"
)

var Module = fx.Provide(
	provideSupportLocationRepo,
	provideSupportLocationService)

func provideSupportLocationRepo(db *gorm.DB) repositories.SupportLocationRepository {
	return repositories.NewSupportLocationRepository(db)
}

func provideSupportLocationService(repo repositories.SupportLocationRepository, loc *time.Location, logger *zap.Logger) services.SupportLocationServiceInterface {
	return services.NewSupportLocationService(repo, loc, logger.Named("support_location"))
}
