package patient_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"soberup/internal/repositories"
	"soberup/internal/services"
)

var Module = fx.Provide(
	provideUserService,
	provideTriggerService,
	provideDashboardService)

func provideUserService(userRepo repositories.UserRepository, loc *time.Location, logger *zap.Logger) services.UserServiceInterface {
	return services.NewUserService(userRepo, loc, logger.Named("user"))
}

func provideTriggerService(userRepo repositories.UserRepository, logger *zap.Logger) services.TriggerServiceInterface {
	return services.NewTriggerService(userRepo, logger.Named("trigger"))
}

func provideDashboardService(users services.UserServiceInterface, moods services.MoodServiceInterface, loc *time.Location) services.DashboardService {
	return services.NewDashboardService(users, moods, loc)
}
