package mood_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"soberup/internal/repositories"
	"soberup/internal/services"
	"soberup/pkg/metrics"
)

var Module = fx.Provide(
	provideMoodRepo,
	provideMoodService)

func provideMoodRepo(db *gorm.DB) repositories.MoodRepository {
	return repositories.NewMoodRepository(db)
}

func provideMoodService(
	moodRepo repositories.MoodRepository,
	collectors *metrics.Collectors,
	loc *time.Location,
	logger *zap.Logger,
) services.MoodServiceInterface {
	return services.NewMoodService(moodRepo, collectors, loc, logger.Named("mood"))
}
