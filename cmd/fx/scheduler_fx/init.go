package scheduler_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"soberup/internal/repositories"
	"soberup/internal/services"
	"soberup/pkg/config"
	mem "soberup/pkg/memcache"
	"soberup/pkg/metrics"
	"soberup/pkg/scheduler"
)

const revokedTokenPurgeSpec = "0 */15 * * * *"

var Module = fx.Options(
	fx.Provide(
		provideScheduler,
		provideSoberDaysRefresher),
	fx.Invoke(registerJobs),
)

func provideScheduler(logger *zap.Logger) *scheduler.Scheduler {
	return scheduler.NewScheduler(logger.Named("scheduler"))
}

func provideSoberDaysRefresher(userRepo repositories.UserRepository, collectors *metrics.Collectors, logger *zap.Logger) *services.SoberDaysRefresher {
	return services.NewSoberDaysRefresher(userRepo, collectors, logger.Named("refresher"))
}

func registerJobs(
	lc fx.Lifecycle,
	cfg *config.Config,
	sched *scheduler.Scheduler,
	refresher *services.SoberDaysRefresher,
	revoked mem.RevokedTokenStore,
	logger *zap.Logger,
) error {
	err := sched.Register("sober-days-refresh", cfg.Jobs.SoberDaysRefreshCron, func(ctx context.Context) error {
		_, err := refresher.RefreshAll(ctx, time.Now())
		return err
	})
	if err != nil {
		return err
	}

	err = sched.Register("revoked-token-purge", revokedTokenPurgeSpec, func(ctx context.Context) error {
		if n := revoked.Purge(time.Now()); n > 0 {
			logger.Debug("purged revoked tokens", zap.Int("count", n))
		}
		return nil
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sched.Start()
			logger.Info("scheduler started", zap.Int("jobs", sched.Entries()))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop(ctx)
			return nil
		},
	})
	return nil
}
