package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"soberup/internal/domain"
	"soberup/internal/repositories"
	"soberup/pkg/metrics"
)

// SoberDaysRefresher keeps the cached sober_days column in line with
// sober_since for users who have not touched their streak recently. Reads
// never depend on the cache; it exists for listing and reporting queries.
type SoberDaysRefresher struct {
	userRepo repositories.UserRepository
	metrics  *metrics.Collectors
	logger   *zap.Logger
}

func NewSoberDaysRefresher(userRepo repositories.UserRepository, collectors *metrics.Collectors, logger *zap.Logger) *SoberDaysRefresher {
	return &SoberDaysRefresher{userRepo: userRepo, metrics: collectors, logger: logger}
}

// RefreshAll rewrites sober_days where it drifted and returns how many rows
// changed. sober_since is never modified. A failing row is logged and
// skipped; the first such error is returned after the pass.
func (r *SoberDaysRefresher) RefreshAll(ctx context.Context, now time.Time) (int, error) {
	users, err := r.userRepo.ListWithSoberSince(ctx)
	if err != nil {
		r.metrics.RefreshRun("error")
		return 0, err
	}

	updated := 0
	var firstErr error
	for i := range users {
		if err := ctx.Err(); err != nil {
			r.metrics.RefreshRun("error")
			return updated, err
		}
		u := &users[i]
		days := domain.SoberDays(now, u.SoberSince)
		if days == u.SoberDays {
			continue
		}
		if err := r.userRepo.RefreshSoberDays(ctx, u.ID.String(), days); err != nil {
			r.logger.Warn("refreshing sober days failed", zap.String("user_id", u.ID.String()), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		updated++
	}

	if firstErr != nil {
		r.metrics.RefreshRun("partial")
	} else {
		r.metrics.RefreshRun("ok")
	}
	r.logger.Info("sober days refreshed", zap.Int("checked", len(users)), zap.Int("updated", updated))
	return updated, firstErr
}
