package db_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"soberup/internal/infra"
	"soberup/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := infra.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrating schema: %w", err)
		}
		logger.Info("database schema migrated")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}
