package account_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"soberup/internal/repositories"
	"soberup/internal/services"
	"soberup/pkg/config"
	mem "soberup/pkg/memcache"
	"soberup/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo,
	provideJWTManager,
	provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideAccountService(
	userRepo repositories.UserRepository,
	jwtManager *utils.JWTManager,
	revoked mem.RevokedTokenStore,
	loc *time.Location,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, jwtManager, revoked, loc, logger.Named("account"))
}
