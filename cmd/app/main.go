package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"soberup/cmd/fx/account_fx"
	"soberup/cmd/fx/config_fx"
	"soberup/cmd/fx/controllers_fx"
	"soberup/cmd/fx/db_fx"
	"soberup/cmd/fx/logger_fx"
	"soberup/cmd/fx/memcache_fx"
	"soberup/cmd/fx/metrics_fx"
	"soberup/cmd/fx/mood_fx"
	"soberup/cmd/fx/patient_fx"
	"soberup/cmd/fx/scheduler_fx"
	"soberup/cmd/fx/support_location_fx"
	"soberup/pkg/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		metrics_fx.Module,
		account_fx.Module,
		mood_fx.Module,
		patient_fx.Module,
		support_location_fx.Module,
		scheduler_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
