package config_fx

import (
	"time"

	"go.uber.org/fx"
	"soberup/pkg/config"
	"soberup/pkg/utils"
)

var Module = fx.Provide(
	provideConfig,
	provideLocation)

func provideConfig() (*config.Config, error) {
	return config.Load(config.DefaultPath())
}

// provideLocation is the time zone that decides where a calendar day starts.
func provideLocation(cfg *config.Config) *time.Location {
	return utils.LoadLocation(cfg.App.Timezone)
}
