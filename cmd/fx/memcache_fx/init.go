package memcache_fx

import (
	"go.uber.org/fx"
	mem "soberup/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokens)

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}
