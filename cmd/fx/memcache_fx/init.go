package memcache_fx

import (
	"go.uber.org/fx"

	mem "lookbook/pkg/memcache"
)

var Module = fx.Provide(provideOtpStore)

func provideOtpStore() mem.OtpStore {
	return mem.NewOtpTokens()
}
