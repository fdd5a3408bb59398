package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	mem "paygate/pkg/memcache"
)

var Module = fx.Provide(
	provideSeenSignatures,
)

// The processor retries deliveries for up to two days; anything older falls
// through to the database uniqueness check.
func provideSeenSignatures() *mem.SeenSignatures {
	return mem.NewSeenSignatures(48 * time.Hour)
}
