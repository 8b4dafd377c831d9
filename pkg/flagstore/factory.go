package flagstore

import (
	"context"
	"fmt"

	"github.com/medireon/site/pkg/config"
)

// New builds the store selected by cfg.Driver. The returned close function
// releases any connection and is always safe to call.
func New(ctx context.Context, cfg config.FlagStoreConfig, redisCfg config.RedisConfig) (Store, func(), error) {
	switch cfg.Driver {
	case config.FlagDriverCookie, "":
		return BrowserOnly(), func() {}, nil
	case config.FlagDriverMemory:
		return NewMemory(), func() {}, nil
	case config.FlagDriverRedis:
		store, raw, err := NewRedis(ctx, redisCfg)
		if err != nil {
			return nil, func() {}, err
		}
		return store, func() { _ = raw.Close() }, nil
	}
	return nil, func() {}, fmt.Errorf("unknown flag driver %q", cfg.Driver)
}
