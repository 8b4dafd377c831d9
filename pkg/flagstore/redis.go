package flagstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medireon/site/pkg/config"
)

const (
	keyNamespace     = "medireon"
	subscribedPrefix = "subscribed"
	flagValue        = "true"
)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
}

// Redis keeps flags under medireon:subscribed:<visitor> with no expiry.
type Redis struct {
	store cmdable
}

// NewRedis connects using cfg and verifies connectivity.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, *redis.Client, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{store: raw}, raw, nil
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client) *Redis {
	return &Redis{store: client}
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

func subscribedKey(visitorID string) string {
	return fmt.Sprintf("%s:%s:%s", keyNamespace, subscribedPrefix, visitorID)
}

func (r *Redis) Load(ctx context.Context, visitorID string) (bool, error) {
	if visitorID == "" {
		return false, ErrNoVisitor
	}
	val, err := r.store.Get(ctx, subscribedKey(visitorID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load subscribed flag: %w", err)
	}
	return val == flagValue, nil
}

func (r *Redis) Save(ctx context.Context, visitorID string) error {
	if visitorID == "" {
		return ErrNoVisitor
	}
	if err := r.store.Set(ctx, subscribedKey(visitorID), flagValue, 0).Err(); err != nil {
		return fmt.Errorf("save subscribed flag: %w", err)
	}
	return nil
}

// Ping reports whether redis is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	return r.store.Ping(ctx).Err()
}
