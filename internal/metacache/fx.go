package metacache

import (
	"context"
	"fmt"

	"github.com/orgball2608/mindlink/pkg/config"
	"github.com/orgball2608/mindlink/pkg/logger"
	"github.com/orgball2608/mindlink/pkg/retry"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New builds the cache driver selected by METADATA_CACHE_DRIVER.
func New(opts Opts) (Cache, error) {
	md := opts.Config.Metadata
	if md.CacheTTL <= 0 {
		return nil, fmt.Errorf("metadata cache ttl must be positive, got %s", md.CacheTTL)
	}

	switch md.CacheDriver {
	case "", DriverMemory:
		opts.Logger.Info("Using in-memory metadata cache", "ttl", md.CacheTTL, "cleanup_interval", md.CacheCleanupInterval)
		return NewMemory(md.CacheTTL, md.CacheCleanupInterval), nil
	case DriverOtter:
		opts.Logger.Info("Using otter metadata cache", "ttl", md.CacheTTL, "max_size", md.CacheMaxSize)
		return NewOtter(md.CacheTTL, md.CacheMaxSize), nil
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.Config.Redis.Addr,
			Password: opts.Config.Redis.Password,
			DB:       opts.Config.Redis.DB,
		})
		opts.LC.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				ping := func(ctx context.Context) error {
					return client.Ping(ctx).Err()
				}
				if err := retry.Do(ctx, opts.Logger, "RedisPing", ping); err != nil {
					return fmt.Errorf("failed to ping redis: %w", err)
				}
				opts.Logger.Info("Connected to redis", "addr", opts.Config.Redis.Addr)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return NewRedis(client, md.CacheTTL, opts.Logger), nil
	default:
		return nil, fmt.Errorf("unknown metadata cache driver %q", md.CacheDriver)
	}
}

var Module = fx.Provide(New)
