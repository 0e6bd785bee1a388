package ratelimit

import (
	"github.com/orgball2608/mindlink/pkg/config"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		func(cfg *config.Config) *InMemoryLimiter {
			return NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Period, cfg.RateLimit.Burst)
		},
		fx.As(new(Limiter)),
	),
)
