package logger

import (
	"context"

	"github.com/orgball2608/mindlink/pkg/config"
	"go.uber.org/fx"
)

type FxOpts struct {
	fx.In
	LC     fx.Lifecycle
	Config *config.Config
}

// NewFx builds the application logger and flushes pending sentry events on stop.
func NewFx(opts FxOpts) *Impl {
	log := New(Opts{
		Env:       opts.Config.App.Env,
		SentryDSN: opts.Config.App.SentryUrl,
	})

	opts.LC.Append(fx.Hook{
		OnStop: func(context.Context) error {
			Flush()
			return nil
		},
	})

	return log
}

var FxOption = fx.Annotate(
	NewFx,
	fx.As(new(Logger)),
)
