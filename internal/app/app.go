package app

import (
	"context"

	"github.com/orgball2608/mindlink/internal/bookmark"
	"github.com/orgball2608/mindlink/internal/bookmark/bookmarkimpl"
	"github.com/orgball2608/mindlink/internal/cleanup"
	"github.com/orgball2608/mindlink/internal/cleanup/cleanupimpl"
	"github.com/orgball2608/mindlink/internal/instagram"
	"github.com/orgball2608/mindlink/internal/instagram/instagramimpl"
	"github.com/orgball2608/mindlink/internal/metacache"
	"github.com/orgball2608/mindlink/internal/migrations"
	"github.com/orgball2608/mindlink/internal/ratelimit"
	repositories "github.com/orgball2608/mindlink/internal/repositories/fx"
	"github.com/orgball2608/mindlink/internal/server"
	"github.com/orgball2608/mindlink/pkg/config"
	"github.com/orgball2608/mindlink/pkg/logger"
	"github.com/orgball2608/mindlink/pkg/pgx"
	"github.com/orgball2608/mindlink/pkg/retry"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	metacache.Module,
	ratelimit.Module,
	repositories.Module,
	fx.Provide(
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			bookmarkimpl.New,
			fx.As(new(bookmark.Client)),
		),
		fx.Annotate(
			cleanupimpl.New,
			fx.As(new(cleanup.Client)),
		),
		server.New,
	),
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(lc fx.Lifecycle, log logger.Logger, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			up := func(ctx context.Context) error {
				return migrations.Up(ctx, cfg.GetDSN())
			}
			if err := retry.Do(ctx, log, "Migrations", up); err != nil {
				return err
			}
			log.Info("Database migrations applied")
			return nil
		},
	})
}

func run(lc fx.Lifecycle, log logger.Logger, cleanupClient cleanup.Client, _ *server.Server) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := cleanupClient.ScheduleActivityCleanup(ctx); err != nil {
				log.Error("Schedule activity cleanup error", "error", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
