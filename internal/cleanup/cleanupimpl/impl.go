package cleanupimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/mindlink/internal/cleanup"
	"github.com/orgball2608/mindlink/internal/repositories/activity"
	"github.com/orgball2608/mindlink/pkg/config"
	"github.com/orgball2608/mindlink/pkg/logger"
	"go.uber.org/fx"
)

const jobTimeout = 5 * time.Minute

type Opts struct {
	fx.In

	Config       *config.Config
	Logger       logger.Logger
	ActivityRepo activity.Repository
}

type CleanupImpl struct {
	timezone     string
	retention    time.Duration
	logger       logger.Logger
	activityRepo activity.Repository
}

func New(opts Opts) *CleanupImpl {
	return &CleanupImpl{
		timezone:     opts.Config.Cleanup.Timezone,
		retention:    opts.Config.Cleanup.ActivityRetention,
		logger:       opts.Logger.WithComponent("ActivityCleanup"),
		activityRepo: opts.ActivityRepo,
	}
}

var _ cleanup.Client = (*CleanupImpl)(nil)

func (c *CleanupImpl) ScheduleActivityCleanup(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(c.location()))
	if err != nil {
		return fmt.Errorf("failed to create cleanup scheduler: %w", err)
	}

	// 3:00 AM every day
	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				c.logger.Info("Context cancelled, skipping activity cleanup job")
				return
			}

			c.logger.Info("Starting scheduled activity cleanup job")

			jobCtx, cancel := context.WithTimeout(ctx, jobTimeout)
			defer cancel()

			rowsDeleted, err := c.RunActivityCleanup(jobCtx)
			if err != nil {
				c.logger.Error("Failed to clean up old activities", "error", err)
				return
			}

			c.logger.Info("Activity cleanup completed successfully", "rows_deleted", rowsDeleted)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule activity cleanup: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		c.logger.Info("Stopping activity cleanup scheduler")
		if err := scheduler.Shutdown(); err != nil {
			c.logger.Error("Failed to shut down cleanup scheduler", "error", err)
		}
	}()

	return nil
}

func (c *CleanupImpl) RunActivityCleanup(ctx context.Context) (int64, error) {
	rows, err := c.activityRepo.CleanupOldRecords(ctx, c.retention)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old activities: %w", err)
	}
	return rows, nil
}

func (c *CleanupImpl) location() *time.Location {
	loc, err := time.LoadLocation(c.timezone)
	if err != nil {
		c.logger.Warn("Failed to load cleanup timezone, using local timezone", "timezone", c.timezone, "error", err)
		return time.Local
	}
	return loc
}
