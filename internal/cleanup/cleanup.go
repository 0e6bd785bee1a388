package cleanup

import (
	"context"
)

type Client interface {
	// ScheduleActivityCleanup starts a daily prune of old activities.
	// The scheduler stops when ctx is cancelled.
	ScheduleActivityCleanup(ctx context.Context) error

	// RunActivityCleanup prunes once and returns the number of deleted rows.
	RunActivityCleanup(ctx context.Context) (int64, error)
}
