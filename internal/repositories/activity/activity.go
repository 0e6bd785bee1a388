package activity

import (
	"context"
	"time"

	"github.com/orgball2608/mindlink/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=activity.go -destination=mocks/mock.go
type Repository interface {
	// Create appends an entry to the user's activity log
	Create(ctx context.Context, activity domain.Activity) error

	// ListRecentByUser returns up to limit activities created since the given time, newest first
	ListRecentByUser(ctx context.Context, userID string, since time.Time, limit int) ([]*domain.Activity, error)

	// CleanupOldRecords deletes activities older than the given duration
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
