package bookmark

import (
	"context"

	"github.com/orgball2608/mindlink/internal/domain"
)

// Recent activity window shown on the dashboard.
const (
	RecentActivityMonths = 1
	RecentActivityLimit  = 5
)

//go:generate go run go.uber.org/mock/mockgen -source=bookmark.go -destination=mocks/mock.go
type Client interface {
	// AddLink saves a URL for the user, enriching Instagram posts and reels with their metadata.
	AddLink(ctx context.Context, userID string, input domain.NewLink) (*domain.Link, error)
	GetLink(ctx context.Context, userID, id string) (*domain.Link, error)
	ListLinks(ctx context.Context, userID string) ([]*domain.Link, error)
	UpdateLink(ctx context.Context, userID, id string, update domain.LinkUpdate) (*domain.Link, error)
	DeleteLink(ctx context.Context, userID, id string) error
	MarkAsRead(ctx context.Context, userID, id string) (*domain.Link, error)
	// Reprocess runs the Instagram extractor again and overwrites the link with the fresh metadata.
	Reprocess(ctx context.Context, userID, id string) (*domain.Link, error)
	RecentActivities(ctx context.Context, userID string) ([]*domain.Activity, error)
}
