package metacache

import (
	"context"

	"github.com/orgball2608/mindlink/internal/domain"
)

const (
	DriverMemory = "memory"
	DriverOtter  = "otter"
	DriverRedis  = "redis"
)

// Cache stores extracted metadata under the exact request URL.
// Entries expire on their own; there is no invalidation API.
//
//go:generate go run go.uber.org/mock/mockgen -source=metacache.go -destination=mocks/mock.go
type Cache interface {
	// Get returns a copy of the cached record, or false on a miss.
	Get(ctx context.Context, key string) (*domain.Metadata, bool)
	Set(ctx context.Context, key string, value *domain.Metadata) error
}
