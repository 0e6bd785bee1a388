package metacache

import (
	"context"
	"time"

	"github.com/orgball2608/mindlink/internal/domain"
	gocache "github.com/patrickmn/go-cache"
)

// Memory is a process-local cache with a periodic sweep of expired entries.
type Memory struct {
	cache *gocache.Cache
}

var _ Cache = (*Memory)(nil)

func NewMemory(ttl, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

func (m *Memory) Get(_ context.Context, key string) (*domain.Metadata, bool) {
	item, found := m.cache.Get(key)
	if !found {
		return nil, false
	}
	md, ok := item.(*domain.Metadata)
	if !ok {
		return nil, false
	}
	return md.Clone(), true
}

func (m *Memory) Set(_ context.Context, key string, value *domain.Metadata) error {
	m.cache.Set(key, value.Clone(), gocache.DefaultExpiration)
	return nil
}

// ItemCount includes expired entries that have not been swept yet.
func (m *Memory) ItemCount() int {
	return m.cache.ItemCount()
}
