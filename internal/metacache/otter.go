package metacache

import (
	"context"
	"time"

	"github.com/maypok86/otter/v2"
	"github.com/orgball2608/mindlink/internal/domain"
)

// Otter is a bounded in-memory cache with write-based expiry.
type Otter struct {
	cache *otter.Cache[string, *domain.Metadata]
}

var _ Cache = (*Otter)(nil)

func NewOtter(ttl time.Duration, maxSize int) *Otter {
	return &Otter{
		cache: otter.Must(&otter.Options[string, *domain.Metadata]{
			MaximumSize:      maxSize,
			ExpiryCalculator: otter.ExpiryWriting[string, *domain.Metadata](ttl),
		}),
	}
}

func (o *Otter) Get(_ context.Context, key string) (*domain.Metadata, bool) {
	md, found := o.cache.GetIfPresent(key)
	if !found {
		return nil, false
	}
	return md.Clone(), true
}

func (o *Otter) Set(_ context.Context, key string, value *domain.Metadata) error {
	o.cache.Set(key, value.Clone())
	return nil
}
