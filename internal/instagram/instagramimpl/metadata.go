package instagramimpl

import (
	"context"
	"errors"

	"github.com/orgball2608/mindlink/internal/domain"
	"github.com/orgball2608/mindlink/internal/instagram"
	"github.com/orgball2608/mindlink/pkg/urlutil"
)

// GetMetadata serves from the cache when it can, otherwise scrapes the page.
// Concurrent misses for the same URL each fetch upstream; the last write wins.
func (i *InstaImpl) GetMetadata(ctx context.Context, rawURL string) (*domain.Metadata, error) {
	if rawURL == "" {
		return nil, instagram.ErrMissingURL
	}

	i.logger.Info("Processing metadata request", "url", rawURL)

	if cached, ok := i.cache.Get(ctx, rawURL); ok {
		i.logger.Info("Returning cached Instagram metadata", "url", rawURL)
		return cached, nil
	}

	cleanURL := urlutil.Clean(rawURL)
	i.logger.Debug("Cleaned URL", "url", rawURL, "clean_url", cleanURL)

	html, err := i.fetchPage(ctx, cleanURL)
	if err != nil {
		args := []any{"url", cleanURL, "error", err}
		var fetchErr *instagram.FetchError
		if errors.As(err, &fetchErr) && fetchErr.HasResponse() {
			args = append(args, "status", fetchErr.Status)
		}
		i.logger.Error("Instagram page fetch error", args...)
		return nil, err
	}

	page := scrapePage(html)
	metadata := buildMetadata(cleanURL, page)

	i.logger.Debug("Extracted Instagram metadata",
		"url", rawURL,
		"page_title", page.title.value,
		"site_name", page.siteName.value,
		"author", metadata.AuthorName,
		"content_type", metadata.ContentType,
		"tags", len(metadata.Tags),
	)

	if err := i.cache.Set(ctx, rawURL, metadata); err != nil {
		i.logger.Warn("Failed to cache Instagram metadata", "url", rawURL, "error", err)
	}

	return metadata, nil
}
