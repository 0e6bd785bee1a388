package bookmarkimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/mindlink/internal/domain"
	apperrors "github.com/orgball2608/mindlink/pkg/errors"
	"github.com/orgball2608/mindlink/pkg/urlutil"
)

func (b *BookmarkImpl) AddLink(ctx context.Context, userID string, input domain.NewLink) (*domain.Link, error) {
	rawURL := strings.TrimSpace(input.URL)
	if rawURL == "" {
		return nil, apperrors.InvalidInput("URL is required")
	}
	if !urlutil.IsValid(rawURL) {
		return nil, apperrors.InvalidInput("URL must be an absolute http or https address")
	}

	l := domain.Link{
		UserID:      userID,
		URL:         rawURL,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    strings.TrimSpace(input.Category),
		Tags:        input.Tags,
		Notes:       input.Notes,
		Source:      input.Source,
		ContentType: domain.LinkContentTypeLink,
	}
	if l.Source == "" {
		l.Source = domain.LinkSourceManual
	}

	if urlutil.IsInstagramMedia(rawURL) {
		b.enrichFromInstagram(ctx, &l)
		if l.Category == "" {
			l.Category = domain.InstagramCategory(l.ContentType)
		}
	}

	if l.Title == "" {
		l.Title = urlutil.Domain(rawURL)
	}
	if l.Category == "" {
		l.Category = domain.DefaultCategory
	}

	created, err := b.linkRepo.Create(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	b.recordActivity(ctx, created, domain.ActivityLinkCreated, "Added a new link")

	return created, nil
}

// enrichFromInstagram fills the fields the user left empty from the post metadata.
// On extractor failure the link is kept unprocessed.
func (b *BookmarkImpl) enrichFromInstagram(ctx context.Context, l *domain.Link) {
	md, err := b.instagram.GetMetadata(ctx, l.URL)
	if err != nil {
		b.logger.Warn("Instagram metadata unavailable, saving link unprocessed", "url", l.URL, "error", err)
		l.ContentType = mediaContentType(l.URL)
		return
	}

	if l.Title == "" {
		l.Title = md.Title
	}
	if l.Description == "" {
		l.Description = md.Description
	}
	if len(l.Tags) == 0 {
		l.Tags = md.Tags
	}
	l.ImageURL = md.ThumbnailURL
	l.ContentType = md.ContentType
	l.IsProcessed = true
}

func mediaContentType(rawURL string) string {
	if strings.Contains(urlutil.Clean(rawURL), "/reel/") {
		return domain.ContentTypeReel
	}
	return domain.ContentTypePost
}

func (b *BookmarkImpl) GetLink(ctx context.Context, userID, id string) (*domain.Link, error) {
	l, err := b.linkRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return l, nil
}

func (b *BookmarkImpl) ListLinks(ctx context.Context, userID string) ([]*domain.Link, error) {
	links, err := b.linkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (b *BookmarkImpl) UpdateLink(ctx context.Context, userID, id string, update domain.LinkUpdate) (*domain.Link, error) {
	existing, err := b.linkRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	if update.IsEmpty() {
		return existing, nil
	}

	if err := b.linkRepo.Update(ctx, userID, id, update); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	updated := update.Apply(*existing)
	updated.UpdatedAt = b.now().UTC()

	for _, message := range updateMessages(update) {
		b.recordActivity(ctx, existing, domain.ActivityLinkUpdated, message)
	}

	return &updated, nil
}

func (b *BookmarkImpl) DeleteLink(ctx context.Context, userID, id string) error {
	existing, err := b.linkRepo.GetByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to get link: %w", err)
	}

	if err := b.linkRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	b.recordActivity(ctx, existing, domain.ActivityLinkDeleted, "Deleted a link")

	return nil
}

func (b *BookmarkImpl) MarkAsRead(ctx context.Context, userID, id string) (*domain.Link, error) {
	existing, err := b.linkRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	read := true
	if err := b.linkRepo.Update(ctx, userID, id, domain.LinkUpdate{IsRead: &read}); err != nil {
		return nil, fmt.Errorf("failed to mark link as read: %w", err)
	}

	existing.IsRead = true
	existing.UpdatedAt = b.now().UTC()

	b.recordActivity(ctx, existing, domain.ActivityLinkRead, "Marked a link as read")

	return existing, nil
}

func (b *BookmarkImpl) Reprocess(ctx context.Context, userID, id string) (*domain.Link, error) {
	existing, err := b.linkRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	if !urlutil.IsInstagramMedia(existing.URL) {
		return nil, apperrors.InvalidInput("Only Instagram posts and reels can be reprocessed")
	}

	md, err := b.instagram.GetMetadata(ctx, existing.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to get instagram metadata: %w", err)
	}

	update := metadataUpdate(md)
	if err := b.linkRepo.Update(ctx, userID, id, update); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	updated := update.Apply(*existing)
	updated.UpdatedAt = b.now().UTC()

	b.recordActivity(ctx, &updated, domain.ActivityLinkReprocessed, "Reprocessed a link")

	return &updated, nil
}

func metadataUpdate(md *domain.Metadata) domain.LinkUpdate {
	tags := append([]string(nil), md.Tags...)
	processed := true
	return domain.LinkUpdate{
		Title:       &md.Title,
		Description: &md.Description,
		Tags:        &tags,
		ImageURL:    &md.ThumbnailURL,
		ContentType: &md.ContentType,
		IsProcessed: &processed,
	}
}
