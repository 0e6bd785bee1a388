package bookmarkimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/mindlink/internal/bookmark"
	"github.com/orgball2608/mindlink/internal/domain"
)

const detailsUpdatedMessage = "Updated link details"

func (b *BookmarkImpl) RecentActivities(ctx context.Context, userID string) ([]*domain.Activity, error) {
	since := b.now().AddDate(0, -bookmark.RecentActivityMonths, 0)

	activities, err := b.activityRepo.ListRecentByUser(ctx, userID, since, bookmark.RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// recordActivity never fails the caller; the link change already happened.
func (b *BookmarkImpl) recordActivity(ctx context.Context, l *domain.Link, activityType, message string) {
	err := b.activityRepo.Create(ctx, domain.Activity{
		UserID:    l.UserID,
		Type:      activityType,
		LinkID:    l.ID,
		LinkTitle: l.Title,
		Message:   message,
		CreatedAt: b.now().UTC(),
	})
	if err != nil {
		b.logger.Error("Error recording activity", "type", activityType, "link_id", l.ID, "error", err)
	}
}

// updateMessages returns one message per provided field, in field order.
// Notes changes are not logged.
func updateMessages(u domain.LinkUpdate) []string {
	var messages []string

	if u.Title != nil {
		messages = append(messages, detailsUpdatedMessage)
	}
	if u.Description != nil {
		messages = append(messages, detailsUpdatedMessage)
	}
	if u.Category != nil {
		messages = append(messages, detailsUpdatedMessage)
	}
	if u.Tags != nil {
		messages = append(messages, detailsUpdatedMessage)
	}
	if u.IsPinned != nil {
		if *u.IsPinned {
			messages = append(messages, "Pinned a link")
		} else {
			messages = append(messages, "Unpinned a link")
		}
	}
	if u.IsRead != nil {
		if *u.IsRead {
			messages = append(messages, "Marked a link as read")
		} else {
			messages = append(messages, "Marked a link as unread")
		}
	}

	return messages
}
