package domain

import "time"

const (
	ActivityLinkCreated = "link_created"
	ActivityLinkUpdated = "link_updated"
	ActivityLinkDeleted = "link_deleted"
	ActivityLinkRead    = "link_read"

	ActivityLinkReprocessed = "link_reprocessed"
)

type Activity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	LinkID    string    `json:"linkId"`
	LinkTitle string    `json:"linkTitle"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"timestamp"`
}
