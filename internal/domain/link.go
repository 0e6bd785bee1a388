package domain

import "time"

const (
	LinkContentTypeLink = "link"

	LinkSourceManual = "manual"
	LinkSourceImport = "import"

	DefaultCategory       = "Uncategorized"
	InstagramReelCategory = "Instagram Reel"
	InstagramPostCategory = "Instagram Post"
)

// InstagramCategory is the default category for an Instagram link of the given content type.
func InstagramCategory(contentType string) string {
	if contentType == ContentTypeReel {
		return InstagramReelCategory
	}
	return InstagramPostCategory
}

type Link struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Notes       string    `json:"notes,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	ContentType string    `json:"contentType"`
	Source      string    `json:"source"`
	IsProcessed bool      `json:"isProcessed"`
	IsPinned    bool      `json:"isPinned"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewLink is what a user submits when saving a URL.
type NewLink struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
	Source      string   `json:"source"`
}

// LinkUpdate is a partial update; nil fields are left untouched.
type LinkUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	Notes       *string   `json:"notes"`
	IsPinned    *bool     `json:"isPinned"`
	IsRead      *bool     `json:"isRead"`

	// Set only by reprocessing, never from a request body.
	ImageURL    *string `json:"-"`
	ContentType *string `json:"-"`
	IsProcessed *bool   `json:"-"`
}

// IsEmpty reports whether the update changes nothing.
func (u LinkUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.Tags == nil && u.Notes == nil && u.IsPinned == nil && u.IsRead == nil &&
		u.ImageURL == nil && u.ContentType == nil && u.IsProcessed == nil
}

// Apply returns a copy of l with the non-nil fields of u set.
func (u LinkUpdate) Apply(l Link) Link {
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Category != nil {
		l.Category = *u.Category
	}
	if u.Tags != nil {
		l.Tags = *u.Tags
	}
	if u.Notes != nil {
		l.Notes = *u.Notes
	}
	if u.IsPinned != nil {
		l.IsPinned = *u.IsPinned
	}
	if u.IsRead != nil {
		l.IsRead = *u.IsRead
	}
	if u.ImageURL != nil {
		l.ImageURL = *u.ImageURL
	}
	if u.ContentType != nil {
		l.ContentType = *u.ContentType
	}
	if u.IsProcessed != nil {
		l.IsProcessed = *u.IsProcessed
	}
	return l
}
