package domain

// Content types of an Instagram permalink.
const (
	ContentTypeReel = "reel"
	ContentTypePost = "post"
)

// Metadata is the record extracted from an Instagram post or reel page.
type Metadata struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ThumbnailURL string   `json:"thumbnail_url"`
	AuthorName   string   `json:"author_name"`
	AuthorURL    string   `json:"author_url"`
	Type         string   `json:"type"`
	Tags         []string `json:"tags"`
	ContentType  string   `json:"contentType"`
}

// Clone returns a copy that shares no memory with m.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	c := *m
	if m.Tags != nil {
		c.Tags = append(make([]string, 0, len(m.Tags)), m.Tags...)
	}
	return &c
}

// IsReel reports whether the metadata describes a reel.
func (m *Metadata) IsReel() bool {
	return m.ContentType == ContentTypeReel
}
