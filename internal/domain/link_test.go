package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/orgball2608/mindlink/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkUpdate_Apply(t *testing.T) {
	t.Parallel()

	title := "New"
	tags := []string{"a", "b"}
	pinned := true

	base := domain.Link{ID: "1", Title: "Old", Description: "keep", Tags: []string{"x"}}
	got := domain.LinkUpdate{Title: &title, Tags: &tags, IsPinned: &pinned}.Apply(base)

	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "keep", got.Description)
	assert.Equal(t, []string{"a", "b"}, got.Tags)
	assert.True(t, got.IsPinned)
	assert.Equal(t, "Old", base.Title, "base link is left untouched")
}

func TestLinkUpdate_IsEmpty(t *testing.T) {
	t.Parallel()

	read := false
	processed := true
	assert.True(t, domain.LinkUpdate{}.IsEmpty())
	assert.False(t, domain.LinkUpdate{IsRead: &read}.IsEmpty())
	assert.False(t, domain.LinkUpdate{IsProcessed: &processed}.IsEmpty())
}

func TestLinkUpdate_ApplyProcessedFields(t *testing.T) {
	t.Parallel()

	image := "https://cdn.example.com/a.jpg"
	contentType := domain.ContentTypeReel
	processed := true

	got := domain.LinkUpdate{ImageURL: &image, ContentType: &contentType, IsProcessed: &processed}.
		Apply(domain.Link{ContentType: domain.ContentTypePost})

	assert.Equal(t, image, got.ImageURL)
	assert.Equal(t, domain.ContentTypeReel, got.ContentType)
	assert.True(t, got.IsProcessed)
}

func TestLinkUpdate_ProcessedFieldsNotBound(t *testing.T) {
	t.Parallel()

	var u domain.LinkUpdate
	body := `{"title":"t","imageUrl":"x","contentType":"reel","isProcessed":true,"ImageURL":"x","ContentType":"reel","IsProcessed":true}`
	require.NoError(t, json.Unmarshal([]byte(body), &u))

	require.NotNil(t, u.Title)
	assert.Nil(t, u.ImageURL)
	assert.Nil(t, u.ContentType)
	assert.Nil(t, u.IsProcessed)
}

func TestMetadata_Clone(t *testing.T) {
	t.Parallel()

	md := &domain.Metadata{Title: "Post by @a", Tags: []string{"Instagram", "post", "@a"}, ContentType: domain.ContentTypePost}
	c := md.Clone()
	c.Tags[0] = "changed"

	assert.Equal(t, "Instagram", md.Tags[0])
	assert.False(t, c.IsReel())
	assert.Nil(t, (*domain.Metadata)(nil).Clone())
}
