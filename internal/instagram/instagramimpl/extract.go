package instagramimpl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/orgball2608/mindlink/internal/domain"
)

const (
	defaultUsername = "instagram"
	metadataType    = "video"
)

var (
	titlePattern       = regexp.MustCompile(`<title>(.*?)</title>`)
	descriptionPattern = regexp.MustCompile(`<meta property="og:description" content="(.*?)"`)
	imagePattern       = regexp.MustCompile(`<meta property="og:image" content="(.*?)"`)
	siteNamePattern    = regexp.MustCompile(`<meta property="og:site_name" content="(.*?)"`)

	urlUsernamePattern     = regexp.MustCompile(`instagram\.com/([^/]+)`)
	captionAuthorPattern   = regexp.MustCompile(` - ([^:]+):`)
	usernameInvalidPattern = regexp.MustCompile(`[^a-zA-Z0-9._]`)

	likesPrefixPattern = regexp.MustCompile(`^\d+,\d+ likes, \d+ comments - [^:]+: `)
	quotedPattern      = regexp.MustCompile(`^"(.*)"\.?$`)
	postedOnPattern    = regexp.MustCompile(`on [A-Za-z]+ \d{1,2}, \d{4}`)
	hashtagPattern     = regexp.MustCompile(`#[a-zA-Z0-9_]+`)
)

// match is the first capture of one regex pass; ok is false when it did not match.
type match struct {
	value string
	ok    bool
}

func firstMatch(re *regexp.Regexp, s string) match {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return match{}
	}
	return match{value: m[1], ok: true}
}

// pageMeta holds the raw fields scraped from the page.
type pageMeta struct {
	title       match
	description match
	image       match
	siteName    match
}

func scrapePage(html string) pageMeta {
	return pageMeta{
		title:       firstMatch(titlePattern, html),
		description: firstMatch(descriptionPattern, html),
		image:       firstMatch(imagePattern, html),
		siteName:    firstMatch(siteNamePattern, html),
	}
}

// deriveUsername prefers the first path segment of the URL, then the
// " - name:" caption prefix, then the literal "instagram".
func deriveUsername(cleanURL string, description match) string {
	username := defaultUsername

	if m := urlUsernamePattern.FindStringSubmatch(cleanURL); m != nil && m[1] != "" {
		username = m[1]
	}

	if username == defaultUsername && description.ok {
		if m := captionAuthorPattern.FindStringSubmatch(description.value); m != nil {
			username = strings.TrimSpace(m[1])
		}
	}

	return sanitizeUsername(username)
}

func sanitizeUsername(username string) string {
	return strings.ToLower(usernameInvalidPattern.ReplaceAllString(username, ""))
}

// cleanCaption turns an og:description into the bare caption text.
// Every step runs once, in order; a step that does not match is a no-op.
func cleanCaption(description string) string {
	caption := likesPrefixPattern.ReplaceAllString(description, "")
	caption = quotedPattern.ReplaceAllString(caption, "${1}")
	caption = strings.ReplaceAll(caption, "&quot;", `"`)
	caption = replaceFirst(postedOnPattern, caption, "")
	return strings.TrimSpace(caption)
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

func extractHashtags(caption string) []string {
	return hashtagPattern.FindAllString(caption, -1)
}

func contentTypeOf(cleanURL string) string {
	if strings.Contains(cleanURL, "/reel/") {
		return domain.ContentTypeReel
	}
	return domain.ContentTypePost
}

func buildMetadata(cleanURL string, page pageMeta) *domain.Metadata {
	username := deriveUsername(cleanURL, page.description)

	var caption string
	if page.description.ok {
		caption = cleanCaption(page.description.value)
	}

	contentType := contentTypeOf(cleanURL)
	label := "Post"
	if contentType == domain.ContentTypeReel {
		label = "Reel"
	}

	description := caption
	if description == "" {
		description = "Instagram " + label
	}

	tags := []string{"Instagram", contentType, "@" + username}
	tags = append(tags, extractHashtags(caption)...)

	return &domain.Metadata{
		Title:        fmt.Sprintf("%s by @%s", label, username),
		Description:  description,
		ThumbnailURL: page.image.value,
		AuthorName:   username,
		AuthorURL:    fmt.Sprintf("https://www.instagram.com/%s/", username),
		Type:         metadataType,
		Tags:         tags,
		ContentType:  contentType,
	}
}
