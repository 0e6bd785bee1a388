package urlutil

import (
	"net/url"
	"regexp"
	"strings"
)

var instagramMediaPattern = regexp.MustCompile(`^https?://(www\.)?instagram\.com/(reel|p)/[A-Za-z0-9_-]+`)

// IsValid reports whether raw is an absolute http or https URL.
func IsValid(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Host returns the hostname of raw, or "" when it does not parse.
func Host(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Domain is Host without a leading "www.".
func Domain(raw string) string {
	return strings.TrimPrefix(Host(raw), "www.")
}

// IsInstagramMedia reports whether raw is an Instagram reel or post permalink.
func IsInstagramMedia(raw string) bool {
	return instagramMediaPattern.MatchString(raw)
}

// Clean drops everything from the first '?' and a single trailing slash.
// It works on the raw string so that malformed URLs are still handled.
func Clean(raw string) string {
	clean, _, _ := strings.Cut(raw, "?")
	return strings.TrimSuffix(clean, "/")
}
