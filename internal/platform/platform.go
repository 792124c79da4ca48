package platform

import (
	"regexp"
	"strings"
)

// Platform identifies the origin a video link points at.
type Platform string

const (
	Instagram Platform = "instagram"
	TikTok    Platform = "tiktok"
	YouTube   Platform = "youtube"
	Unknown   Platform = "unknown"
)

var (
	linkRe      = regexp.MustCompile(`https?://\S+`)
	shortcodeRe = regexp.MustCompile(`/(?:reel|reels|p|share)/([A-Za-z0-9_-]{5,})`)
)

// Detect classifies a URL by its shape.
func Detect(url string) Platform {
	u := strings.ToLower(url)
	switch {
	case strings.Contains(u, "instagram.com"):
		return Instagram
	case strings.Contains(u, "tiktok.com"):
		return TikTok
	case strings.Contains(u, "youtube.com"), strings.Contains(u, "youtu.be"):
		return YouTube
	default:
		return Unknown
	}
}

// Recognized reports whether text contains a link to a supported origin
// and returns the link itself.
func Recognized(text string) (string, bool) {
	url := linkRe.FindString(text)
	if url == "" {
		return "", false
	}
	if Detect(url) == Unknown {
		return "", false
	}
	return url, true
}

// InstagramShortcode extracts the post identifier from reel/p/share links.
// Returns "" when the URL carries no extractable identifier.
func InstagramShortcode(url string) string {
	m := shortcodeRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
