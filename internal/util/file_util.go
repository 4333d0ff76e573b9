package util

import (
	"path"
	"regexp"
	"strings"
)

func ExtFromFilenameOrMime(filename, mime string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext != "" {
		return ext
	}
	switch strings.ToLower(mime) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/heic":
		return ".heic"
	default:
		return ".jpg"
	}
}

var objectPartRe = regexp.MustCompile(`[^a-z0-9_\-]`)

// SanitizePart turns free text (package titles, trip names) into a safe
// object-name fragment for the media bucket.
func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = objectPartRe.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}
