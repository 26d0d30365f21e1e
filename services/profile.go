package services

import (
	"regexp"
	"strings"
)

// The profile text produced by the AI arrives as loose markdown. Pages show
// it as plain text, so the markup is stripped rather than rendered.
var (
	boldMarkers    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicMarkers  = regexp.MustCompile(`__(.+?)__`)
	headingMarkers = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	bulletMarkers  = regexp.MustCompile(`(?m)^\s*[*-]\s+`)
	excessBlanks   = regexp.MustCompile(`\n{3,}`)
)

// CleanProfileText normalizes an AI-generated Ideal Customer Profile for
// display: emphasis markers are dropped, headings become plain lines,
// bullets are unified to "•" and runs of blank lines are collapsed.
func CleanProfileText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = boldMarkers.ReplaceAllString(text, "$1")
	text = italicMarkers.ReplaceAllString(text, "$1")
	text = headingMarkers.ReplaceAllString(text, "")
	text = bulletMarkers.ReplaceAllString(text, "• ")
	text = excessBlanks.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
