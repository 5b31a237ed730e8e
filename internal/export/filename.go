package export

import (
	"regexp"
	"strings"
)

// DefaultMaxFilename is the default length cap for sanitized filenames.
const DefaultMaxFilename = 120

var unsafeFilenameRun = regexp.MustCompile(`[^\p{L}\p{N}_\-. ]+`)

// SanitizeFilename derives a safe single path segment from a conversation
// title. Each run of characters outside word characters, hyphen, period and
// space becomes one underscore; the result is capped at maxLen runes and
// stripped. A title that sanitizes to nothing yields "conversation".
func SanitizeFilename(title string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxFilename
	}

	safe := unsafeFilenameRun.ReplaceAllString(title, "_")
	if runes := []rune(safe); len(runes) > maxLen {
		safe = string(runes[:maxLen])
	}
	safe = strings.TrimSpace(safe)

	if safe == "" {
		return "conversation"
	}
	return safe
}
