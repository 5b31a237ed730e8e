package export

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	trailingQuotes = regexp.MustCompile(`""+$`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// CleanText canonicalizes raw message text: NFKC unicode form, LF line
// endings, standardized tabs and bullet spacing, no non-breaking spaces, no
// trailing runs of double quotes, and at most one blank line in a row. The
// result carries no leading or trailing whitespace. Order matters: the
// newline cap runs after line-ending canonicalization so CR artifacts count
// toward the run.
func CleanText(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t•", "•")
	s = strings.ReplaceAll(s, "\t", "    ")
	s = strings.ReplaceAll(s, "•\t", "• ")
	s = strings.ReplaceAll(s, "•  ", "• ")
	s = strings.ReplaceAll(s, " ", " ")
	s = trailingQuotes.ReplaceAllString(strings.TrimSpace(s), `"`)
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
