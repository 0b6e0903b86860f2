package incident

import (
	"regexp"
	"strings"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9\s]`)
	digitToken = regexp.MustCompile(`\b\w*\d+\w*\b`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes free text: lowercase, punctuation replaced by
// spaces, any token containing a digit removed entirely (pure numbers and
// mixed codes like "D245" alike), whitespace collapsed and trimmed.
//
//	Normalize("D245 issue")          == "issue"
//	Normalize("Invoice-Error_123")   == "invoice error"
//
// Empty input passes through unchanged.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	t := strings.ToLower(text)
	t = nonAlnum.ReplaceAllString(t, " ")
	t = digitToken.ReplaceAllString(t, "")
	t = multiSpace.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
