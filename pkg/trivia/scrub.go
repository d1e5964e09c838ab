package trivia

import (
	"strings"

	"golang.org/x/text/transform"
)

// Scrub reduces an answer or guess to its canonical comparison form:
// accents folded, italic tags, parentheticals and trailing "or ..."
// clauses dropped, the articles a/an/and/the removed as whole words,
// every remaining non-alphanumeric character stripped and the result
// upper-cased. The output contains only [A-Z0-9] and re-scrubbing it
// yields the same string.
func Scrub(text string) string {
	if folded, _, err := transform.String(foldAccents, text); err == nil {
		text = folded
	}
	text = italicTagPattern.ReplaceAllString(text, " ")
	text = parentheticalPattern.ReplaceAllString(text, " ")
	text = trailingOrPattern.ReplaceAllString(text, " ")
	text = articlePattern.ReplaceAllString(text, " ")
	text = nonAlphanumPattern.ReplaceAllString(text, "")
	return strings.ToUpper(text)
}

// ParseAlternate recovers a secondary accepted answer embedded in the raw
// answer text, either parenthetically ("Mount Everest (or Sagarmatha)")
// or after an "or"/slash ("cat/kitten"). The parenthetical form takes
// precedence. The captured text is scrubbed; the result is empty when no
// alternate exists.
func ParseAlternate(rawAnswer string) string {
	if m := parenAlternatePattern.FindStringSubmatch(rawAnswer); m != nil {
		return Scrub(m[1])
	}
	if m := orAlternatePattern.FindStringSubmatch(rawAnswer); m != nil {
		return Scrub(m[1])
	}
	return ""
}
