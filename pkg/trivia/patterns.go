package trivia

import (
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Compiled once at startup and shared read-only by every call.
var (
	italicTagPattern     = regexp.MustCompile(`(?i)</?i>`)
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
	trailingOrPattern    = regexp.MustCompile(`(?i)\s+or\s+.*$`)
	articlePattern       = regexp.MustCompile(`(?i)\b(?:and|an|a|the)\b`)
	nonAlphanumPattern   = regexp.MustCompile(`[^a-zA-Z0-9]`)

	// Alternate answers: "(or X)" wins over "... or X" / "X/Y".
	parenAlternatePattern = regexp.MustCompile(`(?i)\(\s*(?:or\s+)*([^)]+)\)`)
	orAlternatePattern    = regexp.MustCompile(`(?i)(?:[^a-z]or\s+|/\s*)(.+)$`)

	vowelPattern     = regexp.MustCompile(`[AEIOU]`)
	consonantPattern = regexp.MustCompile(`[^AEIOU]`)

	spaceRunPattern       = regexp.MustCompile(` {2,}`)
	hintFormattingPattern = regexp.MustCompile(`[^a-zA-Z0-9 \n]`)
)

// foldAccents maps accented characters to their plain ASCII equivalents,
// e.g. Björk -> Bjork.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
