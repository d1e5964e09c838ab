package trivia

import (
	"fmt"
	"strings"
)

// NumHintLevels is the number of masking levels produced per answer.
const NumHintLevels = 5

const (
	hintBlank         = "_"
	hintWordSeparator = "  "
)

// GenerateHints renders the answer as five increasingly revealing hint
// strings: level 1 blanks every character, level 2 keeps first letters,
// level 3 keeps first and last letters, level 4 keeps vowels and level 5
// keeps consonants. Each word is letter-spaced with a trailing count of
// hidden characters, e.g. "C _ T (1)", and words are joined with a
// double space. The returned slice always has length NumHintLevels; an
// empty answer yields five empty hints.
func GenerateHints(rawAnswer string) []string {
	words := splitHintWords(rawAnswer)
	masks := []func(string) []string{
		maskAll,
		maskKeepFirst,
		maskKeepEnds,
		maskKeepVowels,
		maskKeepConsonants,
	}

	hints := make([]string, NumHintLevels)
	for level, mask := range masks {
		parts := make([]string, 0, len(words))
		for _, word := range words {
			parts = append(parts, formatHintWord(mask(strings.ToUpper(word))))
		}
		hints[level] = strings.Join(parts, hintWordSeparator)
	}
	return hints
}

// splitHintWords tokenizes a raw answer into display words: whitespace
// trimmed, space runs collapsed, formatting stripped. Unlike Scrub it
// keeps articles and word boundaries so hints mirror the answer's shape.
func splitHintWords(rawAnswer string) []string {
	text := strings.TrimSpace(rawAnswer)
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, " \n", "\n")
	text = italicTagPattern.ReplaceAllString(text, "")
	text = parentheticalPattern.ReplaceAllString(text, "")
	text = hintFormattingPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\n", " ")
	if text == "" {
		return nil
	}
	return strings.Split(text, " ")
}

func maskAll(word string) []string {
	masked := make([]string, 0, len(word))
	for range word {
		masked = append(masked, hintBlank)
	}
	return masked
}

func maskKeepFirst(word string) []string {
	masked := make([]string, 0, len(word))
	for i, c := range word {
		if i == 0 {
			masked = append(masked, string(c))
		} else {
			masked = append(masked, hintBlank)
		}
	}
	return masked
}

func maskKeepEnds(word string) []string {
	masked := make([]string, 0, len(word))
	for i, c := range word {
		if i == 0 || i == len(word)-1 {
			masked = append(masked, string(c))
		} else {
			masked = append(masked, hintBlank)
		}
	}
	return masked
}

func maskKeepVowels(word string) []string {
	masked := make([]string, 0, len(word))
	for _, c := range word {
		if isVowel(c) {
			masked = append(masked, string(c))
		} else {
			masked = append(masked, hintBlank)
		}
	}
	return masked
}

func maskKeepConsonants(word string) []string {
	masked := make([]string, 0, len(word))
	for _, c := range word {
		if isVowel(c) {
			masked = append(masked, hintBlank)
		} else {
			masked = append(masked, string(c))
		}
	}
	return masked
}

func isVowel(c rune) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// formatHintWord spaces out the masked characters and appends how many
// of them are hidden, e.g. ["C","_","T"] -> "C _ T (1)". Words with
// nothing hidden get no suffix and an empty word formats to "".
func formatHintWord(masked []string) string {
	if len(masked) == 0 {
		return ""
	}
	hidden := 0
	for _, c := range masked {
		if c == hintBlank {
			hidden++
		}
	}
	out := strings.Join(masked, " ")
	if hidden > 0 {
		out = fmt.Sprintf("%s (%d)", out, hidden)
	}
	return out
}
