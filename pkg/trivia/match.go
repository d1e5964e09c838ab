package trivia

import (
	"slices"
	"strings"
)

// MatchBySorting reports whether guess and answer contain exactly the
// same characters in any order, which catches transposition typos like
// "grate wall" for "great wall". Both inputs must already be scrubbed.
// Empty strings and length mismatches never match.
func MatchBySorting(guess string, answer string) bool {
	if guess == "" || len(guess) != len(answer) {
		return false
	}
	g := []byte(guess)
	a := []byte(answer)
	slices.Sort(g)
	slices.Sort(a)
	return string(g) == string(a)
}

// MatchByConsonants reports whether guess and answer are identical once
// their vowels are removed, tolerating vowel-only misspellings like
// "bjorek" for "bjork". The heuristic only applies when the answer's
// vowel ratio is strictly below threshold; vowel-heavy answers lose too
// much signal when collapsed to consonants. Both inputs must already be
// scrubbed.
func MatchByConsonants(guess string, answer string, threshold float64) bool {
	if answer == "" {
		return false
	}
	vowels := vowelPattern.FindAllString(answer, -1)
	if float64(len(vowels))/float64(len(answer)) >= threshold {
		return false
	}
	guessSkeleton := consonantPattern.FindAllString(guess, -1)
	answerSkeleton := consonantPattern.FindAllString(answer, -1)
	if len(guessSkeleton) == 0 || len(answerSkeleton) == 0 {
		return false
	}
	return strings.Join(guessSkeleton, "") == strings.Join(answerSkeleton, "")
}
