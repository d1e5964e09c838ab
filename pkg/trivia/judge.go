package trivia

// CheckGuess is the full correctness decision for a raw guess against a
// raw answer: exact canonical equality first, then the sorted-character
// and consonant-skeleton heuristics, tried against both the primary
// answer and any embedded alternate. Either answer passing any test
// counts the guess as correct. vowelThreshold gates MatchByConsonants
// and must be supplied by the caller.
func CheckGuess(rawGuess string, rawAnswer string, vowelThreshold float64) bool {
	guess := Scrub(rawGuess)
	if guess == "" {
		return false
	}
	answers := []string{Scrub(rawAnswer)}
	if alternate := ParseAlternate(rawAnswer); alternate != "" {
		answers = append(answers, alternate)
	}
	for _, answer := range answers {
		if answer == "" {
			continue
		}
		if guess == answer || MatchBySorting(guess, answer) || MatchByConsonants(guess, answer, vowelThreshold) {
			return true
		}
	}
	return false
}
