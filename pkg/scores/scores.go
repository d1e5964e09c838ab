package scores

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Record is one player's running trivia results. Winnings go negative
// when wrong guesses deduct a question's value. Attempts must be
// positive before Format is called.
type Record struct {
	Winnings float64
	Correct  int
	Attempts int
}

// Format renders the record as a scoreboard suffix, e.g.
// "(-$13 | 3 for 5 | -$3 per guess)". Winnings and the per-guess
// average are rounded up to the nearest whole dollar.
func (r Record) Format() string {
	sign := ""
	if r.Winnings < 0 {
		sign = "-"
	}
	winnings := int(math.Ceil(math.Abs(r.Winnings)))
	perGuess := int(math.Ceil(math.Abs(r.Winnings) / float64(r.Attempts)))
	return fmt.Sprintf("(%s$%d | %d for %d | %s$%d per guess)", sign, winnings, r.Correct, r.Attempts, sign, perGuess)
}

func NewBoard() *Board {
	return &Board{Records: make(map[string]*Record)}
}

// Board tracks a Record per player for the current session.
type Board struct {
	Records map[string]*Record
}

// Add applies one attempt's outcome: correct guesses win the question's
// value, wrong guesses lose it.
func (b *Board) Add(userName string, value float64, correct bool) {
	record, exists := b.Records[userName]
	if !exists {
		record = &Record{}
		b.Records[userName] = record
	}
	record.Attempts++
	if correct {
		record.Winnings += value
		record.Correct++
	} else {
		record.Winnings -= value
	}
}

func (b *Board) Render() string {
	var recordSlice []struct {
		record   *Record
		userName string
	}
	for userName, record := range b.Records {
		recordSlice = append(recordSlice, struct {
			record   *Record
			userName string
		}{record: record, userName: userName})
	}

	slices.SortFunc(recordSlice, func(a, b struct {
		record   *Record
		userName string
	}) int {
		if a.record.Winnings < b.record.Winnings {
			return 1
		}
		return -1
	})

	sb := &strings.Builder{}
	for k, v := range recordSlice {
		fmt.Fprintf(sb, "%d. %s: %s\n", k+1, v.userName, v.record.Format())
	}
	return sb.String()
}
