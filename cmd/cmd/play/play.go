package play

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ninjada/hip-trivia/pkg/flag"
	"github.com/ninjada/hip-trivia/pkg/jservice"
	"github.com/ninjada/hip-trivia/pkg/scores"
	"github.com/ninjada/hip-trivia/pkg/trivia"
	"github.com/spf13/cobra"
)

func NewPlayCommand(logger *slog.Logger) *cobra.Command {

	var triviaURL string
	var vowelThreshold float64
	var numQuestions int64
	var playerName string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "play a round of trivia in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {

			if vowelThreshold <= 0 || vowelThreshold > 1 {
				return fmt.Errorf("vowel-threshold is required and must be in (0, 1]")
			}

			client := jservice.NewClient(logger, triviaURL, 10*time.Second)

			logger.Info("Fetching questions...")
			clues, err := client.Random(cmd.Context(), int(numQuestions))
			if err != nil {
				return fmt.Errorf("failed to fetch questions: %w", err)
			}

			board := scores.NewBoard()
			reader := bufio.NewScanner(os.Stdin)
			for _, clue := range clues {
				playClue(reader, board, playerName, clue, vowelThreshold)
			}

			fmt.Println("\nFinal scores:")
			fmt.Print(board.Render())
			return nil
		},
	}

	flag.StringVarEnv(cmd.Flags(), &triviaURL, "", "trivia-url", "https://jservice.io", "base URL of the trivia question provider")
	flag.Float64VarEnv(cmd.Flags(), &vowelThreshold, "", "vowel-threshold", 0, "vowel-density gate for the consonant matcher (required)")
	flag.Int64VarEnv(cmd.Flags(), &numQuestions, "", "questions", 5, "number of questions per round")
	flag.StringVarEnv(cmd.Flags(), &playerName, "", "player", "player", "name to record scores under")

	return cmd
}

func playClue(reader *bufio.Scanner, board *scores.Board, playerName string, clue jservice.Clue, vowelThreshold float64) {
	value := clue.Value
	if value == 0 {
		value = 100
	}

	fmt.Printf("\n[%s for $%d] %s\n", clue.Category.Title, value, clue.Question)

	hints := trivia.GenerateHints(clue.Answer)
	for attempt := 0; attempt < trivia.NumHintLevels; attempt++ {
		fmt.Printf("hint: %s\n> ", hints[attempt])
		if !reader.Scan() {
			return
		}
		guess := strings.TrimSpace(reader.Text())
		if guess == "" || strings.EqualFold(guess, "skip") {
			break
		}
		if trivia.CheckGuess(guess, clue.Answer, vowelThreshold) {
			fmt.Println("correct!")
			board.Add(playerName, float64(value), true)
			return
		}
		fmt.Println("nope.")
	}

	fmt.Printf("the answer was: %s\n", clue.Answer)
	board.Add(playerName, float64(value), false)
}
