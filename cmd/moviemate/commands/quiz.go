// ABOUTME: Quiz command running rounds of movie and TV trivia in the terminal
// ABOUTME: Grades typed answers, records them to the journal, and keeps score
package commands

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moviemate/moviemate/internal/extract"
	"github.com/moviemate/moviemate/internal/journal"
	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
	"github.com/moviemate/moviemate/internal/quiz"
)

// NewQuizCmd creates the trivia quiz command
func NewQuizCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Play a round of movie and TV trivia",
		Long: `Play trivia drawn from the question banks. Answers are graded with some
tolerance for typos, and every graded answer lands in the quiz journal.

Answer 'yes' when asked for another question to keep playing; anything
else ends the session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			bank := quiz.LoadBank(cfg.Quiz.BankDir)
			if category != "" {
				cat, err := parseCategory(category)
				if err != nil {
					return err
				}
				bank = quiz.NewBank(map[models.Category][]models.TriviaQuestion{cat: bank.Questions(cat)})
			}
			if bank.Size() == 0 {
				return fmt.Errorf("no trivia questions are loaded from %s", cfg.Quiz.BankDir)
			}

			engine := quiz.NewEngine(bank, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
			jrnl := journal.New(cfg.Quiz.JournalPath)

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			rounds, correctCount := 0, 0

			for {
				q, ok := engine.Pick()
				if !ok {
					break
				}
				fmt.Fprintln(out, engine.Present(q))

				answer, ok := readLine(scanner, out)
				if !ok {
					break
				}

				correct := quiz.Grade(q, answer)
				rounds++
				if correct {
					correctCount++
				}
				if err := jrnl.Record(q, answer, correct); err != nil {
					logging.Warn().Err(err).Msg("recording quiz answer failed")
				}
				fmt.Fprintln(out, quiz.ResultMessage(q, correct))

				reply, ok := readLine(scanner, out)
				if !ok || !extract.Extract(reply).Yes {
					break
				}
			}

			if rounds > 0 {
				fmt.Fprintf(out, "You got %d of %d right this session. Thanks for playing!\n", correctCount, rounds)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Limit questions to one category: english_movies, english_tv, arabic_movies, or arabic_tv")

	return cmd
}

// readLine prompts and reads one non-blank line. ok is false at end of input.
func readLine(scanner *bufio.Scanner, out io.Writer) (string, bool) {
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return "", false
		}
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
}

func parseCategory(s string) (models.Category, error) {
	folded := strings.ToLower(strings.TrimSpace(s))
	for _, cat := range models.Categories() {
		if string(cat) == folded {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: english_movies, english_tv, arabic_movies, arabic_tv)", s)
}
