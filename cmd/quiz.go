package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abhisek/healthskill/internal/auth"
	"github.com/abhisek/healthskill/internal/catalog"
	"github.com/abhisek/healthskill/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Test your healthcare-technology knowledge",
}

var quizTakeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the skill quiz interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFeature(cmd, auth.FeatureQuiz, func(e *env) error {
			u, _ := e.session.User()
			engine := quiz.New(e.catalog.Questions())
			out := cmd.OutOrStdout()

			if err := runQuiz(engine, cmd.InOrStdin(), out); err != nil {
				return err
			}
			r, err := quiz.NewResult(engine, u.ID, time.Now())
			if err != nil {
				return err
			}
			if err := e.history.Save(e.ctx, r); err != nil {
				return err
			}
			printResult(out, e.catalog, r)
			return nil
		})
	},
}

var quizHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List your past quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFeature(cmd, auth.FeatureQuiz, func(e *env) error {
			u, _ := e.session.User()
			results, err := e.history.List(e.ctx, u.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No quizzes yet. Run `healthskill quiz take`.")
				return nil
			}
			for _, r := range results {
				verdict := "not passed"
				if r.Passed() {
					verdict = "passed"
				}
				fmt.Fprintf(out, "%s  %2d/%-2d  %3d%%  %s\n",
					r.CompletedAt.Local().Format("2006-01-02 15:04"), r.Score, r.Total, r.Percent, verdict)
			}
			return nil
		})
	},
}

// errQuizAborted is returned when input ends before the last answer.
var errQuizAborted = errors.New("quiz aborted before the last question")

// runQuiz asks every question on out and reads letter answers from in.
// Invalid input is re-prompted.
func runQuiz(engine *quiz.Engine, in io.Reader, out io.Writer) error {
	if err := engine.Start(); err != nil {
		return err
	}
	sc := bufio.NewScanner(in)

	for {
		q, index, ok := engine.Current()
		if !ok {
			return nil
		}
		fmt.Fprintf(out, "\nQuestion %d of %d\n%s\n", index+1, engine.Total(), q.Question)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'A'+i, opt)
		}

		for {
			fmt.Fprintf(out, "Answer [A-%c]: ", 'A'+len(q.Options)-1)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				return errQuizAborted
			}
			choice, ok := parseChoice(sc.Text(), len(q.Options))
			if !ok {
				fmt.Fprintln(out, "Please enter one of the option letters.")
				continue
			}
			if choice == q.CorrectAnswer {
				fmt.Fprintln(out, "Correct!")
			} else {
				fmt.Fprintf(out, "Not quite. The answer is %c) %s\n", 'A'+q.CorrectAnswer, q.Options[q.CorrectAnswer])
			}
			if err := engine.Answer(choice); err != nil {
				return err
			}
			break
		}
	}
}

// parseChoice maps "a", "B " and similar to an option index.
func parseChoice(s string, n int) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 {
		return 0, false
	}
	i := int(s[0]) - 'A'
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

func printResult(w io.Writer, cat *catalog.Catalog, r quiz.Result) {
	verdict := "Keep practicing"
	if r.Passed() {
		verdict = "Passed"
	}
	fmt.Fprintf(w, "\n%d of %d correct (%d%%). %s.\n\n", r.Score, r.Total, r.Percent, verdict)
	for _, c := range r.Categories {
		fmt.Fprintf(w, "  %-28s %d/%d\n", cat.CategoryInfo(c.Category).Name, c.Correct, c.Total)
	}
	if len(r.Weaknesses) > 0 {
		names := make([]string, 0, len(r.Weaknesses))
		for _, c := range r.Weaknesses {
			names = append(names, cat.CategoryInfo(c).Name)
		}
		fmt.Fprintf(w, "\nReview: %s\n", strings.Join(names, ", "))
	}
}

func init() {
	quizCmd.AddCommand(quizTakeCmd, quizHistoryCmd)
}
