package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vytor/chronoquest/internal/errors"
	"github.com/vytor/chronoquest/internal/models"
	"github.com/vytor/chronoquest/internal/services"
	"github.com/vytor/chronoquest/internal/share"
)

func playCmd(flags *globalFlags, opts Options) *cobra.Command {
	var (
		date   string
		noCopy bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play today's puzzle in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), flags, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			view, err := s.applyDate(cmd.Context(), date)
			if err != nil {
				return err
			}

			target := opts.Clipboard
			if noCopy {
				target = nil
			}
			return play(cmd.Context(), s.svc, view, target, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "play as if today were this day (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "print the share text without copying it to the clipboard")
	return cmd
}

// play runs the guess loop until the session ends or in is exhausted. A nil
// target skips the clipboard copy.
func play(ctx context.Context, svc services.GameService, view services.GameView, target share.Target, in io.Reader, out io.Writer) error {
	printHeader(out, view)

	scanner := bufio.NewScanner(in)
	for !view.Session.Status.Terminal() {
		fmt.Fprintf(out, "Guess %d/%d: ", len(view.Session.Guesses)+1, models.MaxGuesses)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		res, err := svc.SubmitGuess(ctx, scanner.Text())
		if err != nil {
			if appErr, ok := errors.As(err); ok && appErr.Code == errors.ErrCodeValidation {
				fmt.Fprintln(out, appErr.Message)
				continue
			}
			return err
		}
		fmt.Fprintln(out, describe(res.Feedback))
		view = res.View
	}

	printResult(out, view)
	return shareResult(ctx, svc, target, out)
}

func printHeader(out io.Writer, view services.GameView) {
	p := view.Session.Puzzle
	fmt.Fprintf(out, "ChronoQuest - %s\n", view.Date.Format("Monday, January 2, 2006"))
	if view.Fallback {
		fmt.Fprintf(out, "(no puzzle for %s, playing the %s puzzle)\n", view.DateKey, p.DateKey)
	}
	fmt.Fprintf(out, "Category: %s\n", p.Category)
	fmt.Fprintf(out, "Clue: %s\n", p.Clue)
	fmt.Fprintf(out, "Streak: %d\n\n", view.Streak.Count)
}

func describe(f models.Feedback) string {
	if f.Exact {
		return fmt.Sprintf("%d  Correct!", f.Guess)
	}
	dir := "Too Late"
	if f.Direction == models.DirectionTooEarly {
		dir = "Too Early"
	}
	return fmt.Sprintf("%d  %s (%s)", f.Guess, dir, f.Tier)
}

func printResult(out io.Writer, view services.GameView) {
	p := view.Session.Puzzle
	fmt.Fprintln(out)
	if view.Session.Status == models.StatusWon {
		fmt.Fprintf(out, "You got it in %d! The year was %d.\n", len(view.Session.Guesses), p.TargetYear)
	} else {
		fmt.Fprintf(out, "Out of guesses. The year was %d.\n", p.TargetYear)
	}
	fmt.Fprintf(out, "Streak: %d\n", view.Streak.Count)
	if p.FunFact != "" {
		fmt.Fprintf(out, "\nDid you know? %s\n", p.FunFact)
	}
	if p.ArticleTitle != "" {
		fmt.Fprintf(out, "\n%s\n%s\n%s\n", p.ArticleTitle, strings.Repeat("-", len(p.ArticleTitle)), p.ArticleContent)
	}
	fmt.Fprintln(out)
}

func shareResult(ctx context.Context, svc services.GameService, target share.Target, out io.Writer) error {
	if target == nil {
		text, err := svc.Result(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
		return nil
	}

	res, err := svc.Share(ctx, target)
	fmt.Fprintln(out, res.Text)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeShareFailed) {
			fmt.Fprintf(out, "\nCould not copy to clipboard: %v\n", unwrap(err))
			return nil
		}
		return err
	}
	fmt.Fprintln(out, "\nCopied to clipboard.")
	return nil
}

func unwrap(err error) error {
	if appErr, ok := errors.As(err); ok && appErr.Err != nil {
		return appErr.Err
	}
	return err
}
