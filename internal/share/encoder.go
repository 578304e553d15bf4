// Package share renders finished games as spoiler-free text and delivers
// it to a share target.
package share

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vytor/chronoquest/internal/game"
	"github.com/vytor/chronoquest/internal/models"
)

const (
	ProductName = "ChronoQuest"
	Trailer     = "Play at: www.chrono-quest.com"
)

const (
	SymbolExact    = "🟩"
	SymbolClose    = "🟨"
	SymbolTooLow   = "⬆️"
	SymbolTooHigh  = "⬇️"
	lostScoreValue = "X"
)

var ErrSessionInProgress = errors.New("share: session is still in progress")

// Rule maps a guess to a symbol when Match holds.
type Rule struct {
	Symbol string
	Match  func(guess, target int) bool
}

// Rules is checked in order and the first match wins. Close is checked
// before the direction split, so a near miss never renders as an arrow.
var Rules = []Rule{
	{SymbolExact, func(g, t int) bool { return game.Distance(g, t) == 0 }},
	{SymbolClose, func(g, t int) bool { return game.Distance(g, t) <= game.CloseDistance }},
	{SymbolTooLow, func(g, t int) bool { return g < t }},
	{SymbolTooHigh, func(int, int) bool { return true }},
}

// Symbol returns the share symbol for one guess.
func Symbol(guess, target int) string {
	for _, r := range Rules {
		if r.Match(guess, target) {
			return r.Symbol
		}
	}
	return SymbolTooHigh
}

// Score renders "n/6" for a win and "X/6" for a loss.
func Score(session models.GameSession) string {
	n := lostScoreValue
	if session.Status == models.StatusWon {
		n = fmt.Sprint(len(session.Guesses))
	}
	return fmt.Sprintf("%s/%d", n, models.MaxGuesses)
}

// Header names the product and the day, e.g. "ChronoQuest (Oct 24)".
func Header(ref time.Time) string {
	return fmt.Sprintf("%s (%s)", ProductName, ref.Format("Jan 2"))
}

// Encode builds the share text for a finished session. ref is the day the
// puzzle was played for.
func Encode(session models.GameSession, ref time.Time) (string, error) {
	if !session.Status.Terminal() {
		return "", ErrSessionInProgress
	}

	var sb strings.Builder
	sb.WriteString(Header(ref))
	sb.WriteByte('\n')
	sb.WriteString(Score(session))
	sb.WriteString("\n\n")
	for _, g := range session.Guesses {
		sb.WriteString(Symbol(g, session.Puzzle.TargetYear))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(Trailer)
	return sb.String(), nil
}
