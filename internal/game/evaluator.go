// Package game holds the guess evaluation state machine. Everything here is
// pure: sessions go in, new sessions come out.
package game

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/vytor/chronoquest/internal/models"
)

const (
	MinYear = 0
	MaxYear = 2030

	// CloseDistance and ModerateDistance are the inclusive upper bounds of
	// the close and moderate tiers.
	CloseDistance    = 5
	ModerateDistance = 20
)

// InvalidYearMessage is shown to the player when a guess is rejected.
const InvalidYearMessage = "Please enter a valid year."

var (
	ErrInvalidYear = errors.New("guess is not a year between 0 and 2030")
	ErrGameOver    = errors.New("session already finished")
)

// NewSession starts a fresh Playing session for p.
func NewSession(p models.Puzzle) models.GameSession {
	return models.GameSession{
		ID:      uuid.NewString(),
		Puzzle:  p,
		Guesses: []int{},
		Status:  models.StatusPlaying,
	}
}

// ParseGuess converts raw player input into a year. Surrounding whitespace
// is ignored; anything else that is not a base-10 integer in
// [MinYear, MaxYear] yields ErrInvalidYear.
func ParseGuess(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || year < MinYear || year > MaxYear {
		return 0, ErrInvalidYear
	}
	return year, nil
}

// Distance is |target - guess|.
func Distance(guess, target int) int {
	if guess > target {
		return guess - target
	}
	return target - guess
}

// TierFor buckets a distance.
func TierFor(distance int) models.Tier {
	switch {
	case distance == 0:
		return models.TierExact
	case distance <= CloseDistance:
		return models.TierClose
	case distance <= ModerateDistance:
		return models.TierModerate
	default:
		return models.TierFar
	}
}

// Evaluate compares one guess with the target year.
func Evaluate(guess, target int) models.Feedback {
	d := Distance(guess, target)
	fb := models.Feedback{
		Guess:    guess,
		Exact:    d == 0,
		Distance: d,
		Tier:     TierFor(d),
	}
	switch {
	case guess < target:
		fb.Direction = models.DirectionTooEarly
	case guess > target:
		fb.Direction = models.DirectionTooLate
	}
	return fb
}

// Outcome is the result of a successful submission.
type Outcome struct {
	Session  models.GameSession
	Feedback models.Feedback
	// Ended is true only for the submission that moved the session out of
	// Playing. Callers use it to update the streak exactly once.
	Ended bool
}

// SubmitGuess validates raw and appends it to a copy of session. On error
// the returned outcome is zero and session is untouched.
func SubmitGuess(session models.GameSession, raw string) (Outcome, error) {
	if session.Status != models.StatusPlaying {
		return Outcome{}, ErrGameOver
	}
	year, err := ParseGuess(raw)
	if err != nil {
		return Outcome{}, err
	}

	next := session
	next.Guesses = make([]int, len(session.Guesses), len(session.Guesses)+1)
	copy(next.Guesses, session.Guesses)
	next.Guesses = append(next.Guesses, year)

	fb := Evaluate(year, session.Puzzle.TargetYear)
	switch {
	case fb.Exact:
		next.Status = models.StatusWon
	case len(next.Guesses) >= models.MaxGuesses:
		next.Status = models.StatusLost
	}

	return Outcome{
		Session:  next,
		Feedback: fb,
		Ended:    next.Status.Terminal(),
	}, nil
}

// History returns feedback for every recorded guess, oldest first.
func History(session models.GameSession) []models.Feedback {
	out := make([]models.Feedback, 0, len(session.Guesses))
	for _, g := range session.Guesses {
		out = append(out, Evaluate(g, session.Puzzle.TargetYear))
	}
	return out
}
