package puzzle

import (
	"time"

	"github.com/vytor/chronoquest/internal/models"
	"github.com/vytor/chronoquest/internal/repository"
)

// DateKey formats the month and day of t as "MM-DD". The year is ignored,
// so the same calendar day maps to the same puzzle every year.
func DateKey(t time.Time) string {
	return t.Format("01-02")
}

// Resolution is the outcome of selecting a puzzle for a reference date.
type Resolution struct {
	DateKey string
	Puzzle  models.Puzzle
	// Fallback is set when DateKey had no puzzle and the repository's
	// default record was served instead.
	Fallback bool
}

// Resolve picks the puzzle for ref. A miss is not an error: the repository
// default is returned with Fallback set, so there is always a game to play.
func Resolve(ref time.Time, repo repository.PuzzleRepository) Resolution {
	key := DateKey(ref)
	if p, ok := repo.Lookup(key); ok {
		return Resolution{DateKey: key, Puzzle: p}
	}
	return Resolution{DateKey: key, Puzzle: repo.Default(), Fallback: true}
}

// Select returns only the puzzle from Resolve.
func Select(ref time.Time, repo repository.PuzzleRepository) models.Puzzle {
	return Resolve(ref, repo).Puzzle
}
