package repository

import (
	"context"

	"github.com/vytor/chronoquest/internal/models"
)

// PuzzleRepository maps "MM-DD" date keys to puzzles. Implementations are
// read-only.
type PuzzleRepository interface {
	Lookup(dateKey string) (models.Puzzle, bool)
	// Default is the record served when Lookup misses.
	Default() models.Puzzle
}

// KeyValueStore is a durable string store used for small pieces of player
// state such as the streak counter.
type KeyValueStore interface {
	// Get returns ok=false when the key has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
