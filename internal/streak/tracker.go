// Package streak keeps the count of consecutive daily wins in a
// key-value store.
package streak

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vytor/chronoquest/internal/logger"
	"github.com/vytor/chronoquest/internal/models"
	"github.com/vytor/chronoquest/internal/repository"
)

// Key is the store key holding the streak count.
const Key = "chronoStreak"

var ErrNotTerminal = errors.New("streak: session has not ended")

// Tracker holds the in-memory streak and writes every change through to
// the store. It performs no deduplication; callers must report each
// finished session once. Not safe for concurrent use.
type Tracker struct {
	store repository.KeyValueStore
	state models.StreakState
}

// Load reads the persisted streak. A missing or malformed value counts as
// zero. On a store read error the returned tracker starts at zero and the
// error is returned for the caller to log.
func Load(ctx context.Context, store repository.KeyValueStore) (*Tracker, error) {
	t := &Tracker{store: store}
	raw, ok, err := store.Get(ctx, Key)
	if err != nil {
		return t, fmt.Errorf("load streak: %w", err)
	}
	if !ok {
		return t, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		logger.FromContext(ctx).WithPrefix("streak").Warn("ignoring unparsable streak value %q", raw)
		return t, nil
	}
	t.state.Count = n
	return t, nil
}

// State returns the current streak.
func (t *Tracker) State() models.StreakState {
	return t.state
}

// OnSessionEnd applies a finished session: a win extends the streak, a
// loss resets it. The new state is kept even when persisting it fails.
func (t *Tracker) OnSessionEnd(ctx context.Context, status models.Status) (models.StreakState, error) {
	switch status {
	case models.StatusWon:
		t.state.Count++
	case models.StatusLost:
		t.state.Count = 0
	default:
		return t.state, ErrNotTerminal
	}

	if err := t.store.Set(ctx, Key, strconv.Itoa(t.state.Count)); err != nil {
		return t.state, fmt.Errorf("persist streak: %w", err)
	}
	logger.FromContext(ctx).WithPrefix("streak").Debug("streak is now %d after %s", t.state.Count, status)
	return t.state, nil
}
