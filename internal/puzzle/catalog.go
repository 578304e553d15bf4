package puzzle

import (
	"errors"
	"fmt"
	"time"

	"github.com/vytor/chronoquest/internal/game"
	"github.com/vytor/chronoquest/internal/models"
	"github.com/vytor/chronoquest/internal/repository"
)

// ErrEmptyCatalog is returned when a dataset has no records, which would
// leave nothing to fall back to.
var ErrEmptyCatalog = errors.New("puzzle catalog is empty")

// Catalog is an in-memory PuzzleRepository that keeps records in dataset
// order.
type Catalog struct {
	records []models.Puzzle
	byKey   map[string]int
}

var _ repository.PuzzleRepository = (*Catalog)(nil)

// NewCatalog validates records and indexes them by date key.
func NewCatalog(records []models.Puzzle) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		records: make([]models.Puzzle, len(records)),
		byKey:   make(map[string]int, len(records)),
	}
	copy(c.records, records)

	var errs []error
	for i, p := range c.records {
		if err := validateRecord(p); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		if prev, dup := c.byKey[p.DateKey]; dup {
			errs = append(errs, fmt.Errorf("record %d: date key %q already used by record %d", i, p.DateKey, prev))
			continue
		}
		c.byKey[p.DateKey] = i
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

func validateRecord(p models.Puzzle) error {
	if !ValidDateKey(p.DateKey) {
		return fmt.Errorf("invalid date key %q, want MM-DD", p.DateKey)
	}
	if p.TargetYear < game.MinYear || p.TargetYear > game.MaxYear {
		return fmt.Errorf("%s: target year %d outside [%d, %d]", p.DateKey, p.TargetYear, game.MinYear, game.MaxYear)
	}
	return nil
}

// ValidDateKey reports whether key is a zero-padded "MM-DD" naming a real
// calendar day. 02-29 is accepted.
func ValidDateKey(key string) bool {
	// Year 0 is a leap year, so Feb 29 parses.
	t, err := time.Parse("01-02", key)
	return err == nil && t.Format("01-02") == key
}

func (c *Catalog) Lookup(dateKey string) (models.Puzzle, bool) {
	i, ok := c.byKey[dateKey]
	if !ok {
		return models.Puzzle{}, false
	}
	return c.records[i], true
}

func (c *Catalog) Default() models.Puzzle {
	return c.records[0]
}

// Len returns the number of puzzles.
func (c *Catalog) Len() int {
	return len(c.records)
}
