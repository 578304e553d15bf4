package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vytor/chronoquest/internal/db"
	"github.com/vytor/chronoquest/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.Open(":memory:")
	require.NoError(t, err)
	return d.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Puzzles returns the two sample puzzles used across tests, in catalog order.
func Puzzles() []models.Puzzle {
	return []models.Puzzle{
		{
			DateKey:        "01-01",
			TargetYear:     1863,
			Clue:           "Abraham Lincoln issues the Emancipation Proclamation.",
			Category:       "Civil Rights",
			FunFact:        "It applied only to states in rebellion.",
			ArticleTitle:   "Emancipation Proclamation",
			ArticleContent: "An executive order issued during the American Civil War.",
		},
		{
			DateKey:        "10-24",
			TargetYear:     1945,
			Clue:           "The United Nations Charter comes into force.",
			Category:       "Politics",
			FunFact:        "October 24 is celebrated as United Nations Day.",
			ArticleTitle:   "United Nations Day",
			ArticleContent: "The UN was founded with 51 member states.",
		},
	}
}
