package share_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/chronoquest/internal/game"
	"github.com/vytor/chronoquest/internal/models"
	"github.com/vytor/chronoquest/internal/share"
)

var oct24 = time.Date(2025, time.October, 24, 9, 0, 0, 0, time.UTC)

func play(t *testing.T, target int, guesses ...string) models.GameSession {
	t.Helper()
	s := game.NewSession(models.Puzzle{DateKey: "10-24", TargetYear: target})
	for _, g := range guesses {
		out, err := game.SubmitGuess(s, g)
		require.NoError(t, err)
		s = out.Session
	}
	return s
}

func TestSymbol_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		guess  int
		target int
		want   string
	}{
		{"exact", 1945, 1945, share.SymbolExact},
		{"close below", 1944, 1945, share.SymbolClose},
		{"close above", 1950, 1945, share.SymbolClose},
		{"edge of close", 1940, 1945, share.SymbolClose},
		{"too low", 1939, 1945, share.SymbolTooLow},
		{"too high", 1951, 1945, share.SymbolTooHigh},
		{"far low", 0, 2030, share.SymbolTooLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, share.Symbol(tt.guess, tt.target))
		})
	}
}

func TestRules_CloseCheckedBeforeDirection(t *testing.T) {
	var order []string
	for _, r := range share.Rules {
		order = append(order, r.Symbol)
	}
	assert.Equal(t, []string{share.SymbolExact, share.SymbolClose, share.SymbolTooLow, share.SymbolTooHigh}, order)
}

func TestEncode_Won(t *testing.T) {
	s := play(t, 1945, "1944", "1945")

	text, err := share.Encode(s, oct24)
	require.NoError(t, err)

	want := "ChronoQuest (Oct 24)\n2/6\n\n🟨\n🟩\n\nPlay at: www.chrono-quest.com"
	assert.Equal(t, want, text)
}

func TestEncode_Lost(t *testing.T) {
	s := play(t, 1945, "1900", "1910", "1920", "1930", "1940", "1990")

	text, err := share.Encode(s, oct24)
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	assert.Equal(t, "X/6", lines[1])
	assert.Equal(t, []string{
		share.SymbolTooLow, share.SymbolTooLow, share.SymbolTooLow,
		share.SymbolTooLow, share.SymbolClose, share.SymbolTooHigh,
	}, lines[3:9])
	assert.Equal(t, share.Trailer, lines[len(lines)-1])
}

func TestEncode_ScoreMatchesSession(t *testing.T) {
	for n := 1; n <= models.MaxGuesses; n++ {
		guesses := make([]string, 0, n)
		for i := 1; i < n; i++ {
			guesses = append(guesses, "1000")
		}
		guesses = append(guesses, "1863")
		s := play(t, 1863, guesses...)
		require.Equal(t, models.StatusWon, s.Status)

		text, err := share.Encode(s, oct24)
		require.NoError(t, err)
		assert.Contains(t, text, "\n"+share.Score(s)+"\n")
		assert.Equal(t, n, strings.Count(text, share.SymbolExact)+strings.Count(text, share.SymbolTooLow))
	}
}

func TestEncode_RejectsInProgress(t *testing.T) {
	s := play(t, 1945, "1900")

	text, err := share.Encode(s, oct24)
	assert.ErrorIs(t, err, share.ErrSessionInProgress)
	assert.Empty(t, text)
}

func TestEncode_DoesNotMutateSession(t *testing.T) {
	s := play(t, 1863, "1800", "1863")
	before := append([]int(nil), s.Guesses...)

	_, err := share.Encode(s, oct24)
	require.NoError(t, err)
	assert.Equal(t, before, s.Guesses)
	assert.Equal(t, models.StatusWon, s.Status)
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "ChronoQuest (Jan 1)", share.Header(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}
