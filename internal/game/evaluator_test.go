package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chronoquest/internal/game"
	"github.com/vytor/chronoquest/internal/models"
)

func sessionFor(target int) models.GameSession {
	return game.NewSession(models.Puzzle{DateKey: "01-01", TargetYear: target})
}

func TestNewSession(t *testing.T) {
	a := sessionFor(1863)
	b := sessionFor(1863)

	assert.Equal(t, models.StatusPlaying, a.Status)
	assert.Empty(t, a.Guesses)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "every session gets its own id")
	assert.Equal(t, models.MaxGuesses, a.Remaining())
}

func TestParseGuess(t *testing.T) {
	tests := []struct {
		raw   string
		want  int
		valid bool
	}{
		{"1863", 1863, true},
		{"  1945\n", 1945, true},
		{"0", 0, true},
		{"2030", 2030, true},
		{"2031", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"18.5", 0, false},
		{"1863abc", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := game.ParseGuess(tt.raw)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, game.ErrInvalidYear)
			}
		})
	}
}

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		distance int
		want     models.Tier
	}{
		{0, models.TierExact},
		{1, models.TierClose},
		{5, models.TierClose},
		{6, models.TierModerate},
		{20, models.TierModerate},
		{21, models.TierFar},
		{500, models.TierFar},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, game.TierFor(tt.distance), "distance %d", tt.distance)
	}
}

func TestEvaluate(t *testing.T) {
	early := game.Evaluate(1800, 1863)
	assert.False(t, early.Exact)
	assert.Equal(t, models.DirectionTooEarly, early.Direction)
	assert.Equal(t, 63, early.Distance)
	assert.Equal(t, models.TierFar, early.Tier)

	late := game.Evaluate(1950, 1945)
	assert.Equal(t, models.DirectionTooLate, late.Direction)
	assert.Equal(t, models.TierClose, late.Tier)

	exact := game.Evaluate(1945, 1945)
	assert.True(t, exact.Exact)
	assert.Equal(t, models.DirectionNone, exact.Direction)
	assert.Equal(t, models.TierExact, exact.Tier)
}

func TestSubmitGuess_WinOnSecondGuess(t *testing.T) {
	s := sessionFor(1863)

	out, err := game.SubmitGuess(s, "1800")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlaying, out.Session.Status)
	assert.Equal(t, models.DirectionTooEarly, out.Feedback.Direction)
	assert.Equal(t, models.TierFar, out.Feedback.Tier)
	assert.False(t, out.Ended)

	out, err = game.SubmitGuess(out.Session, "1863")
	require.NoError(t, err)
	assert.Equal(t, models.StatusWon, out.Session.Status)
	assert.Equal(t, []int{1800, 1863}, out.Session.Guesses)
	assert.True(t, out.Feedback.Exact)
	assert.True(t, out.Ended)
}

func TestSubmitGuess_LossAfterSixMisses(t *testing.T) {
	s := sessionFor(1945)
	guesses := []string{"1900", "1910", "1920", "1930", "1940", "1944"}

	ended := 0
	for i, g := range guesses {
		out, err := game.SubmitGuess(s, g)
		require.NoError(t, err)
		s = out.Session
		if out.Ended {
			ended++
		}
		if i < len(guesses)-1 {
			assert.Equal(t, models.StatusPlaying, s.Status)
		}
	}

	assert.Equal(t, models.StatusLost, s.Status)
	assert.Len(t, s.Guesses, models.MaxGuesses)
	assert.Equal(t, 1, ended, "only the final guess ends the session")
}

func TestSubmitGuess_WinOnLastGuess(t *testing.T) {
	s := sessionFor(1945)
	for _, g := range []string{"1900", "1910", "1920", "1930", "1940"} {
		out, err := game.SubmitGuess(s, g)
		require.NoError(t, err)
		s = out.Session
	}

	out, err := game.SubmitGuess(s, "1945")
	require.NoError(t, err)
	assert.Equal(t, models.StatusWon, out.Session.Status)
}

func TestSubmitGuess_InvalidInputLeavesSessionUnchanged(t *testing.T) {
	s := sessionFor(1863)
	out, err := game.SubmitGuess(s, "1800")
	require.NoError(t, err)
	s = out.Session

	for _, raw := range []string{"", "abc", "-5", "2031", "3000"} {
		out, err := game.SubmitGuess(s, raw)
		assert.ErrorIs(t, err, game.ErrInvalidYear, raw)
		assert.Equal(t, game.Outcome{}, out)
	}
	assert.Equal(t, []int{1800}, s.Guesses)
	assert.Equal(t, models.StatusPlaying, s.Status)
}

func TestSubmitGuess_RejectedAfterTerminal(t *testing.T) {
	s := sessionFor(1863)
	out, err := game.SubmitGuess(s, "1863")
	require.NoError(t, err)
	require.Equal(t, models.StatusWon, out.Session.Status)

	_, err = game.SubmitGuess(out.Session, "1864")
	assert.ErrorIs(t, err, game.ErrGameOver)

	// A finished session rejects even malformed input as game over.
	_, err = game.SubmitGuess(out.Session, "nope")
	assert.ErrorIs(t, err, game.ErrGameOver)
}

func TestSubmitGuess_DoesNotAliasPreviousSession(t *testing.T) {
	s := sessionFor(1863)
	first, err := game.SubmitGuess(s, "1800")
	require.NoError(t, err)

	a, err := game.SubmitGuess(first.Session, "1810")
	require.NoError(t, err)
	b, err := game.SubmitGuess(first.Session, "1820")
	require.NoError(t, err)

	assert.Equal(t, []int{1800}, first.Session.Guesses)
	assert.Equal(t, []int{1800, 1810}, a.Session.Guesses)
	assert.Equal(t, []int{1800, 1820}, b.Session.Guesses)
}

func TestSubmitGuess_NeverExceedsMaxGuesses(t *testing.T) {
	s := sessionFor(2000)
	for i := 0; i < models.MaxGuesses*2; i++ {
		out, err := game.SubmitGuess(s, "1000")
		if err != nil {
			assert.ErrorIs(t, err, game.ErrGameOver)
			continue
		}
		s = out.Session
	}
	assert.LessOrEqual(t, len(s.Guesses), models.MaxGuesses)
	assert.Equal(t, models.StatusLost, s.Status)
}

func TestHistory(t *testing.T) {
	s := sessionFor(1945)
	for _, g := range []string{"1900", "1944", "1950"} {
		out, err := game.SubmitGuess(s, g)
		require.NoError(t, err)
		s = out.Session
	}

	h := game.History(s)
	require.Len(t, h, 3)
	assert.Equal(t, models.TierFar, h[0].Tier)
	assert.Equal(t, models.TierClose, h[1].Tier)
	assert.Equal(t, models.DirectionTooEarly, h[1].Direction)
	assert.Equal(t, models.DirectionTooLate, h[2].Direction)
}
