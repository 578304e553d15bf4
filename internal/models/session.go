package models

// MaxGuesses is the number of attempts a player gets per puzzle.
const MaxGuesses = 6

// Status is the lifecycle state of a GameSession.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// GameSession is one attempt at one puzzle. Guesses are kept in the order
// they were submitted.
type GameSession struct {
	ID      string `json:"id"`
	Puzzle  Puzzle `json:"-"`
	Guesses []int  `json:"guesses"`
	Status  Status `json:"status"`
}

// Remaining returns how many guesses are left.
func (s GameSession) Remaining() int {
	return MaxGuesses - len(s.Guesses)
}
