package services

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/vytor/chronoquest/internal/errors"
	"github.com/vytor/chronoquest/internal/game"
	"github.com/vytor/chronoquest/internal/logger"
	"github.com/vytor/chronoquest/internal/models"
	"github.com/vytor/chronoquest/internal/puzzle"
	"github.com/vytor/chronoquest/internal/repository"
	"github.com/vytor/chronoquest/internal/share"
	"github.com/vytor/chronoquest/internal/streak"
)

// GameView is a snapshot of the active game.
type GameView struct {
	Date        time.Time
	DateKey     string
	Fallback    bool
	Overridden  bool
	Session     models.GameSession
	Feedback    []models.Feedback
	Streak      models.StreakState
	ShareStatus models.ShareStatus
}

// GuessResult is the feedback for one accepted guess plus the updated game.
type GuessResult struct {
	Feedback models.Feedback
	View     GameView
}

// ShareResult is the text handed to a share target and the resulting status.
type ShareResult struct {
	Text   string
	Status models.ShareStatus
}

// GameService drives the daily game for a single player
type GameService interface {
	Current(ctx context.Context) GameView
	SubmitGuess(ctx context.Context, raw string) (GuessResult, error)
	SetDate(ctx context.Context, date time.Time) GameView
	ClearDate(ctx context.Context) GameView
	Streak(ctx context.Context) models.StreakState
	Result(ctx context.Context) (string, error)
	Share(ctx context.Context, target share.Target) (ShareResult, error)
	ShareStatus(ctx context.Context) models.ShareStatus
}

type gameService struct {
	puzzles repository.PuzzleRepository
	tracker *streak.Tracker
	status  *share.StatusTracker
	cfg     GameConfig

	mu       sync.Mutex
	override *time.Time
	session  models.GameSession
	started  bool
}

// NewGameService creates a new GameService
func NewGameService(puzzles repository.PuzzleRepository, tracker *streak.Tracker, cfg GameConfig) GameService {
	cfg = cfg.withDefaults()
	return &gameService{
		puzzles: puzzles,
		tracker: tracker,
		status:  share.NewStatusTracker(cfg.ShareResetDelay),
		cfg:     cfg,
	}
}

func (s *gameService) Current(ctx context.Context) GameView {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, res := s.syncLocked(ctx)
	return s.viewLocked(ref, res)
}

func (s *gameService) SubmitGuess(ctx context.Context, raw string) (GuessResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx).WithPrefix("game")
	ref, res := s.syncLocked(ctx)
	log.Debug("submitting guess %q for session %s", raw, s.session.ID)

	out, err := game.SubmitGuess(s.session, raw)
	if err != nil {
		switch {
		case stderrors.Is(err, game.ErrInvalidYear):
			log.Debug("rejected guess %q", raw)
			return GuessResult{}, errors.NewValidationError(game.InvalidYearMessage, err)
		case stderrors.Is(err, game.ErrGameOver):
			log.Debug("guess after session %s ended", s.session.ID)
			return GuessResult{}, errors.NewGameOverError(err)
		default:
			log.Error("failed to submit guess: %v", err)
			return GuessResult{}, errors.NewInternalError(err)
		}
	}
	s.session = out.Session

	if out.Ended {
		log.Info("session %s ended: %s after %d guesses", s.session.ID, s.session.Status, len(s.session.Guesses))
		state, err := s.tracker.OnSessionEnd(ctx, s.session.Status)
		if err != nil {
			log.Error("failed to persist streak: %v", err)
		} else {
			log.Info("streak is now %d", state.Count)
		}
	}

	return GuessResult{Feedback: out.Feedback, View: s.viewLocked(ref, res)}, nil
}

func (s *gameService) SetDate(ctx context.Context, date time.Time) GameView {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Only the calendar day of date matters.
	d := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, s.cfg.Location)
	s.override = &d
	logger.FromContext(ctx).WithPrefix("game").Info("date override set to %s", d.Format(time.DateOnly))

	ref, res := s.syncLocked(ctx)
	return s.viewLocked(ref, res)
}

func (s *gameService) ClearDate(ctx context.Context) GameView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.override = nil
	logger.FromContext(ctx).WithPrefix("game").Info("date override cleared")

	ref, res := s.syncLocked(ctx)
	return s.viewLocked(ref, res)
}

func (s *gameService) Streak(ctx context.Context) models.StreakState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.State()
}

func (s *gameService) Result(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, _ := s.syncLocked(ctx)
	return s.encodeLocked(ref)
}

func (s *gameService) Share(ctx context.Context, target share.Target) (ShareResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx).WithPrefix("share")
	ref, _ := s.syncLocked(ctx)
	text, err := s.encodeLocked(ref)
	if err != nil {
		return ShareResult{}, err
	}

	werr := target.Write(text)
	status := s.status.Record(werr)
	if werr != nil {
		log.Warn("failed to deliver share text: %v", werr)
		return ShareResult{Text: text, Status: status}, errors.NewShareFailedError(werr)
	}
	log.Debug("shared result for session %s", s.session.ID)
	return ShareResult{Text: text, Status: status}, nil
}

func (s *gameService) ShareStatus(ctx context.Context) models.ShareStatus {
	return s.status.Status()
}

func (s *gameService) encodeLocked(ref time.Time) (string, error) {
	text, err := share.Encode(s.session, ref)
	if stderrors.Is(err, share.ErrSessionInProgress) {
		return "", errors.NewInProgressError(err)
	}
	if err != nil {
		return "", errors.NewInternalError(err)
	}
	return text, nil
}

func (s *gameService) referenceLocked() time.Time {
	if s.override != nil {
		return *s.override
	}
	return s.cfg.Now().In(s.cfg.Location)
}

// syncLocked resolves today's puzzle and starts a fresh session when it
// differs from the active one.
func (s *gameService) syncLocked(ctx context.Context) (time.Time, puzzle.Resolution) {
	ref := s.referenceLocked()
	res := puzzle.Resolve(ref, s.puzzles)

	if s.started && s.session.Puzzle.DateKey == res.Puzzle.DateKey {
		return ref, res
	}

	log := logger.FromContext(ctx).WithPrefix("game")
	if res.Fallback {
		log.Warn("no puzzle for %s, using default puzzle %s", res.DateKey, res.Puzzle.DateKey)
	}
	s.session = game.NewSession(res.Puzzle)
	s.started = true
	s.status.Reset()
	log.Info("started session %s for puzzle %s", s.session.ID, res.Puzzle.DateKey)
	return ref, res
}

func (s *gameService) viewLocked(ref time.Time, res puzzle.Resolution) GameView {
	return GameView{
		Date:        ref,
		DateKey:     res.DateKey,
		Fallback:    res.Fallback,
		Overridden:  s.override != nil,
		Session:     s.session,
		Feedback:    game.History(s.session),
		Streak:      s.tracker.State(),
		ShareStatus: s.status.Status(),
	}
}
