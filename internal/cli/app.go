package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/vytor/chronoquest/internal/db"
	"github.com/vytor/chronoquest/internal/logger"
	"github.com/vytor/chronoquest/internal/puzzle"
	"github.com/vytor/chronoquest/internal/repository/sqlite"
	"github.com/vytor/chronoquest/internal/services"
	"github.com/vytor/chronoquest/internal/streak"
)

// session wires the game service over the on-disk streak store.
type session struct {
	db  *db.DB
	svc services.GameService
}

func openSession(ctx context.Context, flags *globalFlags, opts Options) (*session, error) {
	catalog, err := puzzle.LoadCatalog(flags.puzzlesPath)
	if err != nil {
		return nil, fmt.Errorf("load puzzles: %w", err)
	}

	database, err := db.Open(flags.dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	tracker, err := streak.Load(ctx, sqlite.NewKeyValueStore(database.DB))
	if err != nil {
		// The game is still playable; the streak starts from zero.
		logger.FromContext(ctx).Warn("failed to load streak: %v", err)
	}

	loc, err := opts.Config.Location()
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	svc := services.NewGameService(catalog, tracker, services.GameConfig{
		Location:        loc,
		ShareResetDelay: opts.Config.ShareResetDelay,
		Now:             opts.Now,
	})
	return &session{db: database, svc: svc}, nil
}

func (s *session) Close() error {
	return s.db.Close()
}

// applyDate sets the date override when raw is non-empty.
func (s *session) applyDate(ctx context.Context, raw string) (services.GameView, error) {
	if raw == "" {
		return s.svc.Current(ctx), nil
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return services.GameView{}, fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
	}
	return s.svc.SetDate(ctx, date), nil
}
