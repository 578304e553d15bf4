package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/chronoquest/internal/api"
	"github.com/vytor/chronoquest/internal/config"
	"github.com/vytor/chronoquest/internal/db"
	"github.com/vytor/chronoquest/internal/logger"
	"github.com/vytor/chronoquest/internal/puzzle"
	"github.com/vytor/chronoquest/internal/repository/sqlite"
	"github.com/vytor/chronoquest/internal/services"
	"github.com/vytor/chronoquest/internal/streak"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(cfg.LogColors),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("ChronoQuest Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("puzzles_path=%s", cfg.PuzzlesPath)
	log.Debug("timezone=%s", cfg.Timezone)
	log.Debug("share_reset_delay=%s", cfg.ShareResetDelay)
	log.Debug("dev_tools=%t", cfg.DevTools)

	catalog, err := puzzle.LoadCatalog(cfg.PuzzlesPath)
	if err != nil {
		log.Error("failed to load puzzles: %v", err)
		os.Exit(1)
	}
	log.Info("loaded %d puzzles", catalog.Len())

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	ctx := context.Background()
	tracker, err := streak.Load(ctx, sqlite.NewKeyValueStore(database.DB))
	if err != nil {
		log.Warn("failed to load streak, starting from zero: %v", err)
	}

	loc, _ := cfg.Location()
	gameService := services.NewGameService(catalog, tracker, services.GameConfig{
		Location:        loc,
		ShareResetDelay: cfg.ShareResetDelay,
	})

	srv := &api.Server{
		GameService: gameService,
		DB:          database,
		DevTools:    cfg.DevTools,
	}
	if cfg.DevTools {
		log.Warn("dev tools enabled: date override endpoints are exposed")
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("ChronoQuest Server Stopped")
	log.Info("===========================================")
}
