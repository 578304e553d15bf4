package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/chronoquest/internal/errors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/game", s.handleGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/streak", s.handleStreak)
		r.Post("/share", s.handleShare)
		r.Get("/share/status", s.handleShareStatus)

		if s.DevTools {
			r.Post("/dev/date", s.handleSetDate)
			r.Delete("/dev/date", s.handleClearDate)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundError("route", r.URL.Path))
	})
	return r
}
