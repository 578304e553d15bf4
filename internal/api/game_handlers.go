package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vytor/chronoquest/internal/errors"
	"github.com/vytor/chronoquest/internal/logger"
	"github.com/vytor/chronoquest/internal/models"
	"github.com/vytor/chronoquest/internal/services"
	"github.com/vytor/chronoquest/internal/share"
)

const maxBodyBytes = 1 << 12

type gameResponse struct {
	Date              string             `json:"date"`
	DateKey           string             `json:"dateKey"`
	Fallback          bool               `json:"fallback"`
	Overridden        bool               `json:"overridden,omitempty"`
	SessionID         string             `json:"sessionId"`
	Status            models.Status      `json:"status"`
	Clue              string             `json:"clue"`
	Category          string             `json:"category"`
	Guesses           []models.Feedback  `json:"guesses"`
	AttemptsRemaining int                `json:"attemptsRemaining"`
	MaxGuesses        int                `json:"maxGuesses"`
	Streak            int                `json:"streak"`
	ShareStatus       models.ShareStatus `json:"shareStatus"`

	// Revealed once the session has ended.
	Answer         *int   `json:"answer,omitempty"`
	FunFact        string `json:"funFact,omitempty"`
	ArticleTitle   string `json:"articleTitle,omitempty"`
	ArticleContent string `json:"articleContent,omitempty"`
}

func newGameResponse(v services.GameView) gameResponse {
	p := v.Session.Puzzle
	resp := gameResponse{
		Date:              v.Date.Format(time.DateOnly),
		DateKey:           v.DateKey,
		Fallback:          v.Fallback,
		Overridden:        v.Overridden,
		SessionID:         v.Session.ID,
		Status:            v.Session.Status,
		Clue:              p.Clue,
		Category:          p.Category,
		Guesses:           v.Feedback,
		AttemptsRemaining: v.Session.Remaining(),
		MaxGuesses:        models.MaxGuesses,
		Streak:            v.Streak.Count,
		ShareStatus:       v.ShareStatus,
	}
	if v.Session.Status.Terminal() {
		answer := p.TargetYear
		resp.Answer = &answer
		resp.FunFact = p.FunFact
		resp.ArticleTitle = p.ArticleTitle
		resp.ArticleContent = p.ArticleContent
	}
	return resp
}

type guessRequest struct {
	// Guess is usually the raw text the player typed; a bare JSON number
	// is accepted too.
	Guess json.RawMessage `json:"guess"`
}

func (g guessRequest) raw() (string, bool) {
	b := bytes.TrimSpace(g.Guess)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", false
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", false
		}
		return s, true
	}
	return string(b), true
}

type guessResponse struct {
	Feedback models.Feedback `json:"feedback"`
	Game     gameResponse    `json:"game"`
}

type streakResponse struct {
	Count int `json:"count"`
}

type shareResponse struct {
	Text   string             `json:"text"`
	Status models.ShareStatus `json:"status"`
}

type shareStatusResponse struct {
	Status models.ShareStatus `json:"status"`
}

type dateRequest struct {
	Date string `json:"date"`
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	view := s.GameService.Current(r.Context())
	writeJSON(w, r, http.StatusOK, newGameResponse(view))
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req guessRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	raw, ok := req.raw()
	if !ok {
		handleError(w, r, errors.NewBadRequestError("guess is required"))
		return
	}

	res, err := s.GameService.SubmitGuess(r.Context(), raw)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("guess %d recorded, tier=%s", res.Feedback.Guess, res.Feedback.Tier)

	writeJSON(w, r, http.StatusOK, guessResponse{
		Feedback: res.Feedback,
		Game:     newGameResponse(res.View),
	})
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, streakResponse{Count: s.GameService.Streak(r.Context()).Count})
}

// handleShare returns the share text in the response body, which is where
// an HTTP client copies it from.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	res, err := s.GameService.Share(r.Context(), share.TargetFunc(func(string) error { return nil }))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, shareResponse{Text: res.Text, Status: res.Status})
}

func (s *Server) handleShareStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, shareStatusResponse{Status: s.GameService.ShareStatus(r.Context())})
}

func (s *Server) handleSetDate(w http.ResponseWriter, r *http.Request) {
	var req dateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(req.Date))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("date must be YYYY-MM-DD"))
		return
	}

	view := s.GameService.SetDate(r.Context(), date)
	writeJSON(w, r, http.StatusOK, newGameResponse(view))
}

func (s *Server) handleClearDate(w http.ResponseWriter, r *http.Request) {
	view := s.GameService.ClearDate(r.Context())
	writeJSON(w, r, http.StatusOK, newGameResponse(view))
}
