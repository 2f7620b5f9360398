// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game:
//   - POST /game/new   → start a session (answer from the configured picker)
//   - POST /game/guess → submit a guess for a session
//   - GET  /game/{id}  → current board of a session
//
// Active sessions live in the session store. When a session finishes it is
// written to the stats store (stats + history) and dropped from memory.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/stats"
	"github.com/robalobadob/wordle/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/{id}", s.handleGetGame)
	})
}

// -----------------------------------------------------------------------------
// /game/new

// newGameReq is the optional request payload for /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // fixed answer, honoured outside production only
}

// newGameRes is returned by /game/new.
type newGameRes struct {
	GameID     string `json:"gameId"`
	Length     int    `json:"length"`
	MaxGuesses int    `json:"maxGuesses"`
}

// handleNewGame picks an answer for the player and stores a fresh session.
// In sequential mode the player's word tracker is advanced and saved.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	pid := s.playerID(w, r)
	ctx := r.Context()

	answer := ""
	if !s.opts.Production && req.Answer != "" {
		if !s.deps.Dict.IsAnswer(req.Answer) {
			writeError(w, http.StatusBadRequest, "unknown_answer")
			return
		}
		answer = req.Answer
	} else {
		st, err := s.deps.Stats.Get(ctx, pid)
		if err != nil {
			log.Error().Err(err).Str("player", pid).Msg("load stats")
			writeError(w, http.StatusInternalServerError, "server_error")
			return
		}
		var next int
		answer, next = s.deps.Picker.Pick(st.WordTracker, time.Now())
		if next != st.WordTracker {
			st.WordTracker = next
			if err := s.deps.Stats.Save(ctx, pid, st); err != nil {
				log.Warn().Err(err).Str("player", pid).Msg("save word tracker")
			}
		}
	}

	g := game.NewSession(answer, game.WithDictionary(s.deps.Dict), game.WithOwner(pid))
	if err := s.deps.Sessions.Save(ctx, g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Str("player", pid).Msg("game started")
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Length: g.Length(), MaxGuesses: g.MaxGuesses})
}

// -----------------------------------------------------------------------------
// /game/guess

// guessReq is the request payload for /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// guessRes is the response payload for /game/guess.
type guessRes struct {
	Verdicts  game.Result             `json:"verdicts"`
	State     game.State              `json:"state"`
	Remaining int                     `json:"remaining"`
	Keyboard  map[string]game.Verdict `json:"keyboard"`
	Answer    string                  `json:"answer,omitempty"` // revealed once lost
	Stats     *stats.Stats            `json:"stats,omitempty"`  // totals after a finished game
}

// handleGuess applies a guess to the player's session and, if the game is
// over, records it and drops it from the session store.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	pid := s.playerID(w, r)
	ctx := r.Context()

	var (
		res      game.Result
		finished *game.Session
		snapshot *game.Session
	)
	err := s.deps.Sessions.Update(ctx, req.GameID, func(g *game.Session) error {
		if g.Owner != pid {
			return store.ErrNotFound
		}
		var err error
		if res, err = g.Submit(req.Guess); err != nil {
			return err
		}
		snapshot = g.Clone()
		if g.Finished() {
			finished = snapshot
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
		return
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	case errors.Is(err, game.ErrNotAWord):
		writeError(w, http.StatusBadRequest, "not_in_word_list")
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", req.GameID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	out := guessRes{
		Verdicts:  res,
		State:     snapshot.Status,
		Remaining: snapshot.Remaining(),
		Keyboard:  snapshot.Keyboard().Strings(),
	}
	if finished != nil {
		if finished.Status == game.Lost {
			out.Answer = finished.Answer
		}
		st, err := s.deps.Stats.Finish(ctx, pid, finished)
		if err != nil {
			log.Warn().Err(err).Str("gameId", finished.ID).Msg("record finished game")
		} else {
			out.Stats = &st
		}
		_ = s.deps.Sessions.Delete(ctx, finished.ID)
		log.Info().Str("gameId", finished.ID).Str("player", pid).Stringer("state", finished.Status).
			Int("guesses", len(finished.History)).Msg("game finished")
	}
	writeJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// /game/{id}

// boardRes describes an in-progress session.
type boardRes struct {
	GameID     string                  `json:"gameId"`
	Length     int                     `json:"length"`
	MaxGuesses int                     `json:"maxGuesses"`
	State      game.State              `json:"state"`
	Remaining  int                     `json:"remaining"`
	Attempts   []game.Attempt          `json:"attempts"`
	Keyboard   map[string]game.Verdict `json:"keyboard"`
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.deps.Sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil || g.Owner != s.playerID(w, r) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, boardRes{
		GameID:     g.ID,
		Length:     g.Length(),
		MaxGuesses: g.MaxGuesses,
		State:      g.Status,
		Remaining:  g.Remaining(),
		Attempts:   g.History,
		Keyboard:   g.Keyboard().Strings(),
	})
}

// -----------------------------------------------------------------------------
// /stats/me, /games/mine

// statsRes adds the derived win percentage to the stored totals.
type statsRes struct {
	stats.Stats
	WinPercent int `json:"winPercent"`
}

func (s *Server) handleStatsMe(w http.ResponseWriter, r *http.Request) {
	st, err := s.deps.Stats.Get(r.Context(), s.playerID(w, r))
	if err != nil {
		log.Error().Err(err).Msg("load stats")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, statsRes{Stats: st, WinPercent: st.WinPercent()})
}

func (s *Server) handleGamesMine(w http.ResponseWriter, r *http.Request) {
	games, err := s.deps.Stats.RecentGames(r.Context(), s.playerID(w, r), 50)
	if err != nil {
		log.Error().Err(err).Msg("list games")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, games)
}
