// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game.
// Exposes three endpoints under /api/game:
//   - POST /api/game/new          → start a session ({"seed": n} honored outside production)
//   - GET  /api/game/{id}         → current snapshot
//   - POST /api/game/{id}/place   → place a tray tile: {"slot","row","col"}
//
// Live sessions sit in the in-memory store; the games table keeps the
// history row and high_scores the per-player best.
// A game belongs to the player who started it; everyone else gets 404.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/balance/internal/board"
	"github.com/robalobadob/balance/internal/game"
	"github.com/robalobadob/balance/internal/scores"
	"github.com/robalobadob/balance/internal/store"
)

type newGameReq struct {
	Seed uint64 `json:"seed"`
}

type placeReq struct {
	Slot int `json:"slot"`
	Row  int `json:"row"`
	Col  int `json:"col"`
}

type placeResp struct {
	Outcome game.Outcome  `json:"outcome"`
	Game    game.Snapshot `json:"game"`
}

// logObserver reports board changes on the process logger.
type logObserver struct{}

func (logObserver) Redraw(id string, cells [board.Size][board.Size]board.Cell) {
	filled := 0
	for _, row := range cells {
		for _, c := range row {
			if !c.IsEmpty() {
				filled++
			}
		}
	}
	log.Debug().Str("gameId", id).Int("filled", filled).Msg("redraw")
}

func (logObserver) GameOver(id string, final int) {
	log.Info().Str("gameId", id).Int("score", final).Msg("game over")
}

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Get("/{id}", s.handleGetGame)
		r.Post("/{id}/place", s.handlePlace)
	})
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var body newGameReq
	// an empty body is fine: random seed
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	owner := s.owner(w, r)
	best, err := s.scores.High(r.Context(), owner.PlayerID())
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("load high score")
	}

	seed := body.Seed
	if s.cfg.Production {
		seed = 0 // a known seed reveals every future tile
	}
	g := game.New(uuid.NewString(), seed, best)
	g.SetOwner(owner.PlayerID())
	g.Observe(logObserver{})
	if err := s.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.scores.StartGame(r.Context(), g.ID, g.Seed, owner); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", g.ID).Msg("record game start")
	}
	hlog.FromRequest(r).Info().Str("gameId", g.ID).Int("best", best).Msg("new game")
	_ = json.NewEncoder(w).Encode(g.Snapshot())
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, _, ok := s.lookupOwnedGame(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(g.Snapshot())
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var body placeReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	g, owner, ok := s.lookupOwnedGame(w, r)
	if !ok {
		return
	}

	out, err := g.PlaceFromTray(body.Slot, board.Pos{Row: body.Row, Col: body.Col})
	if err != nil {
		writePlaceError(w, err)
		return
	}
	snap := g.Snapshot()

	ctx := r.Context()
	if out.NewBest || out.GameOver() {
		if _, err := s.scores.RecordHigh(ctx, owner.PlayerID(), out.Score); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("record high score")
		}
	}
	if err := s.scores.UpdateGame(ctx, g.ID, out.Score, snap.Placements, out.GameOver()); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", g.ID).Msg("update game")
	}
	if out.GameOver() && owner.UserID != "" {
		if err := s.bumpGamesPlayed(ctx, owner.UserID); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("bump games played")
		}
	}

	_ = json.NewEncoder(w).Encode(placeResp{Outcome: out, Game: snap})
}

// lookupGame loads the {id} session or writes a 404.
func (s *Server) lookupGame(w http.ResponseWriter, r *http.Request) (*game.Game, bool) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"game_not_found"}`, http.StatusNotFound)
			return nil, false
		}
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return nil, false
	}
	return g, true
}

// lookupOwnedGame is lookupGame restricted to the caller's own games.
// A game started as a guest follows the player into their account.
func (s *Server) lookupOwnedGame(w http.ResponseWriter, r *http.Request) (*game.Game, scores.Owner, bool) {
	g, ok := s.lookupGame(w, r)
	if !ok {
		return nil, scores.Owner{}, false
	}
	owner := s.owner(w, r)
	switch held := g.Owner(); {
	case held != "" && held == owner.PlayerID():
	case held != "" && owner.UserID != "" && held == anonID(r):
		g.SetOwner(owner.PlayerID())
	default:
		http.Error(w, `{"error":"game_not_found"}`, http.StatusNotFound)
		return nil, scores.Owner{}, false
	}
	return g, owner, true
}

// writePlaceError maps placement failures onto status codes.
func writePlaceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrOccupied):
		http.Error(w, `{"error":"cell_occupied"}`, http.StatusConflict)
	case errors.Is(err, game.ErrGameOver):
		http.Error(w, `{"error":"game_over"}`, http.StatusConflict)
	case errors.Is(err, board.ErrOutOfRange):
		http.Error(w, `{"error":"out_of_range"}`, http.StatusBadRequest)
	case errors.Is(err, board.ErrBadValue):
		http.Error(w, `{"error":"bad_value"}`, http.StatusBadRequest)
	case errors.Is(err, game.ErrBadSlot):
		http.Error(w, `{"error":"bad_slot"}`, http.StatusBadRequest)
	default:
		http.Error(w, `{"error":"place_failed"}`, http.StatusInternalServerError)
	}
}
