// internal/httpserver/routes_scores.go
//
// HTTP routes for high scores.
//   - GET /api/scores/high         → best score of the caller (user or anon cookie)
//   - GET /api/scores/leaderboard  → top registered players (?limit=, max 100)

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxLeaderboard = 100

// mountScores registers all /scores routes.
func (s *Server) mountScores(r chi.Router) {
	r.Route("/scores", func(r chi.Router) {
		r.Get("/high", s.handleHigh)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

func (s *Server) handleHigh(w http.ResponseWriter, r *http.Request) {
	best, err := s.scores.High(r.Context(), s.owner(w, r).PlayerID())
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]int{"best": best})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, `{"error":"bad_limit"}`, http.StatusBadRequest)
			return
		}
		limit = min(n, maxLeaderboard)
	}
	rows, err := s.scores.Leaderboard(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}
