// internal/game/engine.go
//
// Resolution step for a single game session.
// Responsibilities:
//   - Create new games with a seeded board and a full tray.
//   - Apply placements: place, scan both axes, score, clear matched tiles.
//   - Track the running score and the player's best.
//   - Track state transitions: playing → over once the board is full.
//
// Notes:
//   - Matching itself lives in the match package; this file only applies it.
//   - Placements that fail leave the game untouched.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/balance/internal/board"
	"github.com/robalobadob/balance/internal/match"
)

var (
	ErrGameOver = errors.New("game over")
	ErrBadSlot  = errors.New("tray slot out of range")
)

// New constructs a game with the given id. best is the player's stored
// high score; a seed of 0 picks a random one, recorded in Game.Seed.
func New(id string, seed uint64, best int) *Game {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return NewWithSource(id, seed, board.NewSource(seed), best)
}

// NewWithSource is New with an explicit random source.
func NewWithSource(id string, seed uint64, src board.Source, best int) *Game {
	g := &Game{
		ID:    id,
		Seed:  seed,
		Board: board.New(src),
		Best:  best,
		State: StatePlaying,
		src:   src,
	}
	for i := range g.Tray {
		g.Tray[i] = src.TileValue()
	}
	return g
}

// Observe installs o. Passing nil removes the observer.
func (g *Game) Observe(o Observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observer = o
}

// Owner returns the player id the game belongs to.
func (g *Game) Owner() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.owner
}

// SetOwner hands the game to player.
func (g *Game) SetOwner(player string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.owner = player
}

// TotalScore combines the two axis scores: the product when both are
// non-zero, otherwise whichever one is non-zero (or 0).
func TotalScore(horizontal, vertical int) int {
	switch {
	case horizontal > 0 && vertical > 0:
		return horizontal * vertical
	case horizontal > 0:
		return horizontal
	case vertical > 0:
		return vertical
	}
	return 0
}

// PlaceFromTray places the tray tile in slot at p and refills the slot.
func (g *Game) PlaceFromTray(slot int, p board.Pos) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if slot < 0 || slot >= TraySize {
		return Outcome{}, ErrBadSlot
	}
	out, err := g.resolve(p, g.Tray[slot])
	if err != nil {
		return out, err
	}
	g.Tray[slot] = g.src.TileValue()
	return out, nil
}

// Resolve places a tile of value at p and applies any matches.
func (g *Game) Resolve(p board.Pos, value int) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resolve(p, value)
}

func (g *Game) resolve(p board.Pos, value int) (Outcome, error) {
	if g.State == StateOver {
		return Outcome{}, ErrGameOver
	}
	if err := g.Board.Place(p, value); err != nil {
		return Outcome{}, fmt.Errorf("place (%d,%d): %w", p.Row, p.Col, err)
	}
	g.Placements++

	res := match.Scan(g.Board, p)
	out := Outcome{
		Placed:     p,
		Value:      value,
		Horizontal: res.Horizontal,
		Vertical:   res.Vertical,
		Points:     TotalScore(res.Horizontal.Score, res.Vertical.Score),
	}
	log.Debug().
		Str("gameId", g.ID).
		Int("row", p.Row).Int("col", p.Col).Int("value", value).
		Object("horizontal", res.Horizontal).
		Object("vertical", res.Vertical).
		Int("points", out.Points).
		Msg("placement")

	if out.Points > 0 {
		g.Score += out.Points
		out.Cleared = res.ValidCells()
		for _, c := range out.Cleared {
			g.Board.Clear(c)
		}
		if g.Score > g.Best {
			g.Best = g.Score
			out.NewBest = true
		}
	}

	if g.observer != nil {
		g.observer.Redraw(g.ID, g.Board.Cells())
	}

	if g.Board.IsFull() {
		g.State = StateOver
		if g.observer != nil {
			g.observer.GameOver(g.ID, g.Score)
		}
	}

	out.Score, out.Best, out.State = g.Score, g.Best, g.State
	return out, nil
}

// Snapshot returns a consistent copy of the game.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{
		ID:         g.ID,
		Board:      g.Board.Cells(),
		Tray:       g.Tray,
		Score:      g.Score,
		Best:       g.Best,
		Placements: g.Placements,
		State:      g.State,
	}
}
