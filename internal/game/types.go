// internal/game/types.go
//
// Core type definitions for the tile game.
// Defines:
//   - State: playing → over (terminal).
//   - Game: state for a single session (board, score, tray).
//   - Outcome: everything a placement produced.
//   - Observer: redraw and game-over notifications.

package game

import (
	"sync"

	"github.com/robalobadob/balance/internal/board"
	"github.com/robalobadob/balance/internal/match"
)

// State is the coarse game state.
type State string

const (
	StatePlaying State = "playing"
	StateOver    State = "over"
)

// TraySize is the number of tiles offered to the player at once.
const TraySize = 6

// Game holds the state of a single session.
// All mutating methods take mu; Board must not be touched from outside
// while the game is shared.
type Game struct {
	ID         string
	Seed       uint64
	Board      *board.Board
	Tray       [TraySize]int
	Score      int // running total, never decreases
	Best       int // highest score known for the player, including this game
	Placements int
	State      State

	src      board.Source
	observer Observer
	owner    string // player id: user id or anonymous cookie id
	mu       sync.Mutex
}

// Outcome reports the result of one placement.
type Outcome struct {
	Placed     board.Pos       `json:"placed"`
	Value      int             `json:"value"`
	Horizontal match.Direction `json:"horizontal"`
	Vertical   match.Direction `json:"vertical"`
	Points     int             `json:"points"`
	Cleared    []board.Pos     `json:"cleared"`
	Score      int             `json:"score"`
	Best       int             `json:"best"`
	NewBest    bool            `json:"newBest"`
	State      State           `json:"state"`
}

// GameOver reports whether this placement ended the game.
func (o Outcome) GameOver() bool { return o.State == StateOver }

// Snapshot is a consistent copy of the public game state.
type Snapshot struct {
	ID         string                            `json:"gameId"`
	Board      [board.Size][board.Size]board.Cell `json:"board"`
	Tray       [TraySize]int                     `json:"tray"`
	Score      int                               `json:"score"`
	Best       int                               `json:"best"`
	Placements int                               `json:"placements"`
	State      State                             `json:"state"`
}

// Observer receives presentation callbacks. Redraw is called after every
// successful placement; GameOver exactly once, when the board fills up.
type Observer interface {
	Redraw(id string, cells [board.Size][board.Size]board.Cell)
	GameOver(id string, final int)
}
