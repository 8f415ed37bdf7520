// internal/board/board.go
//
// Board state for a single game.
// Responsibilities:
//   - Own the 6x6 grid of cells.
//   - Seed the four red tiles at construction.
//   - Place normal tiles (rejecting occupied/out-of-range targets).
//   - Clear cells: red tiles regenerate in place, normal tiles vacate.
//
// Notes:
//   - Board is not safe for concurrent use; the owning game serializes access.
//   - Random values come from the Source collaborator.
package board

import (
	"encoding/json"
	"errors"
)

var (
	ErrOutOfRange = errors.New("position out of range")
	ErrOccupied   = errors.New("cell occupied")
	ErrBadValue   = errors.New("tile value out of range")
)

// Board is the 6x6 grid.
type Board struct {
	cells [Size][Size]Cell
	src   Source
}

// New returns a board with red tiles rolled at every RedSeeds position.
func New(src Source) *Board {
	b := &Board{src: src}
	for _, p := range RedSeeds {
		b.cells[p.Row][p.Col] = RedTile(src.RedValue())
	}
	return b
}

// FromCells builds a board from an explicit grid.
// The grid is copied; src is used for later red regeneration.
func FromCells(src Source, cells [Size][Size]Cell) *Board {
	return &Board{cells: cells, src: src}
}

// Get returns the cell at p. Out-of-range p panics.
func (b *Board) Get(p Pos) Cell {
	return b.cells[p.Row][p.Col]
}

// Place puts a normal tile of value v at p.
// The board is left untouched when an error is returned.
func (b *Board) Place(p Pos, v int) error {
	if !p.In() {
		return ErrOutOfRange
	}
	if v < TileMin || v > TileMax {
		return ErrBadValue
	}
	if !b.cells[p.Row][p.Col].IsEmpty() {
		return ErrOccupied
	}
	b.cells[p.Row][p.Col] = Tile(v)
	return nil
}

// Clear removes the tile at p. Red tiles are replaced with a fresh red roll.
func (b *Board) Clear(p Pos) {
	if b.cells[p.Row][p.Col].IsRed() {
		b.cells[p.Row][p.Col] = RedTile(b.src.RedValue())
		return
	}
	b.cells[p.Row][p.Col] = Cell{}
}

// IsFull reports whether all 36 cells are occupied.
func (b *Board) IsFull() bool {
	return b.Filled() == Size*Size
}

// Filled counts occupied cells.
func (b *Board) Filled() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b.cells[r][c].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Size][Size]Cell {
	return b.cells
}

// MarshalJSON encodes the board as a row-major 6x6 array.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.cells)
}
