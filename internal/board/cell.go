// internal/board/cell.go
//
// Cell and position types for the 6x6 board.
// Defines:
//   - Kind: tag of a cell (empty, normal tile, red tile).
//   - Cell: tagged variant holding the tile value when occupied.
//   - Pos: 0-indexed (row, col) coordinate.

package board

import "encoding/json"

// Size is the board edge length.
const Size = 6

// Kind tags what a cell holds.
type Kind uint8

const (
	Empty Kind = iota
	Normal
	Red
)

// Value ranges for the two tile kinds.
const (
	TileMin = 0
	TileMax = 9
	RedMin  = 10
	RedMax  = 18
)

// Cell is either empty or occupied by a tile.
// The zero value is an empty cell.
type Cell struct {
	Kind  Kind
	Value int
}

// Tile returns a normal (non-red) tile cell.
func Tile(v int) Cell { return Cell{Kind: Normal, Value: v} }

// RedTile returns a red tile cell.
func RedTile(v int) Cell { return Cell{Kind: Red, Value: v} }

func (c Cell) IsEmpty() bool { return c.Kind == Empty }
func (c Cell) IsRed() bool   { return c.Kind == Red }

// cellJSON is the wire shape of an occupied cell.
type cellJSON struct {
	Value int  `json:"value"`
	Red   bool `json:"red"`
}

// MarshalJSON encodes empty cells as null and tiles as {"value":n,"red":b}.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(cellJSON{Value: c.Value, Red: c.IsRed()})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Cell) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = Cell{}
		return nil
	}
	var v cellJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v.Red {
		*c = RedTile(v.Value)
	} else {
		*c = Tile(v.Value)
	}
	return nil
}

// Pos identifies a cell on the board.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// In reports whether p lies on the board.
func (p Pos) In() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// RedSeeds are the interior corners that start (and stay) red.
var RedSeeds = [4]Pos{{1, 1}, {1, 4}, {4, 1}, {4, 4}}
