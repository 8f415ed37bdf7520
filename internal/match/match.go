// internal/match/match.go
//
// Match detection and scoring for a single placement.
// Responsibilities:
//   - Extract the occupied cells of the placed tile's row and column.
//   - Enumerate every run of >= 3 board-adjacent cells within each line.
//   - Apply the balance rule: a run is valid when its first or last value
//     equals the sum of the other values in the run.
//   - Score each axis as the sum of max(values) over its valid runs.
//
// Everything here is pure; the board is only read.
package match

import (
	"github.com/robalobadob/balance/internal/board"
)

// MinRun is the shortest run that can form a combination.
const MinRun = 3

// Axis selects which line through the placed cell is scanned.
type Axis string

const (
	Horizontal Axis = "horizontal"
	Vertical   Axis = "vertical"
)

// Grid is the read side of a board.
type Grid interface {
	Get(p board.Pos) board.Cell
}

// Entry is an occupied cell of a line with its board coordinates.
type Entry struct {
	Pos   board.Pos
	Value int
	Red   bool
}

// Combination is a run of board-adjacent cells within a line.
type Combination struct {
	Cells  []board.Pos `json:"cells"`
	Values []int       `json:"values"`
	Sum    int         `json:"sum"`
	Valid  bool        `json:"valid"`
}

// Max returns the largest value in the run.
func (c Combination) Max() int {
	m := c.Values[0]
	for _, v := range c.Values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Direction is the scan result for one axis.
type Direction struct {
	Axis         Axis          `json:"axis"`
	Combinations []Combination `json:"combinations"`
	Score        int           `json:"score"`
}

// Result holds both axes for a placement.
type Result struct {
	Horizontal Direction `json:"horizontal"`
	Vertical   Direction `json:"vertical"`
}

// Scan evaluates the row and column through p.
func Scan(g Grid, p board.Pos) Result {
	return Result{
		Horizontal: scanAxis(g, p, Horizontal),
		Vertical:   scanAxis(g, p, Vertical),
	}
}

func scanAxis(g Grid, p board.Pos, axis Axis) Direction {
	combos := Combinations(Line(g, p, axis), axis)
	return Direction{Axis: axis, Combinations: combos, Score: Score(combos)}
}

// Line walks the row (horizontal) or column (vertical) through p in index
// order and keeps the occupied cells.
func Line(g Grid, p board.Pos, axis Axis) []Entry {
	line := make([]Entry, 0, board.Size)
	for i := 0; i < board.Size; i++ {
		at := board.Pos{Row: p.Row, Col: i}
		if axis == Vertical {
			at = board.Pos{Row: i, Col: p.Col}
		}
		c := g.Get(at)
		if c.IsEmpty() {
			continue
		}
		line = append(line, Entry{Pos: at, Value: c.Value, Red: c.IsRed()})
	}
	return line
}

// Combinations returns every sub-range line[i..j] with j >= i+2 whose
// neighbouring cells are adjacent on the board along axis. Sub-ranges that
// bridge an empty cell are left out.
func Combinations(line []Entry, axis Axis) []Combination {
	var out []Combination
	for i := 0; i+MinRun <= len(line); i++ {
		for j := i + MinRun - 1; j < len(line); j++ {
			run := line[i : j+1]
			if !adjacent(run, axis) {
				continue
			}
			out = append(out, newCombination(run))
		}
	}
	return out
}

// adjacent reports whether each entry sits exactly one step after the
// previous one along axis.
func adjacent(run []Entry, axis Axis) bool {
	for k := 1; k < len(run); k++ {
		prev, cur := run[k-1].Pos, run[k].Pos
		switch axis {
		case Horizontal:
			if cur.Row != prev.Row || cur.Col != prev.Col+1 {
				return false
			}
		case Vertical:
			if cur.Col != prev.Col || cur.Row != prev.Row+1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func newCombination(run []Entry) Combination {
	c := Combination{
		Cells:  make([]board.Pos, len(run)),
		Values: make([]int, len(run)),
	}
	for k, e := range run {
		c.Cells[k] = e.Pos
		c.Values[k] = e.Value
		c.Sum += e.Value
	}
	c.Valid = Balanced(c.Values, c.Sum)
	return c
}

// Balanced is the balance rule: the last or the first value equals
// the sum of the remaining values.
func Balanced(values []int, sum int) bool {
	if len(values) == 0 {
		return false
	}
	first, last := values[0], values[len(values)-1]
	return sum-last == last || first == sum-first
}

// Score sums max(values) over the valid combinations. Overlapping runs
// each count on their own.
func Score(combos []Combination) int {
	score := 0
	for _, c := range combos {
		if c.Valid {
			score += c.Max()
		}
	}
	return score
}

// ValidCells returns the positions of every valid combination in r,
// each position once, in first-seen order (horizontal before vertical).
func (r Result) ValidCells() []board.Pos {
	seen := make(map[board.Pos]struct{})
	var out []board.Pos
	for _, d := range []Direction{r.Horizontal, r.Vertical} {
		for _, c := range d.Combinations {
			if !c.Valid {
				continue
			}
			for _, p := range c.Cells {
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	return out
}
