package match

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/balance/internal/board"
)

// rowBoard places values along row 0 starting at col 0; -1 leaves a gap.
func rowBoard(values ...int) *board.Board {
	var cells [board.Size][board.Size]board.Cell
	for c, v := range values {
		if v >= 0 {
			cells[0][c] = board.Tile(v)
		}
	}
	return board.FromCells(nil, cells)
}

func colBoard(col int, values ...int) *board.Board {
	var cells [board.Size][board.Size]board.Cell
	for r, v := range values {
		if v >= 0 {
			cells[r][col] = board.Tile(v)
		}
	}
	return board.FromCells(nil, cells)
}

func TestBalanced(t *testing.T) {
	cases := []struct {
		values []int
		want   bool
	}{
		{[]int{3, 4, 7}, true},
		{[]int{7, 3, 4}, true},
		{[]int{2, 2, 2}, false},
		{[]int{1, 1, 2}, true},
		{[]int{0, 0, 0}, true},
		{[]int{5, 1, 1}, false},
		{[]int{10, 6, 4}, true},
		{[]int{1, 2, 3, 6}, true},
		{[]int{1, 1, 2, 3}, false},
	}
	for _, tc := range cases {
		sum := 0
		for _, v := range tc.values {
			sum += v
		}
		assert.Equal(t, tc.want, Balanced(tc.values, sum), "%v", tc.values)
	}
}

func TestBalancedMatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 5000; n++ {
		values := make([]int, 3+rng.IntN(4))
		for i := range values {
			values[i] = rng.IntN(19)
		}
		sum := 0
		for _, v := range values {
			sum += v
		}
		rest := func(skip int) int {
			s := 0
			for i, v := range values {
				if i != skip {
					s += v
				}
			}
			return s
		}
		want := values[0] == rest(0) || values[len(values)-1] == rest(len(values)-1)
		require.Equal(t, want, Balanced(values, sum), "%v", values)
	}
}

func TestScanSingleValidRun(t *testing.T) {
	b := rowBoard(3, 4, 7)
	res := Scan(b, board.Pos{Row: 0, Col: 2})

	require.Len(t, res.Horizontal.Combinations, 1)
	c := res.Horizontal.Combinations[0]
	assert.Equal(t, []int{3, 4, 7}, c.Values)
	assert.Equal(t, 14, c.Sum)
	assert.True(t, c.Valid)
	assert.Equal(t, 7, res.Horizontal.Score)

	assert.Empty(t, res.Vertical.Combinations)
	assert.Zero(t, res.Vertical.Score)
}

func TestScanEqualValuesIsNotAMatch(t *testing.T) {
	res := Scan(rowBoard(2, 2, 2), board.Pos{Row: 0, Col: 0})

	require.Len(t, res.Horizontal.Combinations, 1)
	assert.False(t, res.Horizontal.Combinations[0].Valid)
	assert.Zero(t, res.Horizontal.Score)
}

func TestCombinationsSkipGaps(t *testing.T) {
	b := rowBoard(3, 4, -1, 7, 1, -1)
	line := Line(b, board.Pos{Row: 0, Col: 3}, Horizontal)
	require.Len(t, line, 4)
	assert.Equal(t, board.Pos{Row: 0, Col: 3}, line[2].Pos)

	combos := Combinations(line, Horizontal)
	assert.Empty(t, combos, "no run of three board-adjacent tiles exists")
}

func TestCombinationsOverlapScoreIndependently(t *testing.T) {
	b := rowBoard(1, 1, 2, 3)
	res := Scan(b, board.Pos{Row: 0, Col: 3})

	combos := res.Horizontal.Combinations
	require.Len(t, combos, 3)
	assert.Equal(t, []int{1, 1, 2}, combos[0].Values)
	assert.True(t, combos[0].Valid)
	assert.Equal(t, []int{1, 1, 2, 3}, combos[1].Values)
	assert.False(t, combos[1].Valid)
	assert.Equal(t, []int{1, 2, 3}, combos[2].Values)
	assert.True(t, combos[2].Valid)
	assert.Equal(t, 2+3, res.Horizontal.Score)

	cells := res.ValidCells()
	assert.Len(t, cells, 4, "shared cells appear once")
}

func TestScanVertical(t *testing.T) {
	b := colBoard(0, 3, 4, 7, -1, 1, 1)
	res := Scan(b, board.Pos{Row: 2, Col: 0})

	require.Len(t, res.Vertical.Combinations, 1)
	assert.Equal(t, []board.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}, res.Vertical.Combinations[0].Cells)
	assert.Equal(t, 7, res.Vertical.Score)
	assert.Empty(t, res.Horizontal.Combinations)
}

func TestScanScoresWholeLine(t *testing.T) {
	// The run on rows 3..5 does not contain the placed cell but still counts.
	b := colBoard(2, 5, -1, -1, 1, 2, 3)
	res := Scan(b, board.Pos{Row: 0, Col: 2})

	require.Len(t, res.Vertical.Combinations, 1)
	assert.Equal(t, []int{1, 2, 3}, res.Vertical.Combinations[0].Values)
	assert.Equal(t, 3, res.Vertical.Score)
}

func TestDiagonalNeighboursAreNotAdjacent(t *testing.T) {
	line := []Entry{
		{Pos: board.Pos{Row: 0, Col: 0}, Value: 1},
		{Pos: board.Pos{Row: 1, Col: 1}, Value: 1},
		{Pos: board.Pos{Row: 2, Col: 2}, Value: 2},
	}
	assert.Empty(t, Combinations(line, Horizontal))
	assert.Empty(t, Combinations(line, Vertical))
}

func TestCombinationsAreAdjacentRunsOnRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for n := 0; n < 300; n++ {
		var cells [board.Size][board.Size]board.Cell
		for r := 0; r < board.Size; r++ {
			for c := 0; c < board.Size; c++ {
				if rng.IntN(3) > 0 {
					cells[r][c] = board.Tile(rng.IntN(10))
				}
			}
		}
		b := board.FromCells(nil, cells)
		p := board.Pos{Row: rng.IntN(board.Size), Col: rng.IntN(board.Size)}
		before := b.Cells()

		res := Scan(b, p)
		for _, d := range []Direction{res.Horizontal, res.Vertical} {
			for _, c := range d.Combinations {
				require.GreaterOrEqual(t, len(c.Cells), MinRun)
				require.Len(t, c.Values, len(c.Cells))
				for k := 1; k < len(c.Cells); k++ {
					prev, cur := c.Cells[k-1], c.Cells[k]
					if d.Axis == Horizontal {
						require.Equal(t, prev.Row, cur.Row)
						require.Equal(t, prev.Col+1, cur.Col)
					} else {
						require.Equal(t, prev.Col, cur.Col)
						require.Equal(t, prev.Row+1, cur.Row)
					}
				}
			}
		}
		require.Equal(t, before, b.Cells(), "scan must not mutate")
	}
}

func TestCombinationString(t *testing.T) {
	c := Combination{Values: []int{3, 4, 7}, Sum: 14, Valid: true}
	assert.Equal(t, "3 + 4 + 7 = 14 (valid)", c.String())
	c.Valid = false
	assert.Equal(t, "3 + 4 + 7 = 14 (invalid)", c.String())
}
