package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource hands out red values in order (repeating the last one)
// and a constant tile value.
type seqSource struct {
	reds []int
	tile int
}

func (s *seqSource) RedValue() int {
	v := s.reds[0]
	if len(s.reds) > 1 {
		s.reds = s.reds[1:]
	}
	return v
}

func (s *seqSource) TileValue() int { return s.tile }

func TestNewSeedsRedCorners(t *testing.T) {
	b := New(&seqSource{reds: []int{10, 11, 12, 13}})

	want := map[Pos]int{{1, 1}: 10, {1, 4}: 11, {4, 1}: 12, {4, 4}: 13}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := Pos{r, c}
			cell := b.Get(p)
			if v, ok := want[p]; ok {
				assert.True(t, cell.IsRed(), "expected red at %v", p)
				assert.Equal(t, v, cell.Value)
				continue
			}
			assert.True(t, cell.IsEmpty(), "expected empty at %v", p)
		}
	}
	assert.Equal(t, 4, b.Filled())
}

func TestPlace(t *testing.T) {
	b := New(&seqSource{reds: []int{10}})

	require.NoError(t, b.Place(Pos{0, 0}, 7))
	assert.Equal(t, Tile(7), b.Get(Pos{0, 0}))

	assert.ErrorIs(t, b.Place(Pos{0, 0}, 3), ErrOccupied)
	assert.Equal(t, Tile(7), b.Get(Pos{0, 0}), "occupied placement must not mutate")

	assert.ErrorIs(t, b.Place(Pos{1, 1}, 3), ErrOccupied, "red seed is occupied")
	assert.ErrorIs(t, b.Place(Pos{6, 0}, 3), ErrOutOfRange)
	assert.ErrorIs(t, b.Place(Pos{0, -1}, 3), ErrOutOfRange)
	assert.ErrorIs(t, b.Place(Pos{0, 1}, 10), ErrBadValue)
	assert.ErrorIs(t, b.Place(Pos{0, 1}, -1), ErrBadValue)
	assert.True(t, b.Get(Pos{0, 1}).IsEmpty())
}

func TestClearRegeneratesRed(t *testing.T) {
	src := &seqSource{reds: []int{10, 10, 10, 10, 17}}
	b := New(src)

	b.Clear(Pos{1, 1})
	cell := b.Get(Pos{1, 1})
	assert.True(t, cell.IsRed())
	assert.Equal(t, 17, cell.Value)
}

func TestClearVacatesNormal(t *testing.T) {
	b := New(&seqSource{reds: []int{10}})
	require.NoError(t, b.Place(Pos{2, 3}, 5))

	b.Clear(Pos{2, 3})
	assert.True(t, b.Get(Pos{2, 3}).IsEmpty())
}

func TestIsFull(t *testing.T) {
	src := &seqSource{reds: []int{10}}
	b := New(src)
	assert.False(t, b.IsFull())

	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Get(Pos{r, c}).IsEmpty() {
				require.NoError(t, b.Place(Pos{r, c}, 1))
				n++
			}
			if n < Size*Size-4 {
				assert.False(t, b.IsFull())
			}
		}
	}
	assert.True(t, b.IsFull())

	b.Clear(Pos{5, 5})
	assert.False(t, b.IsFull())
}

func TestCellsIsACopy(t *testing.T) {
	b := New(&seqSource{reds: []int{10}})
	cells := b.Cells()
	cells[0][0] = Tile(3)
	assert.True(t, b.Get(Pos{0, 0}).IsEmpty())
}

func TestBoardJSON(t *testing.T) {
	var cells [Size][Size]Cell
	cells[0][0] = Tile(4)
	cells[1][1] = RedTile(15)
	b := FromCells(&seqSource{reds: []int{10}}, cells)

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var got [][]*struct {
		Value int  `json:"value"`
		Red   bool `json:"red"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, Size)
	require.NotNil(t, got[0][0])
	assert.Equal(t, 4, got[0][0].Value)
	assert.False(t, got[0][0].Red)
	require.NotNil(t, got[1][1])
	assert.True(t, got[1][1].Red)
	assert.Nil(t, got[0][1])

	var back [Size][Size]Cell
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, cells, back)
}

func TestSourceRanges(t *testing.T) {
	src := NewSource(42)
	seenRed := map[int]bool{}
	seenTile := map[int]bool{}
	for i := 0; i < 2000; i++ {
		r := src.RedValue()
		require.GreaterOrEqual(t, r, RedMin)
		require.LessOrEqual(t, r, RedMax)
		seenRed[r] = true

		v := src.TileValue()
		require.GreaterOrEqual(t, v, TileMin)
		require.LessOrEqual(t, v, TileMax)
		seenTile[v] = true
	}
	assert.Len(t, seenRed, RedMax-RedMin+1)
	assert.Len(t, seenTile, TileMax-TileMin+1)
}

func TestSourceSeedIsReproducible(t *testing.T) {
	a, b := NewSource(7), NewSource(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.TileValue(), b.TileValue())
		assert.Equal(t, a.RedValue(), b.RedValue())
	}
}
