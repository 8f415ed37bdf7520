// internal/board/source.go
//
// Random source for red and normal tile values.
// The default Source is a seeded PCG, so a seed replays a whole game.

package board

import "math/rand/v2"

// Source supplies tile values. Implementations must return values
// uniformly distributed over the documented ranges.
type Source interface {
	// RedValue returns a value in [RedMin, RedMax].
	RedValue() int
	// TileValue returns a value in [TileMin, TileMax].
	TileValue() int
}

type randSource struct {
	r *rand.Rand
}

// NewSource returns a PCG-backed Source. A zero seed picks a random one,
// any other seed makes the sequence reproducible.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &randSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *randSource) RedValue() int  { return RedMin + s.r.IntN(RedMax-RedMin+1) }
func (s *randSource) TileValue() int { return TileMin + s.r.IntN(TileMax-TileMin+1) }
