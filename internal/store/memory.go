// internal/store/memory.go
//
// In-memory implementation of the game Store interface.
// Live game sessions are only ever held here; there is no mid-game
// save/load, so a restart ends every running game.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via a mutex (Get also records use, so it locks exclusively).
//   - Once the map reaches its limit, finished games are dropped first; if
//     none are finished, the least recently used session goes.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/balance/internal/game"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("not found")

// DefaultLimit bounds how many sessions are kept in memory.
const DefaultLimit = 10000

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	// Returns ErrNotFound if the game is not present.
	Get(ctx context.Context, id string) (*game.Game, error)
}

type entry struct {
	g    *game.Game
	used uint64 // value of memory.clock at last Save/Get
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.Mutex        // guards games and clock
	games map[string]*entry // keyed by Game.ID
	clock uint64
	limit int
}

// NewMemoryStore constructs a new in-memory Store holding at most limit
// sessions. limit <= 0 uses DefaultLimit.
func NewMemoryStore(limit int) Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &memory{games: make(map[string]*entry), limit: limit}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clock++
	if e, ok := m.games[g.ID]; ok {
		e.g, e.used = g, m.clock
		return nil
	}
	if len(m.games) >= m.limit {
		m.evictLocked()
	}
	m.games[g.ID] = &entry{g: g, used: m.clock}
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	m.clock++
	e.used = m.clock
	return e.g, nil
}

// evictLocked drops every finished game, or the least recently used
// one when all are still playing. Caller holds mu.
func (m *memory) evictLocked() {
	var oldest string
	var oldestUsed uint64
	for id, e := range m.games {
		if e.g.Snapshot().State == game.StateOver {
			delete(m.games, id)
			continue
		}
		if oldest == "" || e.used < oldestUsed {
			oldest, oldestUsed = id, e.used
		}
	}
	if len(m.games) >= m.limit && oldest != "" {
		delete(m.games, oldest)
	}
}
