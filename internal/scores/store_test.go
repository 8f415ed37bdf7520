package scores

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/balance/internal/database"
	"github.com/robalobadob/balance/migrations"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db, migrations.FS))
	return db
}

func addUser(t *testing.T, db *sql.DB, id, name string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		id, name, "x", time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, err)
}

func TestRecordHighOnlyIncreases(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newTestDB(t))

	best, err := s.High(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, best)

	best, err = s.RecordHigh(ctx, "p1", 15)
	require.NoError(t, err)
	assert.Equal(t, 15, best)

	best, err = s.RecordHigh(ctx, "p1", 9)
	require.NoError(t, err)
	assert.Equal(t, 15, best)

	best, err = s.RecordHigh(ctx, "p1", 40)
	require.NoError(t, err)
	assert.Equal(t, 40, best)
}

func TestMergeKeepsBest(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newTestDB(t))

	_, err := s.RecordHigh(ctx, "anon", 30)
	require.NoError(t, err)
	_, err = s.RecordHigh(ctx, "user", 20)
	require.NoError(t, err)

	require.NoError(t, s.Merge(ctx, "anon", "user"))
	best, err := s.High(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, 30, best)

	require.NoError(t, s.Merge(ctx, "nobody", "user"))
	best, _ = s.High(ctx, "user")
	assert.Equal(t, 30, best)
}

func TestGameHistory(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := NewStore(db)
	addUser(t, db, "u1", "alice")

	require.NoError(t, s.StartGame(ctx, "g1", 1<<63+5, Owner{AnonymousID: "anon"}))
	require.NoError(t, s.StartGame(ctx, "g2", 7, Owner{UserID: "u1"}))
	require.NoError(t, s.UpdateGame(ctx, "g1", 12, 3, false))
	require.NoError(t, s.UpdateGame(ctx, "g1", 20, 36, true))

	rows, err := s.RecentGames(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "g2", rows[0].ID)

	require.NoError(t, s.ClaimGames(ctx, "anon", "u1"))
	rows, err = s.RecentGames(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var g1 GameRow
	for _, r := range rows {
		if r.ID == "g1" {
			g1 = r
		}
	}
	assert.Equal(t, "over", g1.Status)
	assert.Equal(t, 20, g1.Score)
	assert.Equal(t, 36, g1.Placements)
	assert.NotEmpty(t, g1.FinishedAt)
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	s := NewStore(db)
	addUser(t, db, "u1", "alice")
	addUser(t, db, "u2", "bob")
	addUser(t, db, "u3", "carol")

	_, _ = s.RecordHigh(ctx, "u1", 50)
	_, _ = s.RecordHigh(ctx, "u2", 80)
	_, _ = s.RecordHigh(ctx, "anon", 999) // guests are not ranked

	rows, err := s.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, LBRow{Username: "bob", Score: 80}, rows[0])
	assert.Equal(t, LBRow{Username: "alice", Score: 50}, rows[1])

	rows, err = s.Leaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestOwnerPlayerID(t *testing.T) {
	assert.Equal(t, "u", Owner{UserID: "u", AnonymousID: "a"}.PlayerID())
	assert.Equal(t, "a", Owner{AnonymousID: "a"}.PlayerID())
}
