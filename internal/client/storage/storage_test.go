package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase_InMemory(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'session'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestInitDatabase_CreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO session(key, value) VALUES ('token', 'abc')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening runs migrations again and keeps the data.
	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var v string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = 'token'`).Scan(&v))
	assert.Equal(t, "abc", v)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))
}

func TestIsDSN(t *testing.T) {
	assert.True(t, isDSN(":memory:"))
	assert.True(t, isDSN("file:x?mode=memory"))
	assert.False(t, isDSN("data/session.db"))
}
