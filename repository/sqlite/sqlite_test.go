package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/membersbook/backend/domain"
	sqliteInfra "github.com/membersbook/backend/internal/infrastructure/sqlite"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlx.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqliteInfra.EnsureSchema(context.Background(), db, false, nil))
	return db
}

// stubClock returns a clock that advances one millisecond per call, so
// generated ids never collide inside a test.
func stubClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func newTestUserRepo(t *testing.T, db *sqlx.DB) *userRepository {
	t.Helper()
	return &userRepository{db: db, now: stubClock(time.Unix(1_700_000_000, 0))}
}

func newTestDealRepo(t *testing.T, db *sqlx.DB) *dealRepository {
	t.Helper()
	return &dealRepository{db: db, now: stubClock(time.Unix(1_700_000_000, 0))}
}

func createUser(t *testing.T, repo *userRepository, user domain.UserProfile) domain.UserProfile {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &user))
	return user
}
