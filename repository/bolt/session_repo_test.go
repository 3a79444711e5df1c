package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/membersbook/backend/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_CurrentWithoutSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_SaveAndCurrent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Session{UserID: "user_1"}))

	session, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user_1", session.UserID)
	assert.False(t, session.CreatedAt.IsZero())
}

func TestStore_SaveOverwritesPreviousSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Session{UserID: "user_1"}))
	require.NoError(t, store.Save(ctx, &domain.Session{UserID: "user_2"}))

	session, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user_2", session.UserID)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Session{UserID: "user_1"}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Clearing an empty store is fine.
	assert.NoError(t, store.Clear(ctx))
}

func TestStore_SaveRejectsEmptyUserID(t *testing.T) {
	store := newTestStore(t)

	err := store.Save(context.Background(), &domain.Session{})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}
