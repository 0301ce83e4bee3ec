package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/meeledger/internal/database"
	"github.com/MrJamesThe3rd/meeledger/internal/storage"
	"github.com/MrJamesThe3rd/meeledger/internal/storage/sqlite"
)

func setupStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "ledger.db")

	db, err := database.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlite.New(db), path
}

func TestStore_GetPutDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := setupStore(t)

	_, err := s.Get(ctx, "budget_tx")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Put(ctx, "budget_tx", `[{"id":"a"}]`))
	require.NoError(t, s.Put(ctx, "budget_tx", `[]`))
	require.NoError(t, s.Put(ctx, "mee_theme", "light"))

	got, err := s.Get(ctx, "budget_tx")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	require.NoError(t, s.Delete(ctx, "budget_tx", "budget_start"))

	_, err = s.Get(ctx, "budget_tx")
	require.ErrorIs(t, err, storage.ErrNotFound)

	theme, err := s.Get(ctx, "mee_theme")
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	require.NoError(t, s.Delete(ctx))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s, path := setupStore(t)

	require.NoError(t, s.Put(ctx, "budget_start", "-120.5"))

	db, err := database.New(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := sqlite.New(db).Get(ctx, "budget_start")
	require.NoError(t, err)
	assert.Equal(t, "-120.5", got)
}
