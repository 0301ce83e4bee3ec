package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/meeledger/internal/storage"
	"github.com/MrJamesThe3rd/meeledger/internal/storage/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	_, err := s.Get(ctx, "budget_tx")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Put(ctx, "budget_tx", "[]"))
	require.NoError(t, s.Put(ctx, "budget_start", "1"))
	require.NoError(t, s.Put(ctx, "budget_start", "2"))

	got, err := s.Get(ctx, "budget_start")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	require.NoError(t, s.Delete(ctx, "budget_tx", "budget_start", "missing"))
	assert.Empty(t, s.Dump())
}
