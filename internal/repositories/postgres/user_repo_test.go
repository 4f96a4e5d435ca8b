package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetOrCreateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	created, err := repo.GetOrCreate(ctx, "alice", "a@x.com")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	again, err := repo.GetOrCreate(ctx, "alice", "a@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, again.ID)
}

func TestGetOrCreateMatchesExactPair(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, "alice", "a@x.com")
	require.NoError(t, err)

	// Same username with a different email is a different identity.
	second, err := repo.GetOrCreate(ctx, "alice", "other@x.com")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	// No casing normalization.
	third, err := repo.GetOrCreate(ctx, "Alice", "a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, third.ID)
}
