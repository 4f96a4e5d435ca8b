package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gemchat-backend/internal/models"
	"gemchat-backend/internal/utils"
)

func TestListEmptyForFreshUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Resolve(ctx, "alice", "a@x.com")
	require.NoError(t, err)

	rows, err := env.convos.List(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, rows)

	// The migration check wrote nothing.
	var convos int64
	require.NoError(t, env.db.Model(&models.Conversation{}).Count(&convos).Error)
	require.Zero(t, convos)
}

func TestStartOrContinueCreatesWhenAbsent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Resolve(ctx, "alice", "a@x.com")
	require.NoError(t, err)

	convo, err := env.convos.StartOrContinue(ctx, user.ID, nil)
	require.NoError(t, err)
	require.Equal(t, models.DefaultConversationTitle, convo.Title)

	// A valid reference continues the same thread.
	same, err := env.convos.StartOrContinue(ctx, user.ID, &convo.ID)
	require.NoError(t, err)
	require.Equal(t, convo.ID, same.ID)
}

func TestStartOrContinueFallsBackOnStaleReference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Resolve(ctx, "alice", "a@x.com")
	require.NoError(t, err)

	stale := uint64(424242)
	convo, err := env.convos.StartOrContinue(ctx, user.ID, &stale)
	require.NoError(t, err)
	require.NotEqual(t, stale, convo.ID)
	require.Equal(t, models.DefaultConversationTitle, convo.Title)
}

func TestStartOrContinueFallsBackOnForeignReference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, err := env.users.Resolve(ctx, "alice", "a@x.com")
	require.NoError(t, err)
	bob, err := env.users.Resolve(ctx, "bob", "b@x.com")
	require.NoError(t, err)

	bobs, err := env.convos.StartOrContinue(ctx, bob.ID, nil)
	require.NoError(t, err)

	convo, err := env.convos.StartOrContinue(ctx, alice.ID, &bobs.ID)
	require.NoError(t, err)
	require.NotEqual(t, bobs.ID, convo.ID)
	require.Equal(t, alice.ID, convo.UserID)
}

func TestGetRejectsForeignConversation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, err := env.users.Resolve(ctx, "alice", "a@x.com")
	require.NoError(t, err)
	bob, err := env.users.Resolve(ctx, "bob", "b@x.com")
	require.NoError(t, err)

	bobs, err := env.convos.Create(ctx, bob.ID)
	require.NoError(t, err)

	_, err = env.convos.Get(ctx, alice.ID, bobs.ID)
	require.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestLegacyMigrationScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Resolve(ctx, "alice", "a@x.com")
	require.NoError(t, err)

	env.insertOrphan(t, user.ID, "q1", "a1")
	env.insertOrphan(t, user.ID, "q2", "a2")
	env.insertOrphan(t, user.ID, "q3", "a3")

	rows, err := env.convos.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, models.LegacyConversationTitle, rows[0].Title)

	// A second read changes nothing.
	again, err := env.convos.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, again, 1)
	require.Equal(t, rows[0].ID, again[0].ID)

	var orphans int64
	require.NoError(t, env.db.Model(&models.Question{}).
		Where("conversation_id IS NULL").
		Count(&orphans).Error)
	require.Zero(t, orphans)
}
