package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gemchat-backend/internal/models"
)

func appendTurn(t *testing.T, repo QuestionRepo, userID, convoID uint64, question, answer, candidate string) {
	t.Helper()
	require.NoError(t, repo.Append(context.Background(), &models.Question{
		UserID:         userID,
		ConversationID: &convoID,
		Question:       question,
		Answer:         answer,
	}, candidate))
}

func TestAppendRenamesSentinelTitleOnce(t *testing.T) {
	db := newTestDB(t)
	convos := NewConversationRepo(db)
	questions := NewQuestionRepo(db)
	user := createTestUser(t, db, "alice")
	ctx := context.Background()

	convo, err := convos.Create(ctx, user.ID, "")
	require.NoError(t, err)

	appendTurn(t, questions, user.ID, convo.ID, "what is the capital of France", "Paris", "what is the capital ")

	got, err := convos.GetByOwner(ctx, user.ID, convo.ID)
	require.NoError(t, err)
	require.Equal(t, "what is the capital ", got.Title)

	// A later question never renames again.
	appendTurn(t, questions, user.ID, convo.ID, "and of Germany?", "Berlin", "and of Germany?")

	got, err = convos.GetByOwner(ctx, user.ID, convo.ID)
	require.NoError(t, err)
	require.Equal(t, "what is the capital ", got.Title)
}

func TestAppendAdvancesUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	convos := NewConversationRepo(db)
	questions := NewQuestionRepo(db)
	user := createTestUser(t, db, "alice")
	ctx := context.Background()

	convo, err := convos.Create(ctx, user.ID, "")
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, db.Model(&models.Conversation{}).
		Where("id = ?", convo.ID).
		Update("updated_at", past).Error)

	appendTurn(t, questions, user.ID, convo.ID, "q", "a", "q")

	got, err := convos.GetByOwner(ctx, user.ID, convo.ID)
	require.NoError(t, err)
	require.True(t, got.UpdatedAt.After(past))
}

func TestListByConversationOrdersAscending(t *testing.T) {
	db := newTestDB(t)
	convos := NewConversationRepo(db)
	questions := NewQuestionRepo(db)
	user := createTestUser(t, db, "alice")
	ctx := context.Background()

	convo, err := convos.Create(ctx, user.ID, "")
	require.NoError(t, err)

	for _, q := range []string{"first", "second", "third"} {
		appendTurn(t, questions, user.ID, convo.ID, q, "answer to "+q, q)
	}

	rows, err := questions.ListByConversation(ctx, user.ID, convo.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "first", rows[0].Question)
	require.Equal(t, "second", rows[1].Question)
	require.Equal(t, "third", rows[2].Question)
}

func TestListByConversationScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	convos := NewConversationRepo(db)
	questions := NewQuestionRepo(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	convo, err := convos.Create(ctx, bob.ID, "")
	require.NoError(t, err)
	appendTurn(t, questions, bob.ID, convo.ID, "bob's secret", "shh", "bob's secret")

	rows, err := questions.ListByConversation(ctx, alice.ID, convo.ID)
	require.NoError(t, err)
	require.Empty(t, rows)
}
