package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gemchat-backend/internal/markdown"
	"gemchat-backend/internal/models"
	pgrepo "gemchat-backend/internal/repositories/postgres"
)

type testEnv struct {
	db     *gorm.DB
	users  UserService
	convos ConversationService
	chat   ChatService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, pgrepo.EnsureSchema(db))

	convos := NewConversationService(pgrepo.NewConversationRepo(db), nil)
	return &testEnv{
		db:     db,
		users:  NewUserService(pgrepo.NewUserRepo(db)),
		convos: convos,
		chat:   NewChatService(pgrepo.NewQuestionRepo(db), convos, markdown.New(), nil),
	}
}

func (e *testEnv) insertOrphan(t *testing.T, userID uint64, question, answer string) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Question{
		UserID:   userID,
		Question: question,
		Answer:   answer,
	}).Error)
}
