package postgres

import (
	"context"
	"time"

	"gemchat-backend/internal/models"

	"gorm.io/gorm"
)

type QuestionRepo interface {
	Append(ctx context.Context, q *models.Question, titleCandidate string) error
	ListByConversation(ctx context.Context, userID, conversationID uint64) ([]models.Question, error)
}

type questionRepo struct {
	db *gorm.DB
}

func NewQuestionRepo(db *gorm.DB) QuestionRepo {
	return &questionRepo{db: db}
}

// Append inserts the turn and touches the owning conversation in one
// transaction. The conversation title is replaced by titleCandidate only
// while it still carries the sentinel default, so the first question names
// the thread and later ones never rename it.
func (r *questionRepo) Append(ctx context.Context, q *models.Question, titleCandidate string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		if q.ConversationID == nil {
			return nil
		}
		if titleCandidate != "" {
			if err := tx.Model(&models.Conversation{}).
				Where("id = ? AND user_id = ? AND title = ?",
					*q.ConversationID, q.UserID, models.DefaultConversationTitle).
				Update("title", titleCandidate).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ? AND user_id = ?", *q.ConversationID, q.UserID).
			Update("updated_at", time.Now().UTC()).Error
	})
}

// ListByConversation returns the conversation's turns oldest first. A
// conversation that does not belong to the user yields an empty slice,
// indistinguishable from one with no entries.
func (r *questionRepo) ListByConversation(ctx context.Context, userID, conversationID uint64) ([]models.Question, error) {
	var rows []models.Question
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
