package postgres

import (
	"context"
	"errors"

	"gemchat-backend/internal/models"
	"gemchat-backend/internal/utils"

	"gorm.io/gorm"
)

type ConversationRepo interface {
	Create(ctx context.Context, userID uint64, title string) (*models.Conversation, error)
	ListByUser(ctx context.Context, userID uint64) ([]models.Conversation, error)
	GetByOwner(ctx context.Context, userID, conversationID uint64) (*models.Conversation, error)
	MigrateOrphans(ctx context.Context, userID uint64) (bool, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) Create(ctx context.Context, userID uint64, title string) (*models.Conversation, error) {
	if title == "" {
		title = models.DefaultConversationTitle
	}
	convo := &models.Conversation{UserID: userID, Title: title}
	if err := r.db.WithContext(ctx).Create(convo).Error; err != nil {
		return nil, err
	}
	return convo, nil
}

func (r *conversationRepo) ListByUser(ctx context.Context, userID uint64) ([]models.Conversation, error) {
	var rows []models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// GetByOwner is the ownership boundary: an id that exists but belongs to a
// different user is reported as not found, identically to a missing id.
func (r *conversationRepo) GetByOwner(ctx context.Context, userID, conversationID uint64) (*models.Conversation, error) {
	var row models.Conversation
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", conversationID, userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// MigrateOrphans assigns every question row of the user that still has a
// NULL conversation_id to the user's oldest conversation, creating a
// "previous conversation" when none exists. The whole sequence runs in one
// transaction so concurrent triggers cannot double-create the fallback.
// Returns true when any row was reassigned; a second call is a no-op.
func (r *conversationRepo) MigrateOrphans(ctx context.Context, userID uint64) (bool, error) {
	migrated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orphans int64
		if err := tx.Model(&models.Question{}).
			Where("user_id = ? AND conversation_id IS NULL", userID).
			Count(&orphans).Error; err != nil {
			return err
		}
		if orphans == 0 {
			return nil
		}

		var target models.Conversation
		err := tx.Where("user_id = ?", userID).
			Order("created_at ASC, id ASC").
			Take(&target).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			target = models.Conversation{UserID: userID, Title: models.LegacyConversationTitle}
			if err := tx.Create(&target).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Model(&models.Question{}).
			Where("user_id = ? AND conversation_id IS NULL", userID).
			Update("conversation_id", target.ID).Error; err != nil {
			return err
		}
		migrated = true
		return nil
	})
	return migrated, err
}
