package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gemchat-backend/internal/cache"
	"gemchat-backend/internal/models"
	pgrepo "gemchat-backend/internal/repositories/postgres"
	"gemchat-backend/internal/utils"
)

const convoListTTL = 60 * time.Second

func convoListKey(userID uint64) string {
	return fmt.Sprintf("conversations:%d", userID)
}

type ConversationService interface {
	Create(ctx context.Context, userID uint64) (*models.Conversation, error)
	StartOrContinue(ctx context.Context, userID uint64, conversationID *uint64) (*models.Conversation, error)
	List(ctx context.Context, userID uint64) ([]models.Conversation, error)
	Get(ctx context.Context, userID, conversationID uint64) (*models.Conversation, error)
	EnsureMigrated(ctx context.Context, userID uint64) error
}

type conversationService struct {
	convos pgrepo.ConversationRepo
	cache  cache.Cache
}

func NewConversationService(convos pgrepo.ConversationRepo, c cache.Cache) ConversationService {
	if c == nil {
		c = cache.Noop{}
	}
	return &conversationService{convos: convos, cache: c}
}

func (s *conversationService) Create(ctx context.Context, userID uint64) (*models.Conversation, error) {
	const op = "ConversationService.Create"

	if userID == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	convo, err := s.convos.Create(ctx, userID, models.DefaultConversationTitle)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create conversation", err)
	}
	_ = s.cache.Del(ctx, convoListKey(userID))
	return convo, nil
}

// StartOrContinue validates ownership of the referenced conversation and
// falls back to a fresh one when the reference is absent, stale or foreign.
// A bad conversation id must never block the chat flow.
func (s *conversationService) StartOrContinue(ctx context.Context, userID uint64, conversationID *uint64) (*models.Conversation, error) {
	const op = "ConversationService.StartOrContinue"

	if userID == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if conversationID != nil {
		convo, err := s.convos.GetByOwner(ctx, userID, *conversationID)
		if err == nil {
			return convo, nil
		}
		if !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to look up conversation", err)
		}
	}
	return s.Create(ctx, userID)
}

// List returns the user's conversations most recently updated first. The
// legacy migration runs first so pre-threading rows surface as a thread.
func (s *conversationService) List(ctx context.Context, userID uint64) ([]models.Conversation, error) {
	const op = "ConversationService.List"

	if userID == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if err := s.EnsureMigrated(ctx, userID); err != nil {
		return nil, err
	}

	key := convoListKey(userID)
	var cached []models.Conversation
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.convos.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list conversations", err)
	}
	_ = s.cache.SetJSON(ctx, key, rows, convoListTTL)
	return rows, nil
}

func (s *conversationService) Get(ctx context.Context, userID, conversationID uint64) (*models.Conversation, error) {
	const op = "ConversationService.Get"

	if userID == 0 || conversationID == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and conversation_id are required", nil)
	}
	convo, err := s.convos.GetByOwner(ctx, userID, conversationID)
	if errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeNotFound, op, "conversation not found", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to get conversation", err)
	}
	return convo, nil
}

// EnsureMigrated is idempotent per user: after the first effective run the
// orphan check finds nothing and the call is a cheap no-op. Failures are
// safe to retry on the next read.
func (s *conversationService) EnsureMigrated(ctx context.Context, userID uint64) error {
	const op = "ConversationService.EnsureMigrated"

	migrated, err := s.convos.MigrateOrphans(ctx, userID)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to migrate legacy questions", err)
	}
	if migrated {
		_ = s.cache.Del(ctx, convoListKey(userID))
	}
	return nil
}
