package services

import (
	"context"

	"gemchat-backend/internal/cache"
	"gemchat-backend/internal/markdown"
	"gemchat-backend/internal/models"
	pgrepo "gemchat-backend/internal/repositories/postgres"
	"gemchat-backend/internal/utils"
)

// titleLimit is how many code points of the first question become the
// conversation title.
const titleLimit = 20

// titleCandidate truncates by rune so a multi-byte character is never split.
func titleCandidate(question string) string {
	r := []rune(question)
	if len(r) > titleLimit {
		r = r[:titleLimit]
	}
	return string(r)
}

type ChatService interface {
	RecordTurn(ctx context.Context, userID, conversationID uint64, question, answer string) error
	Messages(ctx context.Context, userID uint64, conversationID *uint64) ([]models.ChatMessage, error)
}

type chatService struct {
	questions pgrepo.QuestionRepo
	convos    ConversationService
	renderer  markdown.Renderer
	cache     cache.Cache
}

func NewChatService(questions pgrepo.QuestionRepo, convos ConversationService, renderer markdown.Renderer, c cache.Cache) ChatService {
	if c == nil {
		c = cache.Noop{}
	}
	return &chatService{questions: questions, convos: convos, renderer: renderer, cache: c}
}

// RecordTurn appends one (question, answer) pair to the conversation. The
// answer is stored as given, whether it is model output or a recorded error
// string; the log does not distinguish the two.
func (s *chatService) RecordTurn(ctx context.Context, userID, conversationID uint64, question, answer string) error {
	const op = "ChatService.RecordTurn"

	if userID == 0 || conversationID == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and conversation_id are required", nil)
	}
	if question == "" {
		return utils.E(utils.CodeInvalidArgument, op, "question is required", nil)
	}

	q := &models.Question{
		UserID:         userID,
		ConversationID: &conversationID,
		Question:       question,
		Answer:         answer,
	}
	if err := s.questions.Append(ctx, q, titleCandidate(question)); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to record turn", err)
	}
	_ = s.cache.Del(ctx, convoListKey(userID))
	return nil
}

// Messages reconstructs the ordered message sequence for display: two
// messages per turn, the question verbatim and the answer rendered to HTML.
// A nil conversationID selects the most recently updated conversation,
// matching the legacy single-thread view.
func (s *chatService) Messages(ctx context.Context, userID uint64, conversationID *uint64) ([]models.ChatMessage, error) {
	const op = "ChatService.Messages"

	if userID == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if err := s.convos.EnsureMigrated(ctx, userID); err != nil {
		return nil, err
	}

	var target uint64
	if conversationID != nil {
		convo, err := s.convos.Get(ctx, userID, *conversationID)
		if err != nil {
			return nil, err
		}
		target = convo.ID
	} else {
		convos, err := s.convos.List(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(convos) == 0 {
			return []models.ChatMessage{}, nil
		}
		target = convos[0].ID
	}

	rows, err := s.questions.ListByConversation(ctx, userID, target)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list questions", err)
	}

	msgs := make([]models.ChatMessage, 0, len(rows)*2)
	for _, row := range rows {
		msgs = append(msgs, models.ChatMessage{
			Role:    models.RoleUser,
			Content: row.Question,
		})
		html, err := s.renderer.Render(row.Answer)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to render answer", err)
		}
		msgs = append(msgs, models.ChatMessage{
			Role:           models.RoleAssistant,
			Content:        html,
			IsRenderedHTML: true,
		})
	}
	return msgs, nil
}
