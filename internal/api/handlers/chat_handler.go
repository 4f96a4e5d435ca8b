package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gemchat-backend/internal/markdown"
	"gemchat-backend/internal/providers/llm"
	"gemchat-backend/internal/services"
)

type ChatHandler struct {
	convos    services.ConversationService
	chat      services.ChatService
	provider  llm.Provider
	renderer  markdown.Renderer
	log       *logrus.Logger
	aiTimeout time.Duration
}

func NewChatHandler(convos services.ConversationService, chat services.ChatService, provider llm.Provider, renderer markdown.Renderer, l *logrus.Logger, aiTimeout time.Duration) *ChatHandler {
	return &ChatHandler{
		convos:    convos,
		chat:      chat,
		provider:  provider,
		renderer:  renderer,
		log:       l,
		aiTimeout: aiTimeout,
	}
}

type askRequest struct {
	Message        string  `json:"message" binding:"required"`
	ConversationID *uint64 `json:"conversation_id"`
}

// Ask forwards the prompt to the model and, when a user session is active,
// records the turn against a conversation. Persistence failures never erase
// a successful answer from the response, and an invalid conversation
// reference falls back to a fresh conversation instead of failing the turn.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	aiCtx, cancel := context.WithTimeout(c.Request.Context(), h.aiTimeout)
	defer cancel()
	answer, aiErr := h.provider.Complete(aiCtx, req.Message)

	var conversationID uint64
	if userID, ok := currentUserID(c); ok {
		recorded := answer
		if aiErr != nil {
			recorded = "error: " + aiErr.Error()
		}

		ctx := c.Request.Context()
		convo, err := h.convos.StartOrContinue(ctx, userID, req.ConversationID)
		if err != nil {
			h.log.WithError(err).WithField("user_id", userID).Error("failed to resolve conversation")
		} else {
			conversationID = convo.ID
			if err := h.chat.RecordTurn(ctx, userID, convo.ID, req.Message, recorded); err != nil {
				h.log.WithError(err).WithFields(logrus.Fields{
					"user_id":         userID,
					"conversation_id": convo.ID,
				}).Error("failed to record turn")
			}
		}
	}

	if aiErr != nil {
		h.log.WithError(aiErr).Warn("model call failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "model call failed"})
		return
	}

	html, err := h.renderer.Render(answer)
	if err != nil {
		h.log.WithError(err).Error("failed to render answer")
		html = answer
	}

	resp := gin.H{"reply": html}
	if conversationID != 0 {
		resp["conversation_id"] = conversationID
	}
	c.JSON(http.StatusOK, resp)
}
