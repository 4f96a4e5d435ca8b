package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gemchat-backend/internal/services"
)

type HistoryHandler struct {
	convos services.ConversationService
	chat   services.ChatService
}

func NewHistoryHandler(convos services.ConversationService, chat services.ChatService) *HistoryHandler {
	return &HistoryHandler{convos: convos, chat: chat}
}

type conversationSummary struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *HistoryHandler) ListConversations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.convos.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]conversationSummary, 0, len(rows))
	for _, convo := range rows {
		out = append(out, conversationSummary{
			ID:        convo.ID,
			Title:     convo.Title,
			UpdatedAt: convo.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"conversations": out})
}

// NewConversation is the explicit new-thread action.
func (h *HistoryHandler) NewConversation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	convo, err := h.convos.Create(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation_id": convo.ID, "title": convo.Title})
}

// Messages serves both history views: without a conversation id it renders
// the most recently updated conversation, matching the legacy single-thread
// behavior.
func (h *HistoryHandler) Messages(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var conversationID *uint64
	if s := c.Param("conversation_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
			return
		}
		conversationID = &id
	}

	msgs, err := h.chat.Messages(c.Request.Context(), userID, conversationID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
