package routes

import (
	"github.com/gin-gonic/gin"

	"gemchat-backend/internal/api/handlers"
)

type Deps struct {
	Auth     *handlers.AuthHandler
	Chat     *handlers.ChatHandler
	History  *handlers.HistoryHandler
	Identity gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/login", d.Auth.Login)
	r.POST("/logout", d.Auth.Logout)

	// Identity is optional for /ask (anonymous chat persists nothing) and
	// required by the handlers of every history route.
	id := r.Group("/")
	id.Use(d.Identity)

	id.POST("/ask", d.Chat.Ask)

	id.GET("/conversations", d.History.ListConversations)
	id.POST("/conversations", d.History.NewConversation)
	id.GET("/history", d.History.Messages)
	id.GET("/history/:conversation_id", d.History.Messages)
}
