package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gemchat-backend/config"
	"gemchat-backend/internal/api/handlers"
	"gemchat-backend/internal/api/middleware"
	"gemchat-backend/internal/api/routes"
	"gemchat-backend/internal/cache"
	"gemchat-backend/internal/logger"
	"gemchat-backend/internal/markdown"
	"gemchat-backend/internal/providers/llm"
	pgrepo "gemchat-backend/internal/repositories/postgres"
	"gemchat-backend/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New()

	db, err := config.InitPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	// Schema upgrades run before the store accepts traffic.
	if err := pgrepo.EnsureSchema(db); err != nil {
		log.Fatalf("schema error: %v", err)
	}

	var store cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		rdb, err := config.InitRedis(cfg.RedisAddr)
		if err != nil {
			l.WithError(err).Warn("Redis unavailable, running without cache")
		} else {
			store = cache.NewRedisCache(rdb)
			l.Info("Redis connected")
		}
	}

	ctx := context.Background()
	var provider llm.Provider
	switch {
	case cfg.GeminiAPIKey != "":
		provider, err = llm.NewGeminiAPI(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case cfg.VertexProjectID != "":
		provider, err = llm.NewVertexGemini(ctx, cfg.VertexProjectID, cfg.VertexLocation, cfg.GeminiModel)
	default:
		log.Fatal("either GEMINI_API_KEY or VERTEX_PROJECT_ID must be set")
	}
	if err != nil {
		log.Fatalf("LLM provider init error: %v", err)
	}
	defer provider.Close()

	renderer := markdown.New()

	userSvc := services.NewUserService(pgrepo.NewUserRepo(db))
	convoSvc := services.NewConversationService(pgrepo.NewConversationRepo(db), store)
	chatSvc := services.NewChatService(pgrepo.NewQuestionRepo(db), convoSvc, renderer, store)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:     handlers.NewAuthHandler(userSvc),
		Chat:     handlers.NewChatHandler(convoSvc, chatSvc, provider, renderer, l, cfg.AITimeout),
		History:  handlers.NewHistoryHandler(convoSvc, chatSvc),
		Identity: middleware.Identity(userSvc, l),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
