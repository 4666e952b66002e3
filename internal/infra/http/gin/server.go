package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"marketchat/internal/infra/config"
	"marketchat/internal/infra/obs"
)

type Handlers struct {
	Auth           AuthHTTP
	Chat           ChatHTTP
	AuthMiddleware gin.HandlerFunc
	SendLimiter    *KeyedRateLimiter
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg.Env, obsMW, health, h),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func NewRouter(env string, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *gin.Engine {
	mode := configureGinMode(env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", idempotencyHeader},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			obs.RequestIDHeader,
		},
		MaxAge: 12 * time.Hour,
	}))
	if h.AuthMiddleware != nil {
		router.Use(h.AuthMiddleware)
	}

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Auth != nil {
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
		api.GET("/auth/me", h.Auth.Me)
	}
	if h.Chat != nil {
		api.POST("/listings/:id/conversation", h.Chat.StartListingConversation)

		chatGroup := api.Group("/chat")
		chatGroup.GET("/resolve", h.Chat.Resolve)
		chatGroup.GET("/ws", h.Chat.StreamRooms)
		chatGroup.GET("/rooms", h.Chat.ListRooms)
		chatGroup.GET("/rooms/:id", h.Chat.GetRoom)
		chatGroup.PUT("/rooms/:id", h.Chat.Ensure)
		chatGroup.GET("/rooms/:id/messages", h.Chat.ListMessages)
		chatGroup.POST("/rooms/:id/messages", RateLimitMiddleware(h.SendLimiter, obsMW.Logger), h.Chat.SendMessage)
		chatGroup.POST("/rooms/:id/ack", h.Chat.Acknowledge)
		chatGroup.GET("/rooms/:id/ws", h.Chat.StreamMessages)
	}
	return router
}

// NewAuthMiddleware adapts AuthMiddleware to a gin handler.
func NewAuthMiddleware(m AuthMiddleware) gin.HandlerFunc {
	return m.Handle
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
