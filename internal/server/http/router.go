package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"saathi/internal/auth"
	"saathi/internal/observability"
	"saathi/internal/server/app"
	"saathi/internal/task"
)

// RouterDeps carries the services the router wires into handlers.
type RouterDeps struct {
	AuthService    *auth.Service
	TaskService    *task.Service
	ChatService    *app.ChatService
	Metrics        *observability.MetricsCollector
	AllowedOrigins []string
	Debug          bool
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	if !deps.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestIDMiddleware())
	engine.Use(MetricsMiddleware(deps.Metrics))

	corsConfig := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = deps.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"}
	corsConfig.AllowWebSockets = true
	engine.Use(cors.New(corsConfig))

	authHandler := NewAuthHandler(deps.AuthService)
	taskHandler := NewTaskHandler(deps.TaskService)
	chatHandler := NewChatHandler(deps.ChatService, deps.Metrics)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})
	engine.GET("/metrics", gin.WrapH(deps.Metrics.PrometheusHandler()))

	api := engine.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("", AuthMiddleware(deps.AuthService))
		{
			authed.GET("/auth/me", authHandler.Me)

			authed.GET("/tasks", taskHandler.List)
			authed.POST("/tasks", taskHandler.Create)
			authed.GET("/tasks/:id", taskHandler.Get)
			authed.PUT("/tasks/:id", taskHandler.Update)
			authed.PATCH("/tasks/:id/toggle", taskHandler.Toggle)
			authed.DELETE("/tasks/:id", taskHandler.Delete)

			authed.POST("/chat", chatHandler.Send)
			authed.GET("/chat/history", chatHandler.History)
			authed.GET("/chat/ws", chatHandler.Stream)
		}
	}

	return engine
}
