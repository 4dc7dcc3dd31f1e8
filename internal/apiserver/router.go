package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kinetra/kinetra/internal/apiserver/handler/middleware"
	v1 "github.com/kinetra/kinetra/internal/apiserver/handler/v1"
	"github.com/kinetra/kinetra/internal/apiserver/service/assistant"
)

// routerDeps holds the dependencies needed for route registration.
type routerDeps struct {
	assistantModule *assistant.Module
	authConfig      *middleware.AuthConfig
}

func initRouter(g *gin.Engine, deps *routerDeps) {
	installMiddleware(g, deps)
	installController(g, deps)
}

func installMiddleware(g *gin.Engine, deps *routerDeps) {
	g.Use(gin.Recovery())
	g.Use(middleware.CORS())

	if deps.authConfig != nil {
		g.Use(middleware.BearerAuth(deps.authConfig))
	}
	g.Use(middleware.UserIdentity())
}

func installController(g *gin.Engine, deps *routerDeps) {
	g.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Handlers.
	chatHandler := v1.NewChatHandler(deps.assistantModule.Orchestrator)
	visionHandler := v1.NewVisionHandler(deps.assistantModule.Vision)

	// --- /v1 route group ---
	apiV1 := g.Group("/v1")
	{
		apiV1.POST("/ai/chat", chatHandler.Chat)
		apiV1.GET("/ai/chat/history", chatHandler.History)

		apiV1.POST("/ai/vision/analyze", visionHandler.Analyze)
		apiV1.GET("/ai/vision/history", visionHandler.History)
	}
}
