package server

import (
	"net/http"
	"time"

	_ "portfolio/site/docs" // registers the API docs served under /swagger
	"portfolio/site/internal/auth"
	"portfolio/site/internal/handler"
	"portfolio/site/internal/middleware"
	"portfolio/site/internal/view"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ReadHeaderTimeout limits how long the server waits for request headers.
const ReadHeaderTimeout = 5 * time.Second

// ShutdownTimeout limits how long the server waits for in-flight requests
// during graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// NewRouter wires every route of the site.
func NewRouter(h *handler.Handler, webhookSecret string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.RequestID(), middleware.Recovery(), middleware.ErrorBoundary())
	router.SetHTMLTemplate(view.Templates())
	router.StaticFS("/static", view.Static())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Page routes
	router.GET("/", h.Index)
	router.GET("/content", h.Content)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		projectRoutes := apiV1.Group("/projects")
		{
			projectRoutes.GET("", h.GetProjects)
			projectRoutes.GET("/:id", h.GetProjectByID)
		}

		apiV1.GET("/events", h.StreamEvents)

		// Webhook routes (protected by a shared-secret bearer token)
		hookRoutes := apiV1.Group("/hooks")
		hookRoutes.Use(auth.WebhookMiddleware(webhookSecret))
		{
			hookRoutes.POST("/content", h.InvalidateContent)
		}
	}

	return router
}
