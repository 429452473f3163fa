package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mir-dating/backend/internal/delivery/http/handler"
	"github.com/mir-dating/backend/internal/delivery/http/middleware"
	"github.com/rs/zerolog"
)

type Router struct {
	authHandler    *handler.AuthHandler
	questHandler   *handler.QuestionnaireHandler
	authMiddleware *middleware.AuthMiddleware
	// strictOwnership gates the auth requirement on PATCH; the
	// historical contract left that route fully public.
	strictOwnership bool
	log             zerolog.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	questHandler *handler.QuestionnaireHandler,
	authMiddleware *middleware.AuthMiddleware,
	strictOwnership bool,
	log zerolog.Logger,
) *Router {
	return &Router{
		authHandler:     authHandler,
		questHandler:    questHandler,
		authMiddleware:  authMiddleware,
		strictOwnership: strictOwnership,
		log:             log,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(r.log))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		}

		// Questionnaire routes. Create and update are public by
		// contract; list and delete require a session cookie.
		quest := v1.Group("/questionnaire")
		{
			quest.POST("", r.authMiddleware.OptionalAuth(), r.questHandler.Create)
			quest.GET("/list", r.authMiddleware.RequireAuth(), r.questHandler.List)
			quest.POST("/suggest-about", r.authMiddleware.RequireAuth(), r.questHandler.SuggestAbout)

			updateAuth := r.authMiddleware.OptionalAuth()
			if r.strictOwnership {
				updateAuth = r.authMiddleware.RequireAuth()
			}
			quest.PATCH("/:quest_id", updateAuth, r.questHandler.Update)
			quest.DELETE("/:quest_id", r.authMiddleware.RequireAuth(), r.questHandler.Delete)
		}
	}

	return router
}
