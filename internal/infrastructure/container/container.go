package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mir-dating/backend/internal/config"
	"github.com/mir-dating/backend/internal/delivery/http"
	"github.com/mir-dating/backend/internal/delivery/http/handler"
	"github.com/mir-dating/backend/internal/delivery/http/middleware"
	"github.com/mir-dating/backend/internal/infrastructure/database"
	"github.com/mir-dating/backend/internal/infrastructure/gemini"
	"github.com/mir-dating/backend/internal/infrastructure/server"
	"github.com/mir-dating/backend/internal/repository/postgres"
	"github.com/mir-dating/backend/internal/repository/redisrepo"
	"github.com/mir-dating/backend/internal/usecase/auth"
	"github.com/mir-dating/backend/internal/usecase/questionnaire"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    zerolog.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini client; the suggestion endpoint degrades to 503
	// without it.
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			log.Warn().Err(err).Msg("gemini client unavailable, about suggestions disabled")
			geminiClient = nil
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	questRepo := postgres.NewQuestionnaireRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		cfg.Auth.JWTSecret,
		cfg.Auth.SessionTTL(),
		log,
	)
	questUseCase := questionnaire.NewQuestionnaireUseCase(
		questRepo,
		geminiClient,
		cfg.Auth.StrictOwnership,
		log,
	)

	// Initialize handlers and middleware
	authHandler := handler.NewAuthHandler(authUseCase, &cfg.Auth)
	questHandler := handler.NewQuestionnaireHandler(questUseCase)
	authMiddleware := middleware.NewAuthMiddleware(authUseCase, cfg.Auth.CookieName)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		questHandler,
		authMiddleware,
		cfg.Auth.StrictOwnership,
		log,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Error().Err(err).Msg("error closing redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
