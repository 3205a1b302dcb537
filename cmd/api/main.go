// @title InterviewHub API
// @version 1.0
// @description API for creating interview question sets and collecting participant submissions.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"interviewhub/internal/adapter"
	"interviewhub/internal/cache"
	"interviewhub/internal/config"
	"interviewhub/internal/database"
	"interviewhub/internal/handler"
	"interviewhub/internal/logger"
	"interviewhub/internal/middleware"
	"interviewhub/internal/repository"
	"interviewhub/internal/service"

	_ "interviewhub/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	questionRepository := repository.NewSQLXQuestionRepository(db)
	interviewRepository := repository.NewSQLXInterviewRepository(db)
	submissionRepository := repository.NewSQLXSubmissionRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)

	// Initialize Redis-backed question cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	questionCache := service.NewQuestionCacheService(cacheAdapter, questionRepository, cfg.Cache.QuestionTTL)

	// Initialize services
	authService, err := service.NewAuthService(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	questionService := service.NewQuestionService(questionRepository, questionCache)
	interviewService := service.NewInterviewService(interviewRepository, questionRepository, userRepository)
	submissionService := service.NewSubmissionService(submissionRepository, interviewRepository, questionRepository)
	userService := service.NewUserService(userRepository)

	// Initialize handlers
	questionHandler := handler.NewQuestionHandler(questionService)
	interviewHandler := handler.NewInterviewHandler(interviewService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	userHandler := handler.NewUserHandler(userService)

	validationMiddleware := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Identity
	apiGroup.Get("/whoami", middleware.Protected(authService), userHandler.WhoAmI)

	// Questions: reads are public, writes need a caller
	apiGroup.Get("/questions", questionHandler.ListQuestions)
	apiGroup.Post("/questions", middleware.Protected(authService), questionHandler.CreateQuestion)
	apiGroup.Get("/questions/:id", validationMiddleware.ValidateIDParam("question"), questionHandler.GetQuestion)

	// Interviews: reads are public, writes need a caller, updates are owner-only
	apiGroup.Get("/interviews", interviewHandler.ListInterviews)
	apiGroup.Post("/interviews", middleware.Protected(authService), interviewHandler.CreateInterview)
	apiGroup.Get("/interviews/:id", validationMiddleware.ValidateIDParam("interview"), interviewHandler.GetInterview)
	apiGroup.Put("/interviews/:id", middleware.Protected(authService), validationMiddleware.ValidateIDParam("interview"), interviewHandler.UpdateInterview)
	apiGroup.Patch("/interviews/:id", middleware.Protected(authService), validationMiddleware.ValidateIDParam("interview"), interviewHandler.UpdateInterview)

	// Submissions: always caller-scoped
	apiGroup.Get("/submissions", middleware.Protected(authService), submissionHandler.ListMySubmissions)
	apiGroup.Post("/submissions/create", middleware.Protected(authService), submissionHandler.CreateSubmission)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
