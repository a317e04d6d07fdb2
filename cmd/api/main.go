// @title Video Quiz API
// @version 1.0
// @description Generates multiple-choice quizzes from the spoken content of a video.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "vidquiz/cmd/api/docs"
	"vidquiz/internal/adapter"
	"vidquiz/internal/adapter/llm"
	"vidquiz/internal/adapter/youtube"
	"vidquiz/internal/cache"
	"vidquiz/internal/config"
	"vidquiz/internal/domain"
	"vidquiz/internal/handler"
	"vidquiz/internal/logger"
	"vidquiz/internal/middleware"
	"vidquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
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
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Initializing transcript fetcher", zap.String("language", cfg.Transcript.Language))
	fetcher, err := youtube.NewTranscriptFetcher(cfg.Transcript.Language, cfg.Transcript.HTTPTimeout)
	if err != nil {
		appLogger.Fatal("Failed to create transcript fetcher", zap.Error(err))
	}

	appLogger.Info("Initializing LLM client",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
	)
	model, err := llm.NewModel(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	generator, err := llm.NewLangchainGenerator(model, cfg.LLM.Temperature, cfg.LLM.Timeout)
	if err != nil {
		appLogger.Fatal("Failed to create generation client", zap.Error(err))
	}

	var diagnostics domain.DiagnosticsSink = adapter.NoopDiagnosticsSink{}
	if cfg.DiagnosticsEnabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		diagnostics = adapter.NewRedisDiagnosticsAdapter(redisClient, cfg.Diagnostics.MaxEntries, cfg.Diagnostics.TTL)
		appLogger.Info("Redis diagnostics sink initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis not configured, malformed completions are only logged")
	}

	quizService := service.NewQuizService(fetcher, generator, diagnostics)

	quizHandler := handler.NewQuizHandler(quizService)
	healthHandler := handler.NewHealthHandler(diagnostics)
	validationMiddleware := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", healthHandler.Health)
	apiGroup.Post("/questions", validationMiddleware.ValidateGenerateQuiz(), quizHandler.GenerateQuestions)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
