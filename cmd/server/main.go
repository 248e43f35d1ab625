package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/internal/api"
	"github.com/brandpilot/brandpilot/internal/jobs"
	"github.com/brandpilot/brandpilot/pkg/actions"
	"github.com/brandpilot/brandpilot/pkg/content"
	"github.com/brandpilot/brandpilot/pkg/db"
	"github.com/brandpilot/brandpilot/pkg/harvester"
	"github.com/brandpilot/brandpilot/pkg/interfaces/twitter"
	"github.com/brandpilot/brandpilot/pkg/llm/openai"
	"github.com/brandpilot/brandpilot/pkg/logging"
	"github.com/brandpilot/brandpilot/pkg/memory"
	"github.com/brandpilot/brandpilot/pkg/pkce"
	"github.com/brandpilot/brandpilot/pkg/ratelimit"
	"github.com/brandpilot/brandpilot/pkg/thoughts"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(logging.NewColoredJSONFormatter())
	logger.SetLevel(logrus.InfoLevel)

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, relying on environment")
	}

	database, err := db.SetupDatabase(logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to set up database")
	}

	twitterConfig, err := twitter.NewTwitterConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load Twitter configuration")
	}
	twitterConfig.Logger = logger

	twitterClient, err := twitter.NewTwitterClient(twitterConfig)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Twitter client")
	}

	openaiConfig, err := openai.NewOpenAIConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load OpenAI configuration")
	}
	openaiClient, err := openai.NewOpenAIClient(openaiConfig)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create OpenAI client")
	}

	contentConfig, err := content.NewConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load content API configuration")
	}
	contentClient, err := content.NewClient(contentConfig)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create content API client")
	}

	connections := memory.NewConnectionStore(database, logger)
	profiles := memory.NewProfileStore(database, logger)
	posts := memory.NewRelevantPostStore(database, logger)
	drafts := memory.NewDraftStore(database, logger)
	sessions := pkce.NewSessionManager(database, logger)
	limiter := ratelimit.NewMemoryLimiter(logger)

	finder := harvester.NewHarvester(twitterClient, connections, profiles, posts, limiter, logger)

	dispatcher := actions.NewDispatcher(actions.DispatcherConfig{
		Client:      twitterClient,
		Sessions:    sessions,
		Connections: connections,
		Profiles:    profiles,
		Posts:       posts,
		Drafts:      drafts,
		Harvester:   finder,
		Composer:    thoughts.NewReplyComposer(openaiClient),
		Generator:   thoughts.NewPostGenerator(openaiClient),
		Content:     contentClient,
		Logger:      logger,
	})

	app := fiber.New(fiber.Config{
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.WithError(err).Error("Unhandled request error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       3600,
	}))

	api.NewHandler(dispatcher, logger).Register(app)

	refreshJob := jobs.NewTokenRefreshJob(twitterClient, connections, logger)
	purgeJob := jobs.NewSessionPurgeJob(sessions, logger)

	scheduler := cron.New()
	scheduler.AddFunc("@every 00h10m00s", refreshJob.Run)
	scheduler.AddFunc("@every 00h10m00s", purgeJob.Run)
	scheduler.Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			logger.WithError(err).Fatal("Server stopped")
		}
	}()
	logger.WithField("port", port).Info("BrandPilot server running")

	gracefulShutdown(app, scheduler, logger)
}

func gracefulShutdown(app *fiber.App, scheduler *cron.Cron, logger *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	scheduler.Stop()
	if err := app.Shutdown(); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}
}
