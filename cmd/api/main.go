package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"interview-coach/internal/config"
	"interview-coach/internal/handlers"
	"interview-coach/internal/middleware"
	"interview-coach/internal/repositories"
	"interview-coach/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	jdRepo := repositories.NewJobDescriptionRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storage, err := services.NewObjectStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("❌ Failed to initialize object storage: %v", err)
	}

	pdfParser := services.NewPDFParserService()

	llm, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}

	transcriber := services.NewWhisperTranscriber(cfg.OpenAI.APIKey)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	jdHandler := handlers.NewJobDescriptionHandler(
		jdRepo,
		questionRepo,
		storage,
		pdfParser,
		llm,
		cfg.Upload.MaxPDFSize,
	)
	responseHandler := handlers.NewResponseHandler(
		questionRepo,
		jdRepo,
		responseRepo,
		storage,
		transcriber,
		llm,
		cfg.Upload.MaxAudioSize,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview Coach API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    cfg.Upload.BodyLimit(),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/auth/register", authHandler.HandleRegister)
	api.Post("/auth/login", authHandler.HandleLogin)

	protected := api.Group("", middleware.RequireAuth(cfg.Auth.JWTSecret))
	protected.Post("/job-descriptions", jdHandler.HandleUpload)
	protected.Get("/job-descriptions", jdHandler.HandleList)
	protected.Get("/job-descriptions/:id/questions", jdHandler.HandleListQuestions)
	protected.Post("/questions/:id/responses", responseHandler.HandleSubmit)
	protected.Get("/questions/:id/responses", responseHandler.HandleList)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
