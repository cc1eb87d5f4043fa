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

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/handlers"
	"alfredoptarigan/resume-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Please set GEMINI_API_KEY as an environment variable: %v", err)
	}
	log.Printf("✅ Config loaded successfully (env: %s)\n", cfg.Server.Env)

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	extractor := services.NewDocumentExtractor()
	analyzerService := services.NewAnalyzerService(geminiService, extractor)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, cfg.Upload.MaxFileSize)
	pageHandler := handlers.NewPageHandler(analyzerService, cfg.Upload.MaxFileSize)
	log.Println("✅ Handlers initialized")

	app := NewApp(cfg, analyzeHandler, pageHandler)

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
	log.Printf("📖 Open http://localhost%s in your browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// NewApp wires routes and middleware onto a Fiber app.
func NewApp(cfg *config.Config, analyzeHandler *handlers.AnalyzeHandler, pageHandler *handlers.PageHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Resume Matcher",
		ReadTimeout:           30 * time.Second,
		BodyLimit:             int(cfg.Upload.MaxFileSize) + 1<<20,
		Views:                 handlers.NewViewsEngine(),
		DisableStartupMessage: cfg.Server.Env == "production",
		ErrorHandler:          customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Browser surface
	app.Get("/", pageHandler.HandleIndex)
	app.Post("/analyze", pageHandler.HandleAnalyzeForm)

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	return app
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
