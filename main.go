package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"shopsight/config"
	"shopsight/dataset"
	"shopsight/forecast"
	"shopsight/gateway"
	"shopsight/handlers"
	"shopsight/insights"
	"shopsight/loader"
	"shopsight/metrics"
	"shopsight/middleware"
	"shopsight/routes"
	"shopsight/search"
	"shopsight/segments"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := config.Load()

	// Materialize the raw feed and build the immutable snapshot. Everything
	// downstream reads this snapshot; nothing mutates it after this point.
	feed, err := loader.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Unable to load transaction feed: %v", err)
	}
	snap := dataset.Build(feed.Transactions, feed.Catalog, cfg.CategorySampleSize)

	// Declarative tables.
	stopwords, err := search.LoadStopwords(cfg.StopwordsPath)
	if err != nil {
		log.Fatalf("Unable to load stopwords: %v", err)
	}
	personas, err := segments.Load(cfg.PersonaTablePath)
	if err != nil {
		log.Fatalf("Unable to load persona table: %v", err)
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatalf("Unable to register metrics: %v", err)
	}

	// Analytics services over the shared snapshot.
	gemini := gateway.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GatewayTimeout)
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, AI features will use fallback paths")
	}
	resolver := search.NewResolver(snap, gemini, stopwords)
	generator := insights.NewGenerator(gemini, cfg.AnomalyZThreshold, cfg.InsightMinDataDays)
	engine := forecast.NewEngine(cfg.ForecastWindowDays)

	h := handlers.New(snap, resolver, generator, engine, personas, cfg.GeminiAPIKey != "")

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())
	app.Use(middleware.RequestLogger)

	// Setup routes
	routes.SetupRoutes(app, h)

	// Start server
	log.Fatal(app.Listen(cfg.Addr))
}
