package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds the application-wide configuration read from the environment.
type Config struct {
	Addr string

	// Language-model gateway
	GeminiAPIKey   string
	GeminiModel    string
	GatewayTimeout time.Duration

	// Analytics tuning
	CategorySampleSize int
	ForecastWindowDays int
	AnomalyZThreshold  float64
	InsightMinDataDays int

	// Declarative tables (empty path means built-in defaults)
	PersonaTablePath string
	StopwordsPath    string

	// Feed sources
	TransactionsCSV string
	CatalogCSV      string
	DatabaseURL     string
}

// AppConfig holds the application-wide configuration.
var AppConfig Config

// Load reads configuration from environment variables, applying defaults for
// anything unset, and stores the result in AppConfig.
func Load() Config {
	cfg := Config{
		Addr:               envString("ADDR", ":8000"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        envString("GEMINI_MODEL", "gemini-1.5-pro-latest"),
		GatewayTimeout:     time.Duration(envInt("GATEWAY_TIMEOUT_SECONDS", 15)) * time.Second,
		CategorySampleSize: envInt("CATEGORY_SAMPLE_SIZE", 10),
		ForecastWindowDays: envInt("FORECAST_WINDOW_DAYS", 14),
		AnomalyZThreshold:  envFloat("ANOMALY_Z_THRESHOLD", 2.0),
		InsightMinDataDays: envInt("INSIGHT_MIN_DATA_DAYS", 7),
		PersonaTablePath:   os.Getenv("PERSONA_TABLE_PATH"),
		StopwordsPath:      os.Getenv("STOPWORDS_PATH"),
		TransactionsCSV:    os.Getenv("TRANSACTIONS_CSV"),
		CatalogCSV:         os.Getenv("CATALOG_CSV"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
	}

	AppConfig = cfg
	return cfg
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %g", key, v, fallback)
		return fallback
	}
	return f
}
