package models

import "time"

// --- Raw Feed ---

// RawTransaction is one row of the source transaction feed before aggregation.
type RawTransaction struct {
	ArticleID string
	Category  string
	UnitPrice float64
	Quantity  int
	Date      time.Time
}

// RawArticle is one row of the source product catalog.
type RawArticle struct {
	ArticleID   string
	Name        string
	Category    string
	Description string
}

// --- Core Models ---

// Product represents one entry of the working catalog. Products are created
// once at startup and never mutated afterwards.
type Product struct {
	ArticleID   string   `json:"article_id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// SalesRecord holds the aggregated units and revenue for one product on one day.
type SalesRecord struct {
	ArticleID string
	Date      time.Time
	UnitsSold int
	Revenue   float64
}

// Insight is a single human-readable finding about a product's sales.
// Type is one of "trend", "metric", "performance" or "anomaly".
type Insight struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// Segment describes one buyer persona for a product. The yaml tags let
// persona tables be authored as declarative files.
type Segment struct {
	Name               string   `json:"name" yaml:"name"`
	Percentage         float64  `json:"percentage" yaml:"percentage"`
	AgeRange           string   `json:"age_range" yaml:"age_range"`
	Characteristics    []string `json:"characteristics" yaml:"characteristics"`
	PurchaseLikelihood float64  `json:"purchase_likelihood" yaml:"purchase_likelihood"`
}
