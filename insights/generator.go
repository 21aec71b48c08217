// Package insights turns a product's sales series into a narrative summary and
// a list of typed findings, preferring the language-model gateway and falling
// back to deterministic templates over the same statistics.
package insights

import (
	"context"
	"fmt"
	"log"
	"math"

	"shopsight/gateway"
	"shopsight/metrics"
	"shopsight/models"
)

// Fallback confidences are fixed constants: the templates do not adapt to the
// data, so they never claim the confidence of a model-written narrative.
const (
	fallbackTrendConfidence       = 0.85
	fallbackMetricConfidence      = 0.9
	fallbackPerformanceConfidence = 0.8
	fallbackAnomalyConfidence     = 0.7
	insufficientDataConfidence    = 0.3
)

// maxInsights caps the findings returned for one product.
const maxInsights = 4

// Generator produces insights for a sales series.
type Generator struct {
	llm        gateway.Client
	zThreshold float64
	minDays    int
}

// NewGenerator builds a generator. zThreshold is the anomaly z-score cutoff and
// minDays the minimum number of non-zero sale days required for full analysis.
func NewGenerator(llm gateway.Client, zThreshold float64, minDays int) *Generator {
	if zThreshold <= 0 {
		zThreshold = 2.0
	}
	if minDays <= 0 {
		minDays = 7
	}
	return &Generator{llm: llm, zThreshold: zThreshold, minDays: minDays}
}

// Generate computes the series statistics once and renders them through the
// gateway when it is reachable, or through templates when it is not. A series
// with too few selling days yields a single low-confidence finding instead of
// trend and anomaly analysis.
func (g *Generator) Generate(ctx context.Context, product models.Product, series []models.SalesRecord) (string, []models.Insight) {
	stats := Compute(series, g.zThreshold)

	if stats.NonZeroDays < g.minDays {
		summary := fmt.Sprintf("Not enough sales history for %s to analyze: only %d days with sales in the window.",
			product.Name, stats.NonZeroDays)
		return summary, []models.Insight{{
			Type:        "metric",
			Title:       "Insufficient Data",
			Description: fmt.Sprintf("Only %d days with recorded sales; at least %d are needed for trend and anomaly analysis.", stats.NonZeroDays, g.minDays),
			Confidence:  insufficientDataConfidence,
		}}
	}

	summary, err := g.llm.SummarizeSeries(ctx, gateway.SeriesStats{
		ProductName:   product.Name,
		Days:          stats.Days,
		TotalRevenue:  stats.TotalRevenue,
		TotalUnits:    stats.TotalUnits,
		AvgDailyUnits: stats.AvgDailyUnits,
		Trend:         stats.Trend,
		TrendPct:      stats.TrendPct,
		BestDay:       stats.BestDay.Format("2006-01-02"),
		BestDayUnits:  stats.BestDayUnits,
	})
	if err != nil {
		metrics.ObserveGateway("summarize_series", metrics.OutcomeFallback)
		log.Printf("Insights falling back to templates for %s", product.ArticleID)
		return g.templateSummary(product, stats), g.buildInsights(stats, false)
	}
	return summary, g.buildInsights(stats, true)
}

// buildInsights wraps each statistic into a typed insight. Adaptive confidence
// scales with window coverage and is capped at 1.0.
func (g *Generator) buildInsights(stats Stats, adaptive bool) []models.Insight {
	dataConfidence := math.Min(1.0, float64(stats.Days)/30.0)

	confidence := func(fallback float64) float64 {
		if adaptive {
			return dataConfidence
		}
		return fallback
	}

	insights := []models.Insight{
		{
			Type:        "trend",
			Title:       fmt.Sprintf("Sales Trend: %s", titleCase(stats.Trend)),
			Description: fmt.Sprintf("Sales trended %s over the period, changing by %.1f%%.", stats.Trend, stats.TrendPct),
			Confidence:  confidence(fallbackTrendConfidence),
		},
		{
			Type:        "metric",
			Title:       fmt.Sprintf("Average Daily Sales: %.1f units", stats.AvgDailyUnits),
			Description: fmt.Sprintf("The product sells an average of %.1f units per day across %d days.", stats.AvgDailyUnits, stats.Days),
			Confidence:  confidence(fallbackMetricConfidence),
		},
		{
			Type:  "performance",
			Title: fmt.Sprintf("Best Day: %d units", stats.BestDayUnits),
			Description: fmt.Sprintf("Generated $%.2f in total revenue from %d units; the strongest day was %s with %d units.",
				stats.TotalRevenue, stats.TotalUnits, stats.BestDay.Format("2006-01-02"), stats.BestDayUnits),
			Confidence: confidence(fallbackPerformanceConfidence),
		},
	}

	for _, a := range stats.Anomalies {
		insights = append(insights, models.Insight{
			Type:        "anomaly",
			Title:       fmt.Sprintf("Unusual Sales on %s", a.Date.Format("2006-01-02")),
			Description: fmt.Sprintf("Sold %d units, %.1f standard deviations from the daily mean of %.1f.", a.UnitsSold, a.ZScore, stats.Mean),
			Confidence:  confidence(fallbackAnomalyConfidence),
		})
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// templateSummary renders the deterministic summary used when the gateway is down.
func (g *Generator) templateSummary(product models.Product, stats Stats) string {
	name := product.Name
	if name == "" {
		name = "This product"
	}
	switch stats.Trend {
	case TrendRising:
		return fmt.Sprintf("%s shows growing demand with $%.2f in revenue and %d units sold over %d days; sales are trending upward.",
			name, stats.TotalRevenue, stats.TotalUnits, stats.Days)
	case TrendFalling:
		return fmt.Sprintf("%s generated $%.2f in revenue over %d days but shows a declining trend; consider promotional support.",
			name, stats.TotalRevenue, stats.Days)
	default:
		return fmt.Sprintf("%s maintains stable performance with $%.2f in revenue and %d units sold over %d days.",
			name, stats.TotalRevenue, stats.TotalUnits, stats.Days)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
