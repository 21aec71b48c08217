package gateway

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"shopsight/metrics"
)

// Gemini implements Client against the Google Generative AI API. A Gemini
// constructed without an API key is permanently unavailable, which makes every
// caller run on its fallback path.
type Gemini struct {
	apiKey  string
	model   string
	timeout time.Duration
}

// NewGemini creates a gateway backed by the given Gemini model. An empty
// apiKey yields a disabled gateway rather than an error.
func NewGemini(apiKey, model string, timeout time.Duration) *Gemini {
	if model == "" {
		model = "gemini-1.5-pro-latest"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Gemini{apiKey: apiKey, model: model, timeout: timeout}
}

// ExtractQueryTerms asks the model for a comma-separated list of product
// attributes and normalizes it into lowercase terms.
func (g *Gemini) ExtractQueryTerms(ctx context.Context, query string) ([]string, error) {
	prompt := fmt.Sprintf(
		"You are a search query analyzer for an e-commerce platform. "+
			"Extract key product attributes from the user's query (product type, color, style, material, use). "+
			"Return only a comma-separated list of lowercase search terms, nothing else. Query: %q", query)

	text, err := g.generate(ctx, "extract_query_terms", prompt)
	if err != nil {
		return nil, err
	}

	var terms []string
	for _, part := range strings.Split(text, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		metrics.ObserveGateway("extract_query_terms", metrics.OutcomeUnavailable)
		return nil, ErrUnavailable
	}
	return terms, nil
}

// SummarizeSeries renders the supplied statistics into a short analyst narrative.
func (g *Gemini) SummarizeSeries(ctx context.Context, stats SeriesStats) (string, error) {
	prompt := fmt.Sprintf(
		"You are an e-commerce analytics expert. Write a concise two-sentence summary "+
			"of this product's sales performance. Mention the numbers that matter.\n"+
			"Product: %s\n"+
			"Window: %d days\n"+
			"Total revenue: $%.2f\n"+
			"Total units sold: %d\n"+
			"Average daily units: %.1f\n"+
			"Trend: %s (%.1f%%)\n"+
			"Best day: %s (%d units)",
		stats.ProductName, stats.Days, stats.TotalRevenue, stats.TotalUnits,
		stats.AvgDailyUnits, stats.Trend, stats.TrendPct, stats.BestDay, stats.BestDayUnits)

	return g.generate(ctx, "summarize_series", prompt)
}

// generate performs one bounded model call. No retries: a failed call reports
// ErrUnavailable and the caller falls back immediately.
func (g *Gemini) generate(ctx context.Context, operation, prompt string) (string, error) {
	if g == nil || g.apiKey == "" {
		metrics.ObserveGateway(operation, metrics.OutcomeUnavailable)
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		metrics.ObserveGateway(operation, metrics.OutcomeUnavailable)
		return "", ErrUnavailable
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error generating content for %s: %v", operation, err)
		metrics.ObserveGateway(operation, metrics.OutcomeUnavailable)
		return "", ErrUnavailable
	}

	text := responseText(resp)
	if text == "" {
		log.Printf("Empty Gemini response for %s", operation)
		metrics.ObserveGateway(operation, metrics.OutcomeUnavailable)
		return "", ErrUnavailable
	}
	metrics.ObserveGateway(operation, metrics.OutcomeOK)
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(content.Parts[0]))
}
