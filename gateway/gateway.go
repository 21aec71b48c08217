// Package gateway wraps the external text-generation backend behind two typed
// operations. Every failure mode (missing key, timeout, transport error,
// unusable response) surfaces as the single ErrUnavailable sentinel so callers
// can branch to their deterministic fallback without inspecting causes.
package gateway

import (
	"context"
	"errors"
)

// ErrUnavailable is the uniform failure signal for every gateway call.
// Callers must intercept it and fall back; it is never returned to API clients.
var ErrUnavailable = errors.New("language model gateway unavailable")

// SeriesStats carries the precomputed sales statistics handed to SummarizeSeries.
// The gateway renders them into prose; it never computes statistics itself.
type SeriesStats struct {
	ProductName   string
	Days          int
	TotalRevenue  float64
	TotalUnits    int
	AvgDailyUnits float64
	Trend         string
	TrendPct      float64
	BestDay       string
	BestDayUnits  int
}

// Client is the capability surface consumed by the search resolver and the
// insight generator.
type Client interface {
	// ExtractQueryTerms turns a free-text query into normalized search terms.
	ExtractQueryTerms(ctx context.Context, query string) ([]string, error)

	// SummarizeSeries renders sales statistics into a short narrative.
	SummarizeSeries(ctx context.Context, stats SeriesStats) (string, error)
}
