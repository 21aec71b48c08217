// Package forecast projects a sales series forward with a trend-adjusted
// moving average. This is a statistical heuristic, not a trained model, and
// its method label says so.
package forecast

import (
	"math"

	"shopsight/models"
)

// Method labels returned with every forecast.
const (
	MethodMovingAverageTrend = "moving_average_trend"
	MethodInsufficientData   = "insufficient_data"
)

// minHalfWidthFraction keeps the confidence band visible on near-constant
// series: the per-step half-width never drops below this fraction of the
// moving average (or 0.5 units, whichever is larger).
const minHalfWidthFraction = 0.1

// Engine produces short-horizon demand forecasts.
type Engine struct {
	window int
}

// NewEngine builds a forecast engine with the given trailing window in days.
func NewEngine(window int) *Engine {
	if window <= 0 {
		window = 14
	}
	return &Engine{window: window}
}

// Forecast projects the series horizon days past its last date. Each point is
// the window's moving average plus a least-squares trend term, floored at
// zero, with a confidence band that widens with the step index. An empty
// series yields no points and the insufficient-data label.
func (e *Engine) Forecast(series []models.SalesRecord, horizon int) ([]models.ForecastPoint, string) {
	if len(series) == 0 || horizon <= 0 {
		return nil, MethodInsufficientData
	}

	tail := series
	if len(tail) > e.window {
		tail = tail[len(tail)-e.window:]
	}

	avg := meanUnits(tail)
	slope := unitSlope(tail)
	sigma := stddevUnits(tail, avg)

	floor := math.Max(0.5, minHalfWidthFraction*avg)
	scale := math.Max(sigma, floor)

	lastDate := series[len(series)-1].Date
	points := make([]models.ForecastPoint, 0, horizon)
	for step := 1; step <= horizon; step++ {
		predicted := avg + slope*float64(step)
		if predicted < 0 {
			predicted = 0
		}
		// Round the half-width before applying it so the band width stays
		// monotone in the step index even at one-decimal precision.
		predicted = round1(predicted)
		halfWidth := round1(scale * math.Sqrt(float64(step)))
		points = append(points, models.ForecastPoint{
			Date:            lastDate.AddDate(0, 0, step).Format("2006-01-02"),
			PredictedUnits:  predicted,
			ConfidenceLower: round1(predicted - halfWidth),
			ConfidenceUpper: round1(predicted + halfWidth),
		})
	}
	return points, MethodMovingAverageTrend
}

// unitSlope fits units = a + b*day by least squares over the window and
// returns b. A single-day window has no slope.
func unitSlope(recs []models.SalesRecord) float64 {
	n := len(recs)
	if n < 2 {
		return 0
	}
	xMean := float64(n-1) / 2
	yMean := meanUnits(recs)

	num, den := 0.0, 0.0
	for i, rec := range recs {
		dx := float64(i) - xMean
		num += dx * (float64(rec.UnitsSold) - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func meanUnits(recs []models.SalesRecord) float64 {
	sum := 0
	for _, rec := range recs {
		sum += rec.UnitsSold
	}
	return float64(sum) / float64(len(recs))
}

func stddevUnits(recs []models.SalesRecord, mean float64) float64 {
	variance := 0.0
	for _, rec := range recs {
		d := float64(rec.UnitsSold) - mean
		variance += d * d
	}
	variance /= float64(len(recs))
	return math.Sqrt(variance)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
