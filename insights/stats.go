package insights

import (
	"math"
	"time"

	"shopsight/models"
)

// Trend classifications.
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendFlat    = "flat"
)

// trendThresholdPct is the relative change below which a series counts as flat.
const trendThresholdPct = 10.0

// Anomaly marks a single day whose units deviate strongly from the series mean.
type Anomaly struct {
	Date      time.Time
	UnitsSold int
	ZScore    float64
}

// Stats captures the signals computed once per series, independent of whether
// the narrative is rendered by the gateway or by templates.
type Stats struct {
	Days          int
	NonZeroDays   int
	TotalUnits    int
	TotalRevenue  float64
	AvgDailyUnits float64
	Mean          float64
	StdDev        float64
	Trend         string
	TrendPct      float64
	BestDay       time.Time
	BestDayUnits  int
	Anomalies     []Anomaly
}

// Compute derives trend, anomaly and performance statistics from a gap-filled
// daily series. zThreshold is the z-score above which a day is anomalous; a
// zero-variance series produces no anomalies.
func Compute(series []models.SalesRecord, zThreshold float64) Stats {
	stats := Stats{Trend: TrendFlat}
	if len(series) == 0 {
		return stats
	}
	stats.Days = len(series)

	for _, rec := range series {
		stats.TotalUnits += rec.UnitsSold
		stats.TotalRevenue += rec.Revenue
		if rec.UnitsSold > 0 {
			stats.NonZeroDays++
		}
		if rec.UnitsSold > stats.BestDayUnits {
			stats.BestDayUnits = rec.UnitsSold
			stats.BestDay = rec.Date
		}
	}
	stats.AvgDailyUnits = float64(stats.TotalUnits) / float64(stats.Days)
	stats.Mean = stats.AvgDailyUnits

	variance := 0.0
	for _, rec := range series {
		d := float64(rec.UnitsSold) - stats.Mean
		variance += d * d
	}
	variance /= float64(len(series))
	stats.StdDev = math.Sqrt(variance)

	stats.Trend, stats.TrendPct = classifyTrend(series)

	if stats.StdDev > 0 && zThreshold > 0 {
		for _, rec := range series {
			z := (float64(rec.UnitsSold) - stats.Mean) / stats.StdDev
			if math.Abs(z) > zThreshold {
				stats.Anomalies = append(stats.Anomalies, Anomaly{
					Date:      rec.Date,
					UnitsSold: rec.UnitsSold,
					ZScore:    z,
				})
			}
		}
	}
	return stats
}

// classifyTrend compares the mean of the most recent third of the window
// against the earliest third.
func classifyTrend(series []models.SalesRecord) (string, float64) {
	third := len(series) / 3
	if third == 0 {
		return TrendFlat, 0
	}

	early := meanUnits(series[:third])
	recent := meanUnits(series[len(series)-third:])

	if early == 0 {
		if recent > 0 {
			return TrendRising, 100
		}
		return TrendFlat, 0
	}

	pct := (recent - early) / early * 100
	switch {
	case pct > trendThresholdPct:
		return TrendRising, pct
	case pct < -trendThresholdPct:
		return TrendFalling, pct
	default:
		return TrendFlat, pct
	}
}

func meanUnits(recs []models.SalesRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range recs {
		sum += rec.UnitsSold
	}
	return float64(sum) / float64(len(recs))
}
