package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsight/models"
)

func seriesOf(units ...int) []models.SalesRecord {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out := make([]models.SalesRecord, 0, len(units))
	for i, u := range units {
		out = append(out, models.SalesRecord{
			ArticleID: "p1",
			Date:      start.AddDate(0, 0, i),
			UnitsSold: u,
			Revenue:   float64(u) * 10,
		})
	}
	return out
}

func TestComputeFlagsSpikeAnomaly(t *testing.T) {
	// Seven flat days and a final spike: exactly one anomaly, on the last day.
	series := seriesOf(10, 10, 10, 10, 10, 10, 10, 50)

	stats := Compute(series, 2.0)
	require.Len(t, stats.Anomalies, 1)
	assert.Equal(t, series[7].Date, stats.Anomalies[0].Date)
	assert.Equal(t, 50, stats.Anomalies[0].UnitsSold)
	assert.Greater(t, stats.Anomalies[0].ZScore, 2.0)
}

func TestComputeZeroVarianceHasNoAnomalies(t *testing.T) {
	stats := Compute(seriesOf(5, 5, 5, 5, 5, 5), 2.0)
	assert.Empty(t, stats.Anomalies)
	assert.Equal(t, 0.0, stats.StdDev)
}

func TestComputeTrendClassification(t *testing.T) {
	tests := []struct {
		name  string
		units []int
		want  string
	}{
		{"rising", []int{10, 10, 10, 15, 15, 15, 20, 20, 20}, TrendRising},
		{"falling", []int{20, 20, 20, 15, 15, 15, 10, 10, 10}, TrendFalling},
		{"flat", []int{10, 10, 10, 10, 10, 10, 10, 10, 10}, TrendFlat},
		{"small change is flat", []int{10, 10, 10, 10, 10, 10, 10, 10, 11}, TrendFlat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stats := Compute(seriesOf(tc.units...), 2.0)
			assert.Equal(t, tc.want, stats.Trend)
		})
	}
}

func TestComputeTotalsAndBestDay(t *testing.T) {
	series := seriesOf(3, 0, 7, 2)

	stats := Compute(series, 2.0)
	assert.Equal(t, 12, stats.TotalUnits)
	assert.Equal(t, 120.0, stats.TotalRevenue)
	assert.Equal(t, 3, stats.NonZeroDays)
	assert.Equal(t, 4, stats.Days)
	assert.Equal(t, 7, stats.BestDayUnits)
	assert.Equal(t, series[2].Date, stats.BestDay)
	assert.InDelta(t, 3.0, stats.AvgDailyUnits, 0.001)
}

func TestComputeEmptySeries(t *testing.T) {
	stats := Compute(nil, 2.0)
	assert.Equal(t, 0, stats.Days)
	assert.Equal(t, TrendFlat, stats.Trend)
	assert.Empty(t, stats.Anomalies)
}
