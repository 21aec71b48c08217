package insights

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsight/gateway"
	"shopsight/models"
)

type fakeGateway struct {
	summary string
	err     error
	stats   gateway.SeriesStats
}

func (f *fakeGateway) ExtractQueryTerms(ctx context.Context, query string) ([]string, error) {
	return nil, gateway.ErrUnavailable
}

func (f *fakeGateway) SummarizeSeries(ctx context.Context, stats gateway.SeriesStats) (string, error) {
	f.stats = stats
	return f.summary, f.err
}

var tote = models.Product{ArticleID: "tote01", Name: "Leather Tote", Category: "bags"}

func TestGenerateUsesGatewayNarrative(t *testing.T) {
	gw := &fakeGateway{summary: "Steady demand with a healthy weekend pattern."}
	g := NewGenerator(gw, 2.0, 7)

	summary, findings := g.Generate(context.Background(), tote, seriesOf(10, 12, 11, 10, 13, 12, 11, 10, 12, 11))
	assert.Equal(t, gw.summary, summary)
	require.NotEmpty(t, findings)

	// Stats are computed before the gateway is consulted.
	assert.Equal(t, "Leather Tote", gw.stats.ProductName)
	assert.Equal(t, 10, gw.stats.Days)
	assert.Equal(t, 112, gw.stats.TotalUnits)
}

func TestGenerateFallsBackToTemplates(t *testing.T) {
	g := NewGenerator(&fakeGateway{err: gateway.ErrUnavailable}, 2.0, 7)

	summary, findings := g.Generate(context.Background(), tote, seriesOf(10, 12, 11, 10, 13, 12, 11, 10, 12, 11))
	assert.Contains(t, summary, "Leather Tote")
	require.NotEmpty(t, findings)

	kinds := map[string]bool{}
	for _, in := range findings {
		kinds[in.Type] = true
		assert.GreaterOrEqual(t, in.Confidence, 0.0)
		assert.LessOrEqual(t, in.Confidence, 1.0)
		assert.NotEmpty(t, in.Title)
		assert.NotEmpty(t, in.Description)
	}
	assert.True(t, kinds["trend"])
	assert.True(t, kinds["metric"])
	assert.True(t, kinds["performance"])
}

func TestGenerateInsufficientData(t *testing.T) {
	g := NewGenerator(&fakeGateway{summary: "should not be used"}, 2.0, 7)

	summary, findings := g.Generate(context.Background(), tote, seriesOf(5, 0, 3))
	assert.True(t, strings.Contains(strings.ToLower(summary), "not enough"))
	require.Len(t, findings, 1)
	assert.Equal(t, "Insufficient Data", findings[0].Title)
	assert.Less(t, findings[0].Confidence, 0.5)
}

func TestGenerateIncludesAnomalyInsight(t *testing.T) {
	g := NewGenerator(&fakeGateway{err: gateway.ErrUnavailable}, 2.0, 7)

	_, findings := g.Generate(context.Background(), tote, seriesOf(10, 10, 10, 10, 10, 10, 10, 50))
	var anomaly *models.Insight
	for i := range findings {
		if findings[i].Type == "anomaly" {
			anomaly = &findings[i]
		}
	}
	require.NotNil(t, anomaly, "spike day must be reported")
	assert.Contains(t, anomaly.Description, "50 units")
	assert.LessOrEqual(t, len(findings), 4)
}

func TestGenerateAdaptiveConfidenceScalesWithWindow(t *testing.T) {
	gw := &fakeGateway{summary: "fine"}
	g := NewGenerator(gw, 2.0, 7)

	shortUnits := []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	_, short := g.Generate(context.Background(), tote, seriesOf(shortUnits...))

	longUnits := make([]int, 60)
	for i := range longUnits {
		longUnits[i] = 5
	}
	_, long := g.Generate(context.Background(), tote, seriesOf(longUnits...))

	assert.Less(t, short[0].Confidence, long[0].Confidence)
	assert.Equal(t, 1.0, long[0].Confidence, "confidence is capped at 1.0")
}
