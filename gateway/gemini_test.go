package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeylessGatewayIsUnavailable(t *testing.T) {
	g := NewGemini("", "", time.Second)

	_, err := g.ExtractQueryTerms(context.Background(), "comfortable bag")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = g.SummarizeSeries(context.Background(), SeriesStats{ProductName: "Leather Tote"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNilGatewayIsUnavailable(t *testing.T) {
	var g *Gemini
	_, err := g.generate(context.Background(), "extract_query_terms", "anything")
	assert.ErrorIs(t, err, ErrUnavailable)
}
