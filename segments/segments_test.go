package segments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsight/models"
)

func TestDefaultTablePercentagesSumTo100(t *testing.T) {
	catalog := Default()
	require.NoError(t, catalog.validate())

	for _, entry := range catalog.categories {
		total := 0.0
		for _, seg := range entry.Segments {
			total += seg.Percentage
		}
		assert.InDelta(t, 100.0, total, 1.0, "category %v", entry.Keywords)
	}
}

func TestSegmentsForKnownCategories(t *testing.T) {
	catalog := Default()

	tests := []struct {
		category string
		first    string
	}{
		{"Sport", "Active Athletes"},
		{"Ladieswear", "Fashion Forward"},
		{"Menswear", "Modern Professionals"},
		{"Accessories", "Frequent Shoppers"},
	}
	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			segs := catalog.SegmentsFor(models.Product{ArticleID: "x", Category: tc.category})
			require.NotEmpty(t, segs)
			assert.Equal(t, tc.first, segs[0].Name)

			total := 0.0
			for _, s := range segs {
				total += s.Percentage
				assert.GreaterOrEqual(t, s.PurchaseLikelihood, 0.0)
				assert.LessOrEqual(t, s.PurchaseLikelihood, 1.0)
			}
			assert.InDelta(t, 100.0, total, 1.0)
		})
	}
}

func TestSegmentsForUnknownCategory(t *testing.T) {
	segs := Default().SegmentsFor(models.Product{ArticleID: "x", Category: "spacecraft"})
	require.Len(t, segs, 1)
	assert.Equal(t, 100.0, segs[0].Percentage)
	assert.Equal(t, "General Shoppers", segs[0].Name)
}

func TestSegmentsForIsDeterministic(t *testing.T) {
	catalog := Default()
	p := models.Product{ArticleID: "x", Category: "Sport"}
	assert.Equal(t, catalog.SegmentsFor(p), catalog.SegmentsFor(p))
}

func TestLoadValidTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	table := `
categories:
  - keywords: ["garden"]
    segments:
      - name: Weekend Gardeners
        percentage: 60
        age_range: 35-55
        characteristics: ["Seasonal buyers"]
        purchase_likelihood: 0.7
      - name: Landscapers
        percentage: 40
        age_range: 25-45
        characteristics: ["Bulk purchases"]
        purchase_likelihood: 0.9
`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))

	catalog, err := Load(path)
	require.NoError(t, err)

	segs := catalog.SegmentsFor(models.Product{Category: "Gardening"})
	require.Len(t, segs, 2)
	assert.Equal(t, "Weekend Gardeners", segs[0].Name)
	assert.Equal(t, "35-55", segs[0].AgeRange)
}

func TestLoadRejectsBadPercentages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	table := `
categories:
  - keywords: ["garden"]
    segments:
      - name: Weekend Gardeners
        percentage: 60
        age_range: 35-55
        purchase_likelihood: 0.7
`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "percentages")
}

func TestLoadRejectsBadLikelihood(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	table := `
categories:
  - keywords: ["garden"]
    segments:
      - name: Weekend Gardeners
        percentage: 100
        age_range: 35-55
        purchase_likelihood: 1.7
`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "likelihood")
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	catalog, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().categories, catalog.categories)
}
