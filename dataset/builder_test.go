package dataset

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsight/models"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func tx(id, category string, price float64, qty, d int) models.RawTransaction {
	return models.RawTransaction{ArticleID: id, Category: category, UnitPrice: price, Quantity: qty, Date: day(d)}
}

func article(id, name, category string) models.RawArticle {
	return models.RawArticle{ArticleID: id, Name: name, Category: category}
}

func TestBuildAggregatesDuplicateRows(t *testing.T) {
	catalog := map[string]models.RawArticle{
		"p1": article("p1", "Leather Tote", "bags"),
	}
	feed := []models.RawTransaction{
		tx("p1", "bags", 10, 2, 1),
		tx("p1", "bags", 10, 3, 1), // same day, must be summed
		tx("p1", "bags", 12, 1, 2),
	}

	snap := Build(feed, catalog, 10)
	records, err := snap.History("p1", 90)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 5, records[0].UnitsSold)
	assert.Equal(t, 50.0, records[0].Revenue)
	assert.Equal(t, 1, records[1].UnitsSold)
	assert.Equal(t, 12.0, records[1].Revenue)
}

func TestBuildIsIdempotent(t *testing.T) {
	catalog := map[string]models.RawArticle{
		"p1": article("p1", "Leather Tote", "bags"),
		"p2": article("p2", "Canvas Belt", "belts"),
	}
	feed := []models.RawTransaction{
		tx("p1", "bags", 10, 2, 1),
		tx("p2", "belts", 5, 4, 1),
		tx("p1", "bags", 10, 1, 3),
	}

	first := Build(feed, catalog, 10)
	second := Build(feed, catalog, 10)

	assert.Equal(t, first.Products(), second.Products())
	for _, p := range first.Products() {
		a, err := first.History(p.ArticleID, 90)
		require.NoError(t, err)
		b, err := second.History(p.ArticleID, 90)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestBuildSamplesTopPerCategory(t *testing.T) {
	// Two categories: 15 bags and 5 belts. With K=10 the working catalog must
	// hold 10 bags plus all 5 belts.
	catalog := make(map[string]models.RawArticle)
	var feed []models.RawTransaction
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("bag%02d", i)
		catalog[id] = article(id, "Bag "+id, "bags")
		// Higher index, higher revenue.
		feed = append(feed, tx(id, "bags", float64(i+1), 1, 1))
	}
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("belt%02d", i)
		catalog[id] = article(id, "Belt "+id, "belts")
		feed = append(feed, tx(id, "belts", 2, 1, 1))
	}

	snap := Build(feed, catalog, 10)
	assert.Equal(t, 15, snap.NumProducts())

	bags, belts := 0, 0
	for _, p := range snap.Products() {
		switch p.Category {
		case "bags":
			bags++
		case "belts":
			belts++
		}
	}
	assert.Equal(t, 10, bags)
	assert.Equal(t, 5, belts)

	// The lowest-revenue bags are the ones cut.
	_, ok := snap.Product("bag00")
	assert.False(t, ok)
	_, ok = snap.Product("bag14")
	assert.True(t, ok)
}

func TestBuildDropsUnmatchedAndZeroSaleProducts(t *testing.T) {
	catalog := map[string]models.RawArticle{
		"p1": article("p1", "Leather Tote", "bags"),
		"p2": article("p2", "Never Sold", "bags"),
	}
	feed := []models.RawTransaction{
		tx("p1", "bags", 10, 1, 1),
		tx("ghost", "bags", 99, 1, 1), // not in catalog, dropped
	}

	snap := Build(feed, catalog, 10)
	assert.Equal(t, 1, snap.NumProducts())

	_, ok := snap.Product("p2")
	assert.False(t, ok, "product without sales must be dropped")
	_, ok = snap.Product("ghost")
	assert.False(t, ok)
}

func TestBuildEmptyFeed(t *testing.T) {
	snap := Build(nil, map[string]models.RawArticle{}, 10)
	assert.Equal(t, 0, snap.NumProducts())
	assert.Equal(t, 0, snap.NumSalesRecords())
	assert.Empty(t, snap.Products())
}

func TestBuildSetsAveragePrice(t *testing.T) {
	catalog := map[string]models.RawArticle{
		"p1": article("p1", "Leather Tote", "bags"),
	}
	feed := []models.RawTransaction{
		tx("p1", "bags", 10, 1, 1),
		tx("p1", "bags", 20, 1, 2),
	}

	snap := Build(feed, catalog, 10)
	p, ok := snap.Product("p1")
	require.True(t, ok)
	require.NotNil(t, p.Price)
	assert.InDelta(t, 15.0, *p.Price, 0.001)
}
