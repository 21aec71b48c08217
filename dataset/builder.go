package dataset

import (
	"log"
	"sort"
	"time"

	"shopsight/models"
)

// Build joins the raw transaction feed to the catalog, samples the top sellers
// from each category, and aggregates sales per product and day. The result is
// an immutable Snapshot shared by every analytics service.
//
// Sampling keeps the top perCategory products of each category ranked by total
// revenue, so that small categories stay represented instead of being crowded
// out by a global top-N. Products without a single matched transaction are
// dropped even when the raw catalog lists them.
func Build(feed []models.RawTransaction, catalog map[string]models.RawArticle, perCategory int) *Snapshot {
	if perCategory <= 0 {
		perCategory = 10
	}

	// First pass: total revenue per product, unmatched rows dropped.
	revenue := make(map[string]float64)
	matched := 0
	for _, tx := range feed {
		if _, ok := catalog[tx.ArticleID]; !ok {
			continue
		}
		if tx.Quantity <= 0 || tx.UnitPrice < 0 {
			continue
		}
		revenue[tx.ArticleID] += tx.UnitPrice * float64(tx.Quantity)
		matched++
	}
	log.Printf("Builder: %d of %d transactions matched the catalog (%d distinct products)", matched, len(feed), len(revenue))

	// Rank within each category and keep the top sellers.
	byCategory := make(map[string][]string)
	for id := range revenue {
		art := catalog[id]
		byCategory[art.Category] = append(byCategory[art.Category], id)
	}

	selected := make(map[string]bool)
	for category, ids := range byCategory {
		sort.Slice(ids, func(i, j int) bool {
			if revenue[ids[i]] != revenue[ids[j]] {
				return revenue[ids[i]] > revenue[ids[j]]
			}
			return ids[i] < ids[j]
		})
		keep := ids
		if len(keep) > perCategory {
			keep = keep[:perCategory]
		}
		for _, id := range keep {
			selected[id] = true
		}
		log.Printf("Builder: selected %d %q products", len(keep), category)
	}

	// Second pass: aggregate units and revenue per (product, date). Duplicate
	// rows for the same day are summed.
	type dayKey struct {
		id   string
		date time.Time
	}
	type dayAgg struct {
		units   int
		revenue float64
	}
	days := make(map[dayKey]*dayAgg)
	for _, tx := range feed {
		if !selected[tx.ArticleID] || tx.Quantity <= 0 || tx.UnitPrice < 0 {
			continue
		}
		key := dayKey{tx.ArticleID, truncateDay(tx.Date)}
		agg := days[key]
		if agg == nil {
			agg = &dayAgg{}
			days[key] = agg
		}
		agg.units += tx.Quantity
		agg.revenue += tx.UnitPrice * float64(tx.Quantity)
	}

	sales := make(map[string][]models.SalesRecord, len(selected))
	for key, agg := range days {
		sales[key.id] = append(sales[key.id], models.SalesRecord{
			ArticleID: key.id,
			Date:      key.date,
			UnitsSold: agg.units,
			Revenue:   agg.revenue,
		})
	}
	records := 0
	for _, recs := range sales {
		sort.Slice(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })
		records += len(recs)
	}

	// Materialize the working catalog. Price is the average realized unit
	// price across all transactions for the product.
	products := make(map[string]models.Product, len(selected))
	ids := make([]string, 0, len(selected))
	for id := range selected {
		art := catalog[id]
		p := models.Product{
			ArticleID:   id,
			Name:        art.Name,
			Category:    art.Category,
			Description: art.Description,
		}
		units := 0
		for _, rec := range sales[id] {
			units += rec.UnitsSold
		}
		if units > 0 {
			avg := revenue[id] / float64(units)
			p.Price = &avg
		}
		products[id] = p
		ids = append(ids, id)
	}
	sort.Strings(ids)

	log.Printf("Builder: working catalog has %d products and %d sales records", len(products), records)
	return &Snapshot{products: products, ids: ids, sales: sales}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
