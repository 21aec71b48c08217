package dataset

import (
	"errors"
	"time"

	"shopsight/models"
)

// ErrProductNotFound is returned when an article id is absent from the working catalog.
var ErrProductNotFound = errors.New("product not found")

// Snapshot is the immutable working dataset built once at startup. All reads
// are lock-free; nothing mutates a Snapshot after Build returns, so it is safe
// to share across concurrent requests.
type Snapshot struct {
	products map[string]models.Product
	ids      []string // sorted ascending
	sales    map[string][]models.SalesRecord
}

// Product returns the catalog entry for the given article id.
func (s *Snapshot) Product(articleID string) (models.Product, bool) {
	p, ok := s.products[articleID]
	return p, ok
}

// Products returns the working catalog ordered by article id.
func (s *Snapshot) Products() []models.Product {
	out := make([]models.Product, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.products[id])
	}
	return out
}

// NumProducts reports the size of the working catalog.
func (s *Snapshot) NumProducts() int { return len(s.ids) }

// NumSalesRecords reports the total number of aggregated (product, date) records.
func (s *Snapshot) NumSalesRecords() int {
	n := 0
	for _, recs := range s.sales {
		n += len(recs)
	}
	return n
}

// History returns the transacted days for a product within the trailing window,
// anchored at the product's most recent sale date. Days without sales are not
// materialized; use Series for a gap-filled view.
func (s *Snapshot) History(articleID string, days int) ([]models.SalesRecord, error) {
	recs, ok := s.sales[articleID]
	if !ok || len(recs) == 0 {
		return nil, ErrProductNotFound
	}
	end := recs[len(recs)-1].Date
	start := end.AddDate(0, 0, -days)
	out := make([]models.SalesRecord, 0, len(recs))
	for _, rec := range recs {
		if rec.Date.After(start) || rec.Date.Equal(start) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Series returns a contiguous daily series for a product over the trailing
// window, anchored at the product's most recent sale date. Days with no sales
// are filled with zero units and zero revenue.
func (s *Snapshot) Series(articleID string, days int) ([]models.SalesRecord, error) {
	recs, ok := s.sales[articleID]
	if !ok || len(recs) == 0 {
		return nil, ErrProductNotFound
	}
	if days <= 0 {
		return nil, nil
	}

	end := recs[len(recs)-1].Date
	start := end.AddDate(0, 0, -(days - 1))
	if first := recs[0].Date; first.After(start) {
		start = first
	}

	byDate := make(map[time.Time]models.SalesRecord, len(recs))
	for _, rec := range recs {
		byDate[rec.Date] = rec
	}

	var out []models.SalesRecord
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if rec, ok := byDate[d]; ok {
			out = append(out, rec)
		} else {
			out = append(out, models.SalesRecord{ArticleID: articleID, Date: d})
		}
	}
	return out, nil
}
