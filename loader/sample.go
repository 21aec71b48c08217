package loader

import (
	"math/rand"
	"time"

	"shopsight/models"
)

// sampleSeed keeps generated data identical across boots so tests and repeated
// runs agree.
const sampleSeed = 42

// sampleDays is the length of the generated history window.
const sampleDays = 120

type sampleProduct struct {
	id          string
	name        string
	category    string
	description string
}

var sampleProducts = []sampleProduct{
	{"0108775001", "Running Shoes", "Sport", "lightweight running shoes with cushioned sole"},
	{"0108775002", "Winter Jacket", "Menswear", "insulated navy winter jacket"},
	{"0108775003", "Casual Sneakers", "Sport", "white everyday casual sneakers"},
	{"0108775004", "Sports T-Shirt", "Sport", "breathable red training t-shirt"},
	{"0108775005", "Yoga Pants", "Sport", "stretch black yoga pants"},
	{"0108775006", "Denim Jeans", "Menswear", "classic blue denim jeans"},
	{"0108775007", "Summer Dress", "Ladieswear", "floral summer dress"},
	{"0108775008", "Hoodie", "Menswear", "grey fleece hoodie"},
	{"0108775009", "Backpack", "Accessories", "black everyday backpack"},
	{"0108775010", "Baseball Cap", "Accessories", "navy adjustable baseball cap"},
}

// Sample generates a deterministic demo feed: ten fashion products with 120
// days of daily transactions showing weekend uplift and a mild per-product
// trend. Used when no real source is configured.
func Sample() *Feed {
	rng := rand.New(rand.NewSource(sampleSeed))

	catalog := make(map[string]models.RawArticle, len(sampleProducts))
	for _, p := range sampleProducts {
		catalog[p.id] = models.RawArticle{
			ArticleID:   p.id,
			Name:        p.name,
			Category:    p.category,
			Description: p.description,
		}
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -sampleDays)

	var transactions []models.RawTransaction
	for _, p := range sampleProducts {
		baseUnits := 5 + rng.Intn(25)
		basePrice := 20 + rng.Float64()*130
		trendPerDay := -0.002 + rng.Float64()*0.005

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			boost := 1.0
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				boost = 1.3
			}
			daysIn := d.Sub(start).Hours() / 24
			trend := 1 + trendPerDay*daysIn

			units := int(float64(baseUnits) * boost * trend * (0.7 + rng.Float64()*0.6))
			if units <= 0 {
				continue
			}
			price := basePrice * (0.95 + rng.Float64()*0.1)

			transactions = append(transactions, models.RawTransaction{
				ArticleID: p.id,
				Category:  p.category,
				UnitPrice: price,
				Quantity:  units,
				Date:      d,
			})
		}
	}

	return &Feed{Transactions: transactions, Catalog: catalog}
}
