package models

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// ProductResult is one ranked match in a search response.
type ProductResult struct {
	ArticleID   string   `json:"article_id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SearchResponse bundles the ranked results for one query.
type SearchResponse struct {
	Query   string          `json:"query"`
	Results []ProductResult `json:"results"`
	Count   int             `json:"count"`
}

// SalesPoint is a single day in a sales time series response.
type SalesPoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	UnitsSold int     `json:"units_sold"`
}

// SalesResponse is the historical sales payload for one product.
type SalesResponse struct {
	ArticleID    string       `json:"article_id"`
	ProductName  string       `json:"product_name"`
	Data         []SalesPoint `json:"data"`
	TotalRevenue float64      `json:"total_revenue"`
	TotalUnits   int          `json:"total_units"`
}

// ForecastPoint is a single predicted day with its confidence band.
type ForecastPoint struct {
	Date            string  `json:"date"`
	PredictedUnits  float64 `json:"predicted_units"`
	ConfidenceLower float64 `json:"confidence_lower"`
	ConfidenceUpper float64 `json:"confidence_upper"`
}

// ForecastResponse carries the projected demand and the method that produced it.
type ForecastResponse struct {
	ArticleID string          `json:"article_id"`
	Forecast  []ForecastPoint `json:"forecast"`
	Method    string          `json:"method"`
}

// SegmentsResponse lists the buyer personas for one product.
type SegmentsResponse struct {
	ArticleID string    `json:"article_id"`
	Segments  []Segment `json:"segments"`
}

// InsightsResponse bundles a narrative summary with individual insights.
type InsightsResponse struct {
	ArticleID string    `json:"article_id"`
	Summary   string    `json:"summary"`
	Insights  []Insight `json:"insights"`
}
