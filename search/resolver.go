// Package search resolves free-text queries into ranked product matches,
// preferring language-model term extraction and degrading to deterministic
// tokenization when the gateway is unavailable.
package search

import (
	"context"
	"log"
	"sort"
	"strings"

	"shopsight/dataset"
	"shopsight/gateway"
	"shopsight/metrics"
	"shopsight/models"
)

// Resolver matches queries against the catalog snapshot.
type Resolver struct {
	snap      *dataset.Snapshot
	llm       gateway.Client
	stopwords map[string]bool
}

// NewResolver builds a resolver over the given snapshot. stopwords may be nil,
// in which case the built-in set is used.
func NewResolver(snap *dataset.Snapshot, llm gateway.Client, stopwords map[string]bool) *Resolver {
	if stopwords == nil {
		stopwords = defaultStopwords
	}
	return &Resolver{snap: snap, llm: llm, stopwords: stopwords}
}

// Resolve returns up to limit products ranked by match strength. It never
// fails on an empty result; a query with no matches yields an empty slice.
func (r *Resolver) Resolve(ctx context.Context, query string, limit int) []models.ProductResult {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []models.ProductResult{}
	}

	terms, err := r.llm.ExtractQueryTerms(ctx, query)
	if err != nil {
		terms = r.Tokenize(query)
		metrics.ObserveGateway("extract_query_terms", metrics.OutcomeFallback)
		log.Printf("Search falling back to tokenized query %q -> %v", query, terms)
	}

	matches := r.rank(terms, limit)
	if len(matches) == 0 && err == nil {
		// The extracted terms hit nothing; retry with the raw tokens.
		matches = r.rank(r.Tokenize(query), limit)
	}
	return matches
}

// Tokenize lowercases the query, splits on whitespace, strips punctuation and
// drops stopwords. This is the deterministic fallback for term extraction.
func (r *Resolver) Tokenize(query string) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, field := range strings.Fields(strings.ToLower(query)) {
		word := strings.Trim(field, ".,!?;:\"'()[]")
		if len(word) < 2 || r.stopwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		terms = append(terms, word)
	}
	return terms
}

// rank scores every product by the count of distinct terms found in its
// searchable text and returns the strongest matches, ties broken by article id.
func (r *Resolver) rank(terms []string, limit int) []models.ProductResult {
	if len(terms) == 0 {
		return []models.ProductResult{}
	}

	type scored struct {
		product models.Product
		score   int
	}
	var candidates []scored
	for _, p := range r.snap.Products() {
		text := searchableText(p)
		score := 0
		for _, term := range terms {
			if strings.Contains(text, term) {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{product: p, score: score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].product.ArticleID < candidates[j].product.ArticleID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	results := make([]models.ProductResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, toResult(c.product))
	}
	return results
}

func searchableText(p models.Product) string {
	return strings.ToLower(p.Name + " " + p.Category + " " + p.Description)
}

func toResult(p models.Product) models.ProductResult {
	desc := p.Description
	if desc == "" {
		// Compose something presentable from the attributes we do have.
		parts := []string{}
		if p.Category != "" {
			parts = append(parts, p.Category)
		}
		if p.Name != "" {
			parts = append(parts, "from the "+p.Name+" line")
		}
		desc = strings.Join(parts, " ")
	}
	return models.ProductResult{
		ArticleID:   p.ArticleID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Description: desc,
	}
}
