// Package handlers translates the HTTP surface into calls against the
// analytics services. Handlers hold no state of their own: every request reads
// the shared immutable snapshot.
package handlers

import (
	"shopsight/dataset"
	"shopsight/forecast"
	"shopsight/insights"
	"shopsight/search"
	"shopsight/segments"
)

// Handlers wires the analytics services into the HTTP surface.
type Handlers struct {
	snap             *dataset.Snapshot
	search           *search.Resolver
	insights         *insights.Generator
	forecast         *forecast.Engine
	segments         *segments.Catalog
	geminiConfigured bool
}

// New builds the handler set over an already-constructed snapshot and services.
func New(snap *dataset.Snapshot, resolver *search.Resolver, generator *insights.Generator, engine *forecast.Engine, personas *segments.Catalog, geminiConfigured bool) *Handlers {
	return &Handlers{
		snap:             snap,
		search:           resolver,
		insights:         generator,
		forecast:         engine,
		segments:         personas,
		geminiConfigured: geminiConfigured,
	}
}
