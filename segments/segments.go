// Package segments maps product categories to a fixed catalog of buyer
// personas. The table is declarative data: it ships with built-in defaults and
// can be replaced by a YAML file, validated at load time.
package segments

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"shopsight/models"
)

// percentageTolerance is the rounding slack allowed when checking that one
// category's segment shares sum to 100.
const percentageTolerance = 1.0

// categoryPersonas binds a set of category keywords to an ordered persona list.
type categoryPersonas struct {
	Keywords []string         `yaml:"keywords"`
	Segments []models.Segment `yaml:"segments"`
}

type tableFile struct {
	Categories []categoryPersonas `yaml:"categories"`
	Default    *models.Segment    `yaml:"default"`
}

// Catalog is the loaded, validated persona table. Immutable after Load.
type Catalog struct {
	categories []categoryPersonas
	fallback   models.Segment
}

// Load reads a persona table from a YAML file, or returns the built-in table
// when path is empty. The table is rejected if any category's percentages do
// not sum to 100 (± rounding) or a purchase likelihood leaves [0, 1].
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read persona table: %w", err)
	}
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse persona table: %w", err)
	}

	catalog := &Catalog{categories: file.Categories, fallback: defaultFallback}
	if file.Default != nil {
		catalog.fallback = *file.Default
	}
	if err := catalog.validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Default returns the built-in persona table.
func Default() *Catalog {
	return &Catalog{categories: defaultCategories, fallback: defaultFallback}
}

// SegmentsFor returns the persona list for a product's category, deterministic
// for a given category. An unknown category yields the single fallback persona
// at a 100% share.
func (c *Catalog) SegmentsFor(product models.Product) []models.Segment {
	category := strings.ToLower(product.Category)
	for _, entry := range c.categories {
		for _, keyword := range entry.Keywords {
			if strings.Contains(category, keyword) {
				out := make([]models.Segment, len(entry.Segments))
				copy(out, entry.Segments)
				return out
			}
		}
	}
	return []models.Segment{c.fallback}
}

func (c *Catalog) validate() error {
	for i, entry := range c.categories {
		if len(entry.Keywords) == 0 {
			return fmt.Errorf("persona table: category %d has no keywords", i)
		}
		if len(entry.Segments) == 0 {
			return fmt.Errorf("persona table: category %q has no segments", entry.Keywords[0])
		}
		total := 0.0
		for _, seg := range entry.Segments {
			total += seg.Percentage
			if seg.PurchaseLikelihood < 0 || seg.PurchaseLikelihood > 1 {
				return fmt.Errorf("persona table: segment %q likelihood %.2f outside [0,1]", seg.Name, seg.PurchaseLikelihood)
			}
		}
		if math.Abs(total-100) > percentageTolerance {
			return fmt.Errorf("persona table: category %q percentages sum to %.1f, want 100", entry.Keywords[0], total)
		}
	}
	if c.fallback.Percentage != 100 {
		return fmt.Errorf("persona table: default segment must hold 100%%, has %.1f", c.fallback.Percentage)
	}
	return nil
}
