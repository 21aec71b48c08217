package segments

import "shopsight/models"

// defaultFallback is returned alone, at a full share, for unknown categories.
var defaultFallback = models.Segment{
	Name:       "General Shoppers",
	Percentage: 100,
	AgeRange:   "18-65",
	Characteristics: []string{
		"Broad demographic",
		"Mixed purchase motivations",
		"Moderate price sensitivity",
	},
	PurchaseLikelihood: 0.6,
}

// defaultCategories is the built-in persona table, keyed by category keywords.
var defaultCategories = []categoryPersonas{
	{
		Keywords: []string{"sport", "shoe", "sneaker", "activewear", "footwear"},
		Segments: []models.Segment{
			{
				Name:       "Active Athletes",
				Percentage: 35,
				AgeRange:   "25-34",
				Characteristics: []string{
					"High purchase frequency",
					"Brand conscious",
					"Values performance features",
					"Willing to pay premium",
				},
				PurchaseLikelihood: 0.85,
			},
			{
				Name:       "Fitness Enthusiasts",
				Percentage: 28,
				AgeRange:   "35-44",
				Characteristics: []string{
					"Regular gym-goers",
					"Quality focused",
					"Moderate spending",
					"Loyal to brands",
				},
				PurchaseLikelihood: 0.72,
			},
			{
				Name:       "Casual Buyers",
				Percentage: 37,
				AgeRange:   "18-24",
				Characteristics: []string{
					"Price sensitive",
					"Trend followers",
					"Occasional purchases",
					"Social media influenced",
				},
				PurchaseLikelihood: 0.58,
			},
		},
	},
	{
		Keywords: []string{"ladies", "women", "dress"},
		Segments: []models.Segment{
			{
				Name:       "Fashion Forward",
				Percentage: 32,
				AgeRange:   "25-34",
				Characteristics: []string{
					"Trend conscious",
					"Frequent shoppers",
					"Social media active",
					"Medium to high spending",
				},
				PurchaseLikelihood: 0.78,
			},
			{
				Name:       "Classic Professionals",
				Percentage: 28,
				AgeRange:   "35-50",
				Characteristics: []string{
					"Quality over quantity",
					"Timeless style preference",
					"Higher price tolerance",
					"Brand loyal",
				},
				PurchaseLikelihood: 0.81,
			},
			{
				Name:       "Value Seekers",
				Percentage: 40,
				AgeRange:   "18-30",
				Characteristics: []string{
					"Budget conscious",
					"Sale shoppers",
					"Mix and match style",
					"Online shoppers",
				},
				PurchaseLikelihood: 0.65,
			},
		},
	},
	{
		Keywords: []string{"men", "male"},
		Segments: []models.Segment{
			{
				Name:       "Modern Professionals",
				Percentage: 38,
				AgeRange:   "30-45",
				Characteristics: []string{
					"Work wardrobe focused",
					"Quality conscious",
					"Efficient shoppers",
					"Brand preference",
				},
				PurchaseLikelihood: 0.76,
			},
			{
				Name:       "Casual Comfort",
				Percentage: 35,
				AgeRange:   "25-40",
				Characteristics: []string{
					"Comfort prioritized",
					"Practical choices",
					"Moderate spending",
					"Infrequent shopping",
				},
				PurchaseLikelihood: 0.68,
			},
			{
				Name:       "Young Trendsetters",
				Percentage: 27,
				AgeRange:   "18-28",
				Characteristics: []string{
					"Style conscious",
					"Social media influenced",
					"Price sensitive",
					"Frequent browsers",
				},
				PurchaseLikelihood: 0.62,
			},
		},
	},
	{
		Keywords: []string{"accessor", "bag", "belt", "hat", "jewel"},
		Segments: []models.Segment{
			{
				Name:       "Frequent Shoppers",
				Percentage: 30,
				AgeRange:   "25-40",
				Characteristics: []string{
					"Regular purchases",
					"Brand aware",
					"Medium spending",
					"Quality focused",
				},
				PurchaseLikelihood: 0.75,
			},
			{
				Name:       "Occasional Buyers",
				Percentage: 45,
				AgeRange:   "30-50",
				Characteristics: []string{
					"Need-based shopping",
					"Value conscious",
					"Research before buying",
					"Moderate loyalty",
				},
				PurchaseLikelihood: 0.65,
			},
			{
				Name:       "Bargain Hunters",
				Percentage: 25,
				AgeRange:   "18-35",
				Characteristics: []string{
					"Price driven",
					"Sale focused",
					"Impulse buyers",
					"Low brand loyalty",
				},
				PurchaseLikelihood: 0.52,
			},
		},
	},
}
