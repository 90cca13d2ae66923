package catalog

import (
	"context"

	"givewise/internal/domain"
)

// SeedLoader supplies the built-in charity catalog. Used when no external
// catalog source is configured, and by tests that need a realistic fixed set.
type SeedLoader struct{}

func (SeedLoader) Load(context.Context) ([]Record, error) {
	return seedRecords(), nil
}

func seedRecords() []Record {
	return []Record{
		{
			ID:          "water_org_001",
			Name:        "Clean Water Global",
			Category:    "water_sanitation",
			Description: "Provides clean water access to rural communities worldwide",
			Location:    "global",
			Efficiency:  92.5,
			Tags:        []string{"water", "health", "global", "sustainability", "children"},
			MinDonation: 5,
			Metrics: []domain.ImpactMetric{
				{Amount: 5, Phrase: "provides clean water for 2 people for 1 week"},
				{Amount: 25, Phrase: "maintains a water pump for 1 month"},
				{Amount: 100, Phrase: "contributes to building a new well"},
			},
			RetentionRate: 0.91,
			ImpactScore:   0.94,
		},
		{
			ID:          "edu_future_002",
			Name:        "Education for Tomorrow",
			Category:    "education",
			Description: "Funds educational programs and supplies for underprivileged children",
			Location:    "national",
			Efficiency:  88.3,
			Tags:        []string{"education", "children", "literacy", "opportunity", "local"},
			MinDonation: 10,
			Metrics: []domain.ImpactMetric{
				{Amount: 10, Phrase: "provides school supplies for 1 child for 1 month"},
				{Amount: 50, Phrase: "sponsors a child's education for 1 month"},
				{Amount: 200, Phrase: "funds a teacher's salary for 1 week"},
			},
			RetentionRate: 0.84,
			ImpactScore:   0.88,
		},
		{
			ID:          "green_earth_003",
			Name:        "Green Earth Initiative",
			Category:    "environment",
			Description: "Forest conservation and renewable energy projects",
			Location:    "global",
			Efficiency:  85.7,
			Tags:        []string{"environment", "climate", "forests", "renewable", "future"},
			MinDonation: 8,
			Metrics: []domain.ImpactMetric{
				{Amount: 8, Phrase: "plants and maintains 2 trees for 1 year"},
				{Amount: 40, Phrase: "powers a rural home with solar for 1 month"},
				{Amount: 160, Phrase: "protects 1 acre of rainforest"},
			},
			RetentionRate: 0.78,
			ImpactScore:   0.86,
		},
		{
			ID:          "hungry_no_more_004",
			Name:        "Hungry No More",
			Category:    "hunger",
			Description: "Provides meals and nutrition programs for food-insecure families",
			Location:    "local",
			Efficiency:  94.2,
			Tags:        []string{"hunger", "nutrition", "families", "local", "emergency"},
			MinDonation: 3,
			Metrics: []domain.ImpactMetric{
				{Amount: 3, Phrase: "provides 1 nutritious meal"},
				{Amount: 15, Phrase: "feeds a family of 4 for 1 day"},
				{Amount: 90, Phrase: "provides weekly groceries for a family for 1 month"},
			},
			RetentionRate: 0.88,
			ImpactScore:   0.92,
		},
		{
			ID:          "animal_rescue_005",
			Name:        "Wildlife Protection Society",
			Category:    "animals",
			Description: "Rescues and rehabilitates endangered wildlife",
			Location:    "global",
			Efficiency:  87.9,
			Tags:        []string{"animals", "wildlife", "conservation", "rescue", "habitat"},
			MinDonation: 12,
			Metrics: []domain.ImpactMetric{
				{Amount: 12, Phrase: "provides medical care for 1 rescued animal"},
				{Amount: 60, Phrase: "maintains habitat protection for 1 month"},
				{Amount: 300, Phrase: "funds a wildlife rescue operation"},
			},
			RetentionRate: 0.81,
			ImpactScore:   0.9,
		},
	}
}
