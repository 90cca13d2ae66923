package domain

import "strings"

// Category identifies a charity's cause area. The matching and projection
// tables know the categories below; anything else is carried through as-is
// and falls back to generic handling.
type Category string

const (
	CategoryWaterSanitation Category = "water_sanitation"
	CategoryEducation       Category = "education"
	CategoryEnvironment     Category = "environment"
	CategoryHunger          Category = "hunger"
	CategoryAnimals         Category = "animals"
)

// NormalizeCause canonicalizes a declared cause so it can be compared with
// category identifiers: lowercase, with every run of non-alphanumeric
// characters collapsed to a single underscore ("Water & Sanitation" becomes
// "water_sanitation").
func NormalizeCause(raw string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(raw) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ImpactMetric maps a reference donation amount to a human-readable impact
// phrase, e.g. 5 -> "provides clean water for 2 people for 1 week".
type ImpactMetric struct {
	Amount float64 `json:"amount"`
	Phrase string  `json:"phrase"`
}

// Charity is a catalog entry. Immutable once the catalog snapshot is built;
// RetentionRate and ImpactScore are derived at load time and stable
// thereafter.
type Charity struct {
	ID          string
	Name        string
	Category    Category
	Description string
	Location    GeoScope
	Efficiency  float64
	Tags        []string
	MinDonation float64
	Metrics     []ImpactMetric

	RetentionRate float64
	ImpactScore   float64
}

// HasTag reports whether the charity carries the given tag.
func (c *Charity) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
