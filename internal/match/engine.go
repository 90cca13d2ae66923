// Package match scores and ranks catalog charities against a donor profile.
package match

import (
	"fmt"
	"sort"
	"strings"

	"givewise/internal/catalog"
	"givewise/internal/domain"
)

// Composite score weights. The engagement and retention terms are additive
// bonuses, deliberately not normalized against the first two.
const (
	weightCompatibility = 0.7
	weightSemantic      = 0.2
	weightEngagement    = 0.1
	weightRetention     = 0.05

	// acceptThreshold is the minimum composite score for a candidate match.
	acceptThreshold = 0.3
)

// Rank scores every charity in the snapshot against the profile and returns
// the candidates above the acceptance threshold, best first. Equal scores
// keep catalog order. An empty result means no match, not an error.
func Rank(p *domain.Profile, snap *catalog.Snapshot) []domain.MatchResult {
	var results []domain.MatchResult
	for _, c := range snap.Charities() {
		score := compositeScore(p, c)
		if score <= acceptThreshold {
			continue
		}
		results = append(results, domain.MatchResult{
			Charity: c,
			Score:   score,
			Reasons: explain(p, c),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func compositeScore(p *domain.Profile, c *domain.Charity) float64 {
	return weightCompatibility*baseCompatibility(p, c) +
		weightSemantic*semanticSimilarity(p, c) +
		weightEngagement*p.Engagement() +
		weightRetention*c.RetentionRate
}

// baseCompatibility blends interest overlap (0.4), cause alignment (0.3),
// geographic fit (0.2), and efficiency (0.1), capped at 1.
func baseCompatibility(p *domain.Profile, c *domain.Charity) float64 {
	var score float64

	if len(p.Interests) > 0 {
		overlap := 0
		for _, interest := range p.Interests {
			if c.HasTag(interest) {
				overlap++
			}
		}
		score += 0.4 * float64(overlap) / float64(len(p.Interests))
	}

	if causeMatches(p.Causes, c.Category) {
		score += 0.3
	}

	if p.Geography == c.Location || c.Location == domain.GeoGlobal {
		score += 0.2
	}

	score += 0.1 * c.Efficiency / 100

	if score > 1 {
		score = 1
	}
	return score
}

func causeMatches(causes []string, category domain.Category) bool {
	for _, cause := range causes {
		if domain.NormalizeCause(cause) == string(category) {
			return true
		}
	}
	return false
}

// semanticSimilarity is the Jaccard overlap between the profile's extracted
// keywords and the charity description's word set. No keywords means no
// signal, scored zero.
func semanticSimilarity(p *domain.Profile, c *domain.Charity) float64 {
	if len(p.Keywords) == 0 {
		return 0
	}

	profileWords := make(map[string]bool, len(p.Keywords))
	for _, kw := range p.Keywords {
		profileWords[strings.ToLower(kw)] = true
	}
	descWords := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(c.Description)) {
		descWords[w] = true
	}
	if len(descWords) == 0 {
		return 0
	}

	intersection := 0
	for w := range profileWords {
		if descWords[w] {
			intersection++
		}
	}
	union := len(profileWords) + len(descWords) - intersection
	return float64(intersection) / float64(union)
}

// explain collects human-readable match reasons in priority order; a match
// with no specific reason gets the generic compatibility line.
func explain(p *domain.Profile, c *domain.Charity) []string {
	var reasons []string

	var shared []string
	for _, interest := range p.Interests {
		if c.HasTag(interest) {
			shared = append(shared, interest)
		}
	}
	if len(shared) > 0 {
		reasons = append(reasons, "interests alignment in "+strings.Join(shared, ", "))
	}

	if trait, weight := p.DominantTrait(); weight > 0.3 {
		reasons = append(reasons, fmt.Sprintf("matches your %s personality", trait))
	}

	if len(p.EmotionalDrivers) > 0 {
		drivers := p.EmotionalDrivers
		if len(drivers) > 2 {
			drivers = drivers[:2]
		}
		reasons = append(reasons, "aligns with your emotional drivers: "+strings.Join(drivers, ", "))
	}

	if c.ImpactScore > 0.9 {
		reasons = append(reasons, "high predicted impact potential")
	}
	if c.RetentionRate > 0.85 {
		reasons = append(reasons, "excellent donor satisfaction history")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "strong overall compatibility")
	}
	return reasons
}
