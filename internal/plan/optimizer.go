// Package plan computes the recurring donation amount for a matched charity:
// a psychologically anchored base, a bounded external adjustment, and a
// personalized impact description.
package plan

import (
	"fmt"
	"math"

	"givewise/internal/domain"
	"givewise/internal/signal"
)

// Share of monthly income donated per month, by comfort level.
var comfortPercentages = map[domain.ComfortLevel]float64{
	domain.ComfortLow:    0.002,
	domain.ComfortMedium: 0.005,
	domain.ComfortHigh:   0.01,
}

// Suggest builds the donation plan. The optimizer may propose a replacement
// amount but can never push it outside [max(3, base*0.5), base*2]; the
// charity minimum applies last.
func Suggest(p *domain.Profile, c *domain.Charity, optimizer signal.AmountOptimizer) (*domain.DonationPlan, error) {
	if c == nil {
		return nil, &domain.ValidationError{Field: "charity", Reason: "required"}
	}

	base := baseAmount(p)

	amount := base
	if optimizer != nil {
		amount = clamp(optimizer.Optimize(p, base), math.Max(3, base*0.5), base*2)
	}
	amount = math.Max(amount, c.MinDonation)

	return &domain.DonationPlan{
		Charity:     c,
		Amount:      amount,
		Frequency:   p.Frequency,
		AnnualTotal: amount * p.Frequency.PeriodsPerYear(),
		Impact:      impactDescription(p, c, amount),
	}, nil
}

// baseAmount is the comfort-scaled share of monthly income expressed per
// donation period, rounded to a friendly figure.
func baseAmount(p *domain.Profile) float64 {
	monthly := p.MonthlyIncome * comfortPercentages[p.ComfortLevel]
	return friendlyRound(monthly * p.Frequency.Divisor())
}

// friendlyRound snaps tiny amounts to $5, keeps small amounts at whole
// dollars, and rounds everything else to the nearest $5.
func friendlyRound(amount float64) float64 {
	switch {
	case amount < 5:
		return 5
	case amount < 10:
		return math.Round(amount)
	default:
		return math.Round(amount/5) * 5
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// impactDescription renders the charity's closest impact phrase for the
// amount, then appends at most one personality clause and one emotional
// driver clause.
func impactDescription(p *domain.Profile, c *domain.Charity, amount float64) string {
	metric := closestMetric(c.Metrics, amount)
	desc := fmt.Sprintf("%s, your $%.2f %s", p.Frequency.Adverb(), amount, metric.Phrase)

	if trait, weight := p.DominantTrait(); weight > 0.3 {
		switch trait {
		case "empathetic":
			desc += " - directly touching lives in your community"
		case "analytical":
			desc += fmt.Sprintf(" with %.1f%% efficiency rating", c.Efficiency)
		case "activist":
			desc += " - driving systemic change"
		}
	}

	for _, driver := range []string{"hope", "responsibility"} {
		if !hasDriver(p.EmotionalDrivers, driver) {
			continue
		}
		if driver == "hope" {
			desc += " building a better future"
		} else {
			desc += " fulfilling your commitment to change"
		}
		break
	}

	return desc
}

// closestMetric picks the reference amount nearest the donation, ties going
// to the smaller reference. Catalog validation guarantees at least one entry.
func closestMetric(metrics []domain.ImpactMetric, amount float64) domain.ImpactMetric {
	best := metrics[0]
	bestDist := math.Abs(best.Amount - amount)
	for _, m := range metrics[1:] {
		dist := math.Abs(m.Amount - amount)
		if dist < bestDist || (dist == bestDist && m.Amount < best.Amount) {
			best, bestDist = m, dist
		}
	}
	return best
}

func hasDriver(drivers []string, driver string) bool {
	for _, d := range drivers {
		if d == driver {
			return true
		}
	}
	return false
}
