// Package impact projects a donation plan into concrete impact metrics, a
// beneficiary estimate, and a milestone timeline over an evaluation horizon.
package impact

import (
	"math"
	"time"

	"givewise/internal/domain"
)

// metricRate converts donated dollars into units of a named impact metric.
type metricRate struct {
	Name           string
	DollarsPerUnit float64
}

// categoryMetrics are the fixed dollars-per-unit conversion tables. Order is
// part of the contract: metrics render in this order.
var categoryMetrics = map[domain.Category][]metricRate{
	domain.CategoryWaterSanitation: {
		{"people_served", 2.5},
		{"weeks_of_access", 2.5},
		{"wells_supported", 100},
	},
	domain.CategoryEducation: {
		{"children_supported", 50},
		{"school_supplies_provided", 10},
		{"teacher_hours_funded", 28.57},
	},
	domain.CategoryEnvironment: {
		{"trees_planted", 4},
		{"acres_protected", 160},
		{"solar_powered_days", 1.33},
	},
	domain.CategoryHunger: {
		{"meals_provided", 3},
		{"families_fed", 15},
		{"grocery_weeks_funded", 22.5},
	},
	domain.CategoryAnimals: {
		{"animals_treated", 12},
		{"habitat_protection_days", 2},
		{"rescue_operations", 300},
	},
}

// beneficiaryRates are dollars per beneficiary, by category.
var beneficiaryRates = map[domain.Category]float64{
	domain.CategoryWaterSanitation: 2.5,
	domain.CategoryEducation:       50,
	domain.CategoryEnvironment:     100,
	domain.CategoryHunger:          15,
	domain.CategoryAnimals:         12,
}

const defaultBeneficiaryRate = 25

// categoryMilestones are ordered weakest to strongest; the cumulative-amount
// bucket picks which one a timeline entry carries.
var categoryMilestones = map[domain.Category][]string{
	domain.CategoryWaterSanitation: {
		"Milestone: Provided clean water for 10 people for a month!",
		"Milestone: Supported maintenance of a water pump for a full month!",
		"Milestone: Contributed to building a new well access point!",
	},
	domain.CategoryEducation: {
		"Milestone: Provided school supplies for an entire classroom!",
		"Milestone: Sponsored a child's education for a full semester!",
		"Milestone: Funded a week of teacher training!",
	},
	domain.CategoryEnvironment: {
		"Milestone: Planted a small forest of 25 trees!",
		"Milestone: Protected an acre of rainforest!",
		"Milestone: Powered a village with solar for a month!",
	},
}

const genericMilestone = "Milestone: Making a real difference!"

// Projector builds impact reports. The clock is injectable so timelines are
// reproducible in tests.
type Projector struct {
	nowFn func() time.Time
}

// New creates a Projector using the real clock.
func New() *Projector {
	return &Projector{nowFn: time.Now}
}

// NewWithClock creates a Projector with a fixed clock.
func NewWithClock(nowFn func() time.Time) *Projector {
	return &Projector{nowFn: nowFn}
}

// Project maps the plan into category metrics, a beneficiary estimate, and a
// chronological timeline covering horizonMonths.
func (pr *Projector) Project(plan *domain.DonationPlan, horizonMonths int) (*domain.ImpactReport, error) {
	if plan == nil || plan.Charity == nil {
		return nil, &domain.ValidationError{Field: "plan", Reason: "required"}
	}
	if horizonMonths < 0 {
		return nil, &domain.ValidationError{Field: "horizon_months", Reason: "must not be negative"}
	}

	total := plan.Amount * plan.Frequency.PeriodsPerMonth() * float64(horizonMonths)

	return &domain.ImpactReport{
		CharityName:   plan.Charity.Name,
		TotalDonated:  total,
		Metrics:       metrics(plan.Charity.Category, total),
		Beneficiaries: beneficiaries(plan.Charity.Category, total),
		Timeline:      pr.timeline(plan, horizonMonths),
	}, nil
}

// metrics converts the donated total into category units. Unknown categories
// get an empty map, never an error.
func metrics(category domain.Category, total float64) map[string]float64 {
	rates, ok := categoryMetrics[category]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(rates))
	for _, r := range rates {
		out[r.Name] = total / r.DollarsPerUnit
	}
	return out
}

func beneficiaries(category domain.Category, total float64) int {
	rate, ok := beneficiaryRates[category]
	if !ok {
		rate = defaultBeneficiaryRate
	}
	return int(math.Floor(total / rate))
}

// timeline emits one entry per donation period within the horizon, oldest
// first. Every 5th entry carries a milestone chosen by cumulative bucket.
func (pr *Projector) timeline(plan *domain.DonationPlan, horizonMonths int) []domain.TimelineEntry {
	periodDays := plan.Frequency.PeriodDays()
	entries := horizonMonths * (30 / periodDays)
	if entries <= 0 {
		return nil
	}

	start := pr.nowFn()
	timeline := make([]domain.TimelineEntry, 0, entries)
	cumulative := 0.0
	for i := 0; i < entries; i++ {
		cumulative += plan.Amount
		entry := domain.TimelineEntry{
			Date:       start.AddDate(0, 0, i*periodDays),
			Amount:     plan.Amount,
			Cumulative: cumulative,
		}
		if i%5 == 4 {
			entry.Milestone = milestone(plan.Charity.Category, cumulative)
		}
		timeline = append(timeline, entry)
	}
	return timeline
}

// milestone picks a narrative marker by cumulative-amount bucket: over $200
// the strongest line, over $100 the middle one, otherwise the first.
func milestone(category domain.Category, cumulative float64) string {
	lines, ok := categoryMilestones[category]
	if !ok {
		return genericMilestone
	}
	switch {
	case cumulative > 200:
		return lines[len(lines)-1]
	case cumulative > 100 && len(lines) > 1:
		return lines[len(lines)-2]
	default:
		return lines[0]
	}
}
