package impact

import (
	"math"
	"testing"
	"time"

	"givewise/internal/domain"
)

var fixedNow = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func weeklyPlan(amount float64, category domain.Category) *domain.DonationPlan {
	return &domain.DonationPlan{
		Charity: &domain.Charity{
			Name:     "Test Charity",
			Category: category,
		},
		Amount:    amount,
		Frequency: domain.FrequencyWeekly,
	}
}

func TestProjectTimelineLengthAndCumulative(t *testing.T) {
	tests := []struct {
		name      string
		frequency domain.Frequency
		horizon   int
		wantLen   int
	}{
		{"weekly six months", domain.FrequencyWeekly, 6, 24},
		{"weekly one month", domain.FrequencyWeekly, 1, 4},
		{"monthly six months", domain.FrequencyMonthly, 6, 6},
		{"quarterly yields no periods within a month", domain.FrequencyQuarterly, 6, 0},
	}

	pr := NewWithClock(fixedClock)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan := weeklyPlan(10, domain.CategoryWaterSanitation)
			plan.Frequency = tc.frequency

			report, err := pr.Project(plan, tc.horizon)
			if err != nil {
				t.Fatalf("Project() error = %v", err)
			}
			if len(report.Timeline) != tc.wantLen {
				t.Fatalf("timeline length = %d, want %d", len(report.Timeline), tc.wantLen)
			}
			if tc.wantLen > 0 {
				last := report.Timeline[len(report.Timeline)-1]
				if want := plan.Amount * float64(tc.wantLen); last.Cumulative != want {
					t.Errorf("final cumulative = %v, want %v", last.Cumulative, want)
				}
			}
		})
	}
}

func TestProjectTimelineChronology(t *testing.T) {
	pr := NewWithClock(fixedClock)
	report, err := pr.Project(weeklyPlan(10, domain.CategoryWaterSanitation), 2)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	for i, entry := range report.Timeline {
		want := fixedNow.AddDate(0, 0, i*7)
		if !entry.Date.Equal(want) {
			t.Errorf("entry %d date = %v, want %v", i, entry.Date, want)
		}
		if entry.Amount != 10 {
			t.Errorf("entry %d amount = %v, want 10", i, entry.Amount)
		}
	}
}

func TestProjectMilestonePlacementAndBuckets(t *testing.T) {
	// $30 weekly over 6 months: milestones at indexes 4, 9, 14, 19 with
	// cumulative 150, 300, 450, 600.
	pr := NewWithClock(fixedClock)
	report, err := pr.Project(weeklyPlan(30, domain.CategoryWaterSanitation), 6)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	lines := categoryMilestones[domain.CategoryWaterSanitation]
	for i, entry := range report.Timeline {
		if i%5 == 4 {
			if entry.Milestone == "" {
				t.Errorf("entry %d: missing milestone", i)
			}
			continue
		}
		if entry.Milestone != "" {
			t.Errorf("entry %d: unexpected milestone %q", i, entry.Milestone)
		}
	}
	if got := report.Timeline[4].Milestone; got != lines[1] {
		t.Errorf("cumulative 150 milestone = %q, want middle line %q", got, lines[1])
	}
	if got := report.Timeline[9].Milestone; got != lines[2] {
		t.Errorf("cumulative 300 milestone = %q, want strongest line %q", got, lines[2])
	}
}

func TestProjectMilestoneFirstBucket(t *testing.T) {
	pr := NewWithClock(fixedClock)
	report, err := pr.Project(weeklyPlan(5, domain.CategoryEducation), 2)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	// Cumulative at index 4 is $25, inside the first bucket.
	if got := report.Timeline[4].Milestone; got != categoryMilestones[domain.CategoryEducation][0] {
		t.Errorf("milestone = %q, want first education line", got)
	}
}

func TestProjectGenericMilestoneForUnknownCategory(t *testing.T) {
	pr := NewWithClock(fixedClock)
	report, err := pr.Project(weeklyPlan(10, "disaster_relief"), 2)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if got := report.Timeline[4].Milestone; got != genericMilestone {
		t.Errorf("milestone = %q, want generic fallback", got)
	}
}

func TestProjectTotalsAndMetrics(t *testing.T) {
	pr := NewWithClock(fixedClock)
	report, err := pr.Project(weeklyPlan(10, domain.CategoryWaterSanitation), 6)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	wantTotal := 10 * 4.33 * 6
	if math.Abs(report.TotalDonated-wantTotal) > 1e-9 {
		t.Errorf("TotalDonated = %v, want %v", report.TotalDonated, wantTotal)
	}
	if got := report.Metrics["people_served"]; math.Abs(got-wantTotal/2.5) > 1e-9 {
		t.Errorf("people_served = %v, want %v", got, wantTotal/2.5)
	}
	if got := report.Metrics["wells_supported"]; math.Abs(got-wantTotal/100) > 1e-9 {
		t.Errorf("wells_supported = %v, want %v", got, wantTotal/100)
	}
	if want := int(math.Floor(wantTotal / 2.5)); report.Beneficiaries != want {
		t.Errorf("Beneficiaries = %d, want %d", report.Beneficiaries, want)
	}
}

func TestProjectUnknownCategoryMetrics(t *testing.T) {
	pr := NewWithClock(fixedClock)
	report, err := pr.Project(weeklyPlan(10, "disaster_relief"), 6)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if len(report.Metrics) != 0 {
		t.Errorf("Metrics = %v, want empty map for unknown category", report.Metrics)
	}
	wantTotal := 10 * 4.33 * 6
	if want := int(math.Floor(wantTotal / 25)); report.Beneficiaries != want {
		t.Errorf("Beneficiaries = %d, want default-rate estimate %d", report.Beneficiaries, want)
	}
}

func TestProjectRejectsNegativeHorizon(t *testing.T) {
	pr := NewWithClock(fixedClock)
	if _, err := pr.Project(weeklyPlan(10, domain.CategoryWaterSanitation), -1); !domain.IsValidation(err) {
		t.Fatalf("Project(-1) error = %v, want ValidationError", err)
	}
}
