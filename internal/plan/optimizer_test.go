package plan

import (
	"math"
	"strings"
	"testing"

	"givewise/internal/domain"
	"givewise/internal/signal"
)

type fixedOptimizer struct{ amount float64 }

func (f fixedOptimizer) Optimize(*domain.Profile, float64) float64 { return f.amount }

func testProfile() *domain.Profile {
	return &domain.Profile{
		Name:          "Sam",
		Interests:     []string{"water"},
		Causes:        []string{"Water & Sanitation"},
		MonthlyIncome: 5000,
		ComfortLevel:  domain.ComfortLow,
		Frequency:     domain.FrequencyWeekly,
		Geography:     domain.GeoGlobal,
	}
}

func testCharity() *domain.Charity {
	return &domain.Charity{
		ID:          "water_org_001",
		Name:        "Clean Water Global",
		Category:    domain.CategoryWaterSanitation,
		Location:    domain.GeoGlobal,
		Efficiency:  92.5,
		MinDonation: 5,
		Metrics: []domain.ImpactMetric{
			{Amount: 5, Phrase: "provides clean water for 2 people for 1 week"},
			{Amount: 25, Phrase: "maintains a water pump for 1 month"},
			{Amount: 100, Phrase: "contributes to building a new well"},
		},
	}
}

func TestSuggestBaseAmount(t *testing.T) {
	// $5000 income, low comfort, weekly: 5000*0.002*4 = $40.
	p, err := Suggest(testProfile(), testCharity(), signal.NoOptimizer{})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if p.Amount != 40 {
		t.Errorf("Amount = %v, want 40", p.Amount)
	}
	if p.AnnualTotal != 40*52 {
		t.Errorf("AnnualTotal = %v, want %v", p.AnnualTotal, 40*52)
	}
	if p.Frequency != domain.FrequencyWeekly {
		t.Errorf("Frequency = %v, want weekly", p.Frequency)
	}
}

func TestFriendlyRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.2, 5},
		{4.99, 5},
		{5.4, 5},
		{7.6, 8},
		{9.4, 9},
		{12, 10},
		{13, 15},
		{41.3, 40},
	}
	for _, tc := range tests {
		if got := friendlyRound(tc.in); got != tc.want {
			t.Errorf("friendlyRound(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSuggestClampsOptimizerProposal(t *testing.T) {
	// Base is $40, so the band is [20, 80] regardless of the proposal.
	tests := []struct {
		name     string
		proposal float64
		want     float64
	}{
		{"way too high", 5000, 80},
		{"way too low", 0.5, 20},
		{"inside band", 55, 55},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Suggest(testProfile(), testCharity(), fixedOptimizer{tc.proposal})
			if err != nil {
				t.Fatalf("Suggest() error = %v", err)
			}
			if p.Amount != tc.want {
				t.Errorf("Amount = %v, want %v", p.Amount, tc.want)
			}
		})
	}
}

func TestSuggestEnforcesCharityMinimum(t *testing.T) {
	p := testProfile()
	p.MonthlyIncome = 1000 // base: 1000*0.002*4 = 8
	c := testCharity()
	c.MinDonation = 12

	got, err := Suggest(p, c, fixedOptimizer{1}) // clamps to max(3, 4) = 4
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if got.Amount != 12 {
		t.Errorf("Amount = %v, want charity minimum 12", got.Amount)
	}
}

func TestSuggestAmountAlwaysInBandOrAtMinimum(t *testing.T) {
	proposals := []float64{-10, 0, 3, 17, 39, 80.01, 1e6}
	for _, proposal := range proposals {
		got, err := Suggest(testProfile(), testCharity(), fixedOptimizer{proposal})
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		base := 40.0
		lo, hi := math.Max(3, base*0.5), base*2
		inBand := got.Amount >= lo && got.Amount <= hi
		if !inBand && got.Amount != testCharity().MinDonation {
			t.Errorf("proposal %v: amount %v outside [%v, %v] and not the charity minimum", proposal, got.Amount, lo, hi)
		}
	}
}

func TestImpactDescriptionClosestMetric(t *testing.T) {
	// $40 is closest to the $25 reference.
	p, err := Suggest(testProfile(), testCharity(), signal.NoOptimizer{})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	want := "Every week, your $40.00 maintains a water pump for 1 month"
	if p.Impact != want {
		t.Errorf("Impact = %q, want %q", p.Impact, want)
	}
}

func TestClosestMetricTieBreaksSmaller(t *testing.T) {
	metrics := []domain.ImpactMetric{
		{Amount: 10, Phrase: "small"},
		{Amount: 30, Phrase: "large"},
	}
	if got := closestMetric(metrics, 20); got.Phrase != "small" {
		t.Errorf("closestMetric(20) = %q, want the smaller reference", got.Phrase)
	}
}

func TestImpactDescriptionPersonalization(t *testing.T) {
	tests := []struct {
		name    string
		traits  map[string]float64
		drivers []string
		want    []string
		absent  []string
	}{
		{
			name:   "empathetic clause",
			traits: map[string]float64{"empathetic": 0.5},
			want:   []string{"directly touching lives in your community"},
		},
		{
			name:   "analytical clause includes efficiency",
			traits: map[string]float64{"analytical": 0.5},
			want:   []string{"with 92.5% efficiency rating"},
		},
		{
			name:   "activist clause",
			traits: map[string]float64{"activist": 0.4},
			want:   []string{"driving systemic change"},
		},
		{
			name:   "highest trait wins when several qualify",
			traits: map[string]float64{"empathetic": 0.4, "activist": 0.8},
			want:   []string{"driving systemic change"},
			absent: []string{"touching lives"},
		},
		{
			name:   "weak traits add nothing",
			traits: map[string]float64{"empathetic": 0.2},
			absent: []string{"touching lives"},
		},
		{
			name:    "hope beats responsibility",
			drivers: []string{"responsibility", "hope"},
			want:    []string{"building a better future"},
			absent:  []string{"commitment"},
		},
		{
			name:    "responsibility clause",
			drivers: []string{"responsibility"},
			want:    []string{"fulfilling your commitment to change"},
		},
		{
			name:    "trait and driver clauses combine",
			traits:  map[string]float64{"activist": 0.6},
			drivers: []string{"hope"},
			want:    []string{"driving systemic change", "building a better future"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testProfile()
			p.PersonalityTraits = tc.traits
			p.EmotionalDrivers = tc.drivers

			got, err := Suggest(p, testCharity(), signal.NoOptimizer{})
			if err != nil {
				t.Fatalf("Suggest() error = %v", err)
			}
			for _, want := range tc.want {
				if !strings.Contains(got.Impact, want) {
					t.Errorf("Impact = %q, missing %q", got.Impact, want)
				}
			}
			for _, absent := range tc.absent {
				if strings.Contains(got.Impact, absent) {
					t.Errorf("Impact = %q, should not contain %q", got.Impact, absent)
				}
			}
		})
	}
}
