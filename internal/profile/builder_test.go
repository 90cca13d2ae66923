package profile

import (
	"testing"

	"givewise/internal/domain"
)

func validAnswers() RawAnswers {
	return RawAnswers{
		Name:         "Sam",
		Interests:    []string{"Water", " health "},
		Causes:       []string{"Water & Sanitation"},
		IncomeIndex:  2,
		ComfortLevel: "low",
		Frequency:    "weekly",
		Geography:    "global",
	}
}

func TestBuild(t *testing.T) {
	p, err := Build(validAnswers(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.MonthlyIncome != 5000 {
		t.Errorf("MonthlyIncome = %v, want 5000", p.MonthlyIncome)
	}
	if p.ComfortLevel != domain.ComfortLow || p.Frequency != domain.FrequencyWeekly || p.Geography != domain.GeoGlobal {
		t.Errorf("enums = %v/%v/%v, want low/weekly/global", p.ComfortLevel, p.Frequency, p.Geography)
	}
	if len(p.Interests) != 2 || p.Interests[0] != "water" || p.Interests[1] != "health" {
		t.Errorf("Interests = %v, want normalized [water health]", p.Interests)
	}
	if p.Engagement() != 0 {
		t.Errorf("Engagement = %v before prediction, want 0", p.Engagement())
	}
}

func TestBuildRejectsInvalidAnswers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RawAnswers)
	}{
		{"missing name", func(r *RawAnswers) { r.Name = "  " }},
		{"zero interests", func(r *RawAnswers) { r.Interests = nil }},
		{"whitespace interests", func(r *RawAnswers) { r.Interests = []string{"  ", ""} }},
		{"zero causes", func(r *RawAnswers) { r.Causes = nil }},
		{"income index negative", func(r *RawAnswers) { r.IncomeIndex = -1 }},
		{"income index too large", func(r *RawAnswers) { r.IncomeIndex = len(IncomeBrackets) }},
		{"unknown comfort level", func(r *RawAnswers) { r.ComfortLevel = "extreme" }},
		{"unknown frequency", func(r *RawAnswers) { r.Frequency = "daily" }},
		{"unknown geography", func(r *RawAnswers) { r.Geography = "lunar" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := validAnswers()
			tc.mutate(&raw)
			_, err := Build(raw, nil)
			if err == nil {
				t.Fatal("Build() succeeded, want validation error")
			}
			if !domain.IsValidation(err) {
				t.Fatalf("Build() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestBuildMergesSignalBundle(t *testing.T) {
	bundle := &domain.SignalBundle{
		Keywords:          []string{"water", "future"},
		Sentiment:         0.4,
		PersonalityTraits: map[string]float64{"empathetic": 0.5},
		EmotionalDrivers:  []string{"hope"},
	}

	p, err := Build(validAnswers(), bundle)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(p.Keywords) != 2 || p.Sentiment != 0.4 {
		t.Errorf("signal fields not populated: keywords=%v sentiment=%v", p.Keywords, p.Sentiment)
	}
	if p.PersonalityTraits["empathetic"] != 0.5 || len(p.EmotionalDrivers) != 1 {
		t.Errorf("traits/drivers not populated: %v %v", p.PersonalityTraits, p.EmotionalDrivers)
	}
}

func TestBuildWithoutBundleDefaultsToNoSignal(t *testing.T) {
	p, err := Build(validAnswers(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(p.Keywords) != 0 || p.Sentiment != 0 || len(p.PersonalityTraits) != 0 || len(p.EmotionalDrivers) != 0 {
		t.Errorf("expected zero signal fields, got %v %v %v %v",
			p.Keywords, p.Sentiment, p.PersonalityTraits, p.EmotionalDrivers)
	}
}

func TestIncomeBracketMidpoints(t *testing.T) {
	// The open-ended top bracket uses its representative ceiling, so the
	// midpoint table stays consistent across stages.
	want := []float64{1000, 3000, 5000, 8000, 15000}
	for i, b := range IncomeBrackets {
		if got := b.Midpoint(); got != want[i] {
			t.Errorf("bracket %d midpoint = %v, want %v", i, got, want[i])
		}
	}
}

func TestEngagementSetOnce(t *testing.T) {
	p, err := Build(validAnswers(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	p.SetEngagement(0.6)
	p.SetEngagement(0.9)
	if p.Engagement() != 0.6 {
		t.Errorf("Engagement = %v after second set, want 0.6", p.Engagement())
	}
}
