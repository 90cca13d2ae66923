// Package profile turns raw onboarding answers into a validated donor
// profile. All enumerated fields are checked here so later stages never see
// an out-of-range value.
package profile

import (
	"fmt"
	"strings"

	"givewise/internal/domain"
)

// RawAnswers is the structured onboarding payload. One field per question;
// enumerated fields carry the raw selected value and are validated by Build.
type RawAnswers struct {
	Name         string   `json:"name"`
	Interests    []string `json:"interests"`
	Causes       []string `json:"causes"`
	IncomeIndex  int      `json:"income_index"`
	ComfortLevel string   `json:"comfort_level"`
	Frequency    string   `json:"frequency"`
	Geography    string   `json:"geography"`
}

// IncomeBracket is a monthly income range in dollars. The top bracket is
// open-ended in the onboarding copy but uses High as its representative
// ceiling so every stage computes the same midpoint.
type IncomeBracket struct {
	Low  float64
	High float64
}

// IncomeBrackets is the canonical bracket table. The onboarding enumeration
// and the midpoint computation must both read this slice.
var IncomeBrackets = []IncomeBracket{
	{0, 2000},
	{2000, 4000},
	{4000, 6000},
	{6000, 10000},
	{10000, 20000},
}

// Midpoint returns the representative monthly income for the bracket.
func (b IncomeBracket) Midpoint() float64 {
	return (b.Low + b.High) / 2
}

// Build validates raw answers and assembles a Profile. The optional bundle
// populates the extracted-signal fields; a nil bundle means no free text was
// analyzed and leaves them at their zero values.
func Build(raw RawAnswers, bundle *domain.SignalBundle) (*domain.Profile, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	interests := normalizeTerms(raw.Interests)
	if len(interests) == 0 {
		return nil, &domain.ValidationError{Field: "interests", Reason: "at least one interest is required"}
	}
	if len(raw.Causes) == 0 {
		return nil, &domain.ValidationError{Field: "causes", Reason: "at least one cause is required"}
	}
	if raw.IncomeIndex < 0 || raw.IncomeIndex >= len(IncomeBrackets) {
		return nil, &domain.ValidationError{
			Field:  "income_index",
			Reason: fmt.Sprintf("must be between 0 and %d", len(IncomeBrackets)-1),
		}
	}

	comfort, err := domain.ParseComfortLevel(raw.ComfortLevel)
	if err != nil {
		return nil, err
	}
	frequency, err := domain.ParseFrequency(raw.Frequency)
	if err != nil {
		return nil, err
	}
	geo, err := domain.ParseGeoScope(raw.Geography)
	if err != nil {
		return nil, err
	}

	p := &domain.Profile{
		Name:          strings.TrimSpace(raw.Name),
		Interests:     interests,
		Causes:        raw.Causes,
		MonthlyIncome: IncomeBrackets[raw.IncomeIndex].Midpoint(),
		ComfortLevel:  comfort,
		Frequency:     frequency,
		Geography:     geo,
	}

	if bundle != nil {
		p.Keywords = bundle.Keywords
		p.Sentiment = bundle.Sentiment
		p.PersonalityTraits = bundle.PersonalityTraits
		p.EmotionalDrivers = bundle.EmotionalDrivers
	}

	return p, nil
}

// normalizeTerms lowercases and trims selections so they compare cleanly
// against charity tags.
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
