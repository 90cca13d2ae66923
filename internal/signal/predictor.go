package signal

import "givewise/internal/domain"

// HeuristicPredictor scores engagement as an average of normalized profile
// features. Deterministic, so repeated pipeline runs over the same profile
// agree byte for byte; a learned model can replace it behind the same
// interface.
type HeuristicPredictor struct{}

// Predict returns an engagement estimate in [0, 1].
func (HeuristicPredictor) Predict(p *domain.Profile) float64 {
	features := []float64{
		clamp01(p.MonthlyIncome / 10000),
		clamp01(float64(len(p.Interests)) / 10),
		clamp01(float64(len(p.Causes)) / 8),
		comfortFeature(p.ComfortLevel),
		frequencyFeature(p.Frequency),
		geoFeature(p.Geography),
		clamp01((p.Sentiment + 1) / 2),
		traitMass(p.PersonalityTraits),
	}

	var sum float64
	for _, f := range features {
		sum += f
	}
	return clamp01(sum / float64(len(features)))
}

func comfortFeature(c domain.ComfortLevel) float64 {
	switch c {
	case domain.ComfortHigh:
		return 1
	case domain.ComfortMedium:
		return 0.5
	default:
		return 0
	}
}

func frequencyFeature(f domain.Frequency) float64 {
	switch f {
	case domain.FrequencyWeekly:
		return 1
	case domain.FrequencyMonthly:
		return 0.5
	default:
		return 0
	}
}

func geoFeature(g domain.GeoScope) float64 {
	switch g {
	case domain.GeoGlobal:
		return 1
	case domain.GeoNational:
		return 0.5
	default:
		return 0
	}
}

func traitMass(traits map[string]float64) float64 {
	if len(traits) == 0 {
		return 0
	}
	var sum float64
	for _, w := range traits {
		sum += w
	}
	return clamp01(sum / float64(len(traits)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
