// Package signal defines the contracts for external collaborators that feed
// the matching pipeline: free-text feature extraction, engagement prediction,
// and donation amount optimization. The pipeline works with any of them
// absent; every interface has a zero-value default that degrades gracefully.
package signal

import "givewise/internal/domain"

// Provider extracts a feature bundle from free text. A nil result is treated
// exactly like "no text supplied".
type Provider interface {
	Extract(freeText string) *domain.SignalBundle
}

// EngagementPredictor estimates how likely a donor is to keep donating,
// in [0, 1]. Called once per profile; the result is cached on the profile.
type EngagementPredictor interface {
	Predict(p *domain.Profile) float64
}

// AmountOptimizer proposes a replacement donation amount for a profile and
// base suggestion. The planner clamps whatever it returns, so implementations
// are free to be wrong.
type AmountOptimizer interface {
	Optimize(p *domain.Profile, baseAmount float64) float64
}

// NoProvider is the degraded default: no text features.
type NoProvider struct{}

func (NoProvider) Extract(string) *domain.SignalBundle { return nil }

// NoPredictor is the degraded default: zero engagement.
type NoPredictor struct{}

func (NoPredictor) Predict(*domain.Profile) float64 { return 0 }

// NoOptimizer is the degraded default: keep the base amount.
type NoOptimizer struct{}

func (NoOptimizer) Optimize(_ *domain.Profile, base float64) float64 { return base }
