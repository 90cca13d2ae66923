// Package pipeline runs one end-to-end matching session: build the profile,
// rank the catalog, derive the donation plan, and project its impact.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"givewise/internal/catalog"
	"givewise/internal/domain"
	"givewise/internal/impact"
	"givewise/internal/match"
	"givewise/internal/plan"
	"givewise/internal/profile"
	"givewise/internal/signal"
)

// DefaultHorizonMonths is the evaluation horizon used when a caller does not
// ask for one.
const DefaultHorizonMonths = 6

// Runner wires the pipeline stages with a catalog store and the configured
// signal providers. Safe for concurrent use: every run reads one catalog
// snapshot and touches no shared mutable state.
type Runner struct {
	store     *catalog.Store
	provider  signal.Provider
	predictor signal.EngagementPredictor
	optimizer signal.AmountOptimizer
	projector *impact.Projector
	log       zerolog.Logger
}

// Options overrides the default collaborators. Nil fields keep the degraded
// defaults, so an absent provider never fails a run.
type Options struct {
	Provider  signal.Provider
	Predictor signal.EngagementPredictor
	Optimizer signal.AmountOptimizer
	Projector *impact.Projector
}

// New creates a Runner over the catalog store.
func New(store *catalog.Store, opts Options, log zerolog.Logger) *Runner {
	r := &Runner{
		store:     store,
		provider:  signal.NoProvider{},
		predictor: signal.NoPredictor{},
		optimizer: signal.NoOptimizer{},
		projector: impact.New(),
		log:       log,
	}
	if opts.Provider != nil {
		r.provider = opts.Provider
	}
	if opts.Predictor != nil {
		r.predictor = opts.Predictor
	}
	if opts.Optimizer != nil {
		r.optimizer = opts.Optimizer
	}
	if opts.Projector != nil {
		r.projector = opts.Projector
	}
	return r
}

// Result is one completed pipeline run.
type Result struct {
	Profile *domain.Profile
	Matches []domain.MatchResult
	Plan    *domain.DonationPlan
	Report  *domain.ImpactReport
}

// Match builds the profile and ranks the catalog against it. A free text
// passage, if present, feeds the signal provider before profile construction.
// Returns domain.ErrNoMatch when nothing clears the threshold.
func (r *Runner) Match(ctx context.Context, raw profile.RawAnswers, freeText string) (*domain.Profile, []domain.MatchResult, error) {
	var bundle *domain.SignalBundle
	if freeText != "" {
		bundle = r.provider.Extract(freeText)
	}

	p, err := profile.Build(raw, bundle)
	if err != nil {
		return nil, nil, err
	}
	p.SetEngagement(r.predictor.Predict(p))
	r.log.Debug().Str("donor", p.Name).Float64("engagement", p.Engagement()).Msg("profile built")

	snap := r.store.Snapshot()
	matches := match.Rank(p, snap)
	if len(matches) == 0 {
		r.log.Debug().Str("donor", p.Name).Int("catalog_size", snap.Len()).Msg("no charity cleared the threshold")
		return nil, nil, domain.ErrNoMatch
	}
	return p, matches, nil
}

// Run executes the full pipeline for one set of onboarding answers: match,
// plan the donation for the best match, and project its impact.
func (r *Runner) Run(ctx context.Context, raw profile.RawAnswers, freeText string, horizonMonths int) (*Result, error) {
	if horizonMonths <= 0 {
		horizonMonths = DefaultHorizonMonths
	}

	p, matches, err := r.Match(ctx, raw, freeText)
	if err != nil {
		return nil, err
	}
	best := matches[0]
	r.log.Debug().Str("charity", best.Charity.Name).Float64("score", best.Score).Msg("best match selected")

	donationPlan, err := plan.Suggest(p, best.Charity, r.optimizer)
	if err != nil {
		return nil, fmt.Errorf("plan donation: %w", err)
	}

	report, err := r.projector.Project(donationPlan, horizonMonths)
	if err != nil {
		return nil, fmt.Errorf("project impact: %w", err)
	}

	return &Result{Profile: p, Matches: matches, Plan: donationPlan, Report: report}, nil
}

// IsNoMatch reports whether err is the expected no-match outcome.
func IsNoMatch(err error) bool {
	return errors.Is(err, domain.ErrNoMatch)
}
