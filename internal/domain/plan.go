package domain

import "time"

// MatchResult pairs a charity with its composite score and the human-readable
// reasons behind it. Produced fresh per matching call, never persisted.
type MatchResult struct {
	Charity *Charity
	Score   float64
	Reasons []string
}

// DonationPlan is the finalized recurring donation for a matched charity.
type DonationPlan struct {
	Charity     *Charity
	Amount      float64
	Frequency   Frequency
	AnnualTotal float64
	Impact      string
}

// TimelineEntry is one donation period inside an impact report timeline.
type TimelineEntry struct {
	Date       time.Time
	Amount     float64
	Cumulative float64
	Milestone  string
}

// ImpactReport projects a donation plan over an evaluation horizon.
type ImpactReport struct {
	CharityName   string
	TotalDonated  float64
	Metrics       map[string]float64
	Beneficiaries int
	Timeline      []TimelineEntry
}
