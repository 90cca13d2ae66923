package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"givewise/internal/domain"
	"givewise/internal/profile"
)

type matchRequest struct {
	Answers  profile.RawAnswers `json:"answers"`
	FreeText string             `json:"free_text"`
}

type matchView struct {
	CharityID   string   `json:"charity_id"`
	CharityName string   `json:"charity_name"`
	Category    string   `json:"category"`
	Score       float64  `json:"score"`
	Reasons     []string `json:"reasons"`
}

// MatchesCreate ranks the catalog against the submitted onboarding answers.
func (a *App) MatchesCreate(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	p, matches, err := a.Runner.Match(r.Context(), req.Answers, req.FreeText)
	if err != nil {
		a.pipelineError(w, err)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"donor":   p.Name,
		"matches": matchViews(matches),
	})
}

func matchViews(matches []domain.MatchResult) []matchView {
	views := make([]matchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, matchView{
			CharityID:   m.Charity.ID,
			CharityName: m.Charity.Name,
			Category:    string(m.Charity.Category),
			Score:       m.Score,
			Reasons:     m.Reasons,
		})
	}
	return views
}

// pipelineError maps pipeline failures onto HTTP responses: validation
// problems are the caller's fault, no-match is a distinct expected outcome,
// anything else is internal.
func (a *App) pipelineError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		a.error(w, http.StatusBadRequest, "validation", ve.Error())
	case errors.Is(err, domain.ErrNoMatch):
		a.error(w, http.StatusNotFound, "no_match", "no charity matched the profile")
	default:
		a.Log.Error().Err(err).Msg("pipeline failed")
		a.error(w, http.StatusInternalServerError, "internal", "pipeline failed")
	}
}
