package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"givewise/internal/domain"
	"givewise/internal/profile"
)

type planRequest struct {
	Answers       profile.RawAnswers `json:"answers"`
	FreeText      string             `json:"free_text"`
	HorizonMonths int                `json:"horizon_months"`
}

type planView struct {
	CharityID   string  `json:"charity_id"`
	CharityName string  `json:"charity_name"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	AnnualTotal float64 `json:"annual_total"`
	Impact      string  `json:"impact_description"`
}

type timelineEntryView struct {
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Cumulative float64 `json:"cumulative"`
	Milestone  string  `json:"milestone,omitempty"`
}

type reportView struct {
	CharityName   string              `json:"charity_name"`
	TotalDonated  float64             `json:"total_donated"`
	Metrics       map[string]float64  `json:"impact_metrics"`
	Beneficiaries int                 `json:"beneficiaries_helped"`
	Timeline      []timelineEntryView `json:"timeline"`
}

// PlansCreate runs the full pipeline and returns the donation plan together
// with its projected impact report.
func (a *App) PlansCreate(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	horizon := req.HorizonMonths
	if horizon == 0 {
		horizon = a.Horizon
	}
	if horizon < 0 {
		a.error(w, http.StatusBadRequest, "validation", "horizon_months must not be negative")
		return
	}

	result, err := a.Runner.Run(r.Context(), req.Answers, req.FreeText, horizon)
	if err != nil {
		a.pipelineError(w, err)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"donor":   result.Profile.Name,
		"matches": matchViews(result.Matches),
		"plan":    newPlanView(result.Plan),
		"report":  newReportView(result.Report),
	})
}

func newPlanView(p *domain.DonationPlan) planView {
	return planView{
		CharityID:   p.Charity.ID,
		CharityName: p.Charity.Name,
		Amount:      p.Amount,
		Frequency:   string(p.Frequency),
		AnnualTotal: p.AnnualTotal,
		Impact:      p.Impact,
	}
}

func newReportView(r *domain.ImpactReport) reportView {
	timeline := make([]timelineEntryView, 0, len(r.Timeline))
	for _, e := range r.Timeline {
		timeline = append(timeline, timelineEntryView{
			Date:       e.Date.Format(time.DateOnly),
			Amount:     e.Amount,
			Cumulative: e.Cumulative,
			Milestone:  e.Milestone,
		})
	}
	return reportView{
		CharityName:   r.CharityName,
		TotalDonated:  r.TotalDonated,
		Metrics:       r.Metrics,
		Beneficiaries: r.Beneficiaries,
		Timeline:      timeline,
	}
}
