package handlers

import (
	"net/http"

	"givewise/internal/domain"
)

type charityView struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	Location    string                `json:"location"`
	Efficiency  float64               `json:"efficiency_score"`
	Tags        []string              `json:"tags"`
	MinDonation float64               `json:"min_donation"`
	Metrics     []domain.ImpactMetric `json:"impact_metrics"`
}

// CharitiesList returns the current catalog snapshot.
func (a *App) CharitiesList(w http.ResponseWriter, r *http.Request) {
	snap := a.Store.Snapshot()
	items := make([]charityView, 0, snap.Len())
	for _, c := range snap.Charities() {
		items = append(items, charityView{
			ID:          c.ID,
			Name:        c.Name,
			Category:    string(c.Category),
			Description: c.Description,
			Location:    string(c.Location),
			Efficiency:  c.Efficiency,
			Tags:        c.Tags,
			MinDonation: c.MinDonation,
			Metrics:     c.Metrics,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
