// Package render formats a donation plan and impact report as plain text for
// the CLI. Charts and dashboards are a front-end concern, not handled here.
package render

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"givewise/internal/domain"
)

var titler = cases.Title(language.English)

// Plan renders the donation plan summary block.
func Plan(p *domain.DonationPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Donation Plan\n")
	fmt.Fprintf(&b, "  Charity:      %s\n", p.Charity.Name)
	fmt.Fprintf(&b, "  Amount:       $%.2f %s\n", p.Amount, p.Frequency)
	fmt.Fprintf(&b, "  Annual Total: $%.2f\n", p.AnnualTotal)
	fmt.Fprintf(&b, "  Impact:       %s\n", p.Impact)
	return b.String()
}

// Report renders the impact report: totals, metric lines with title-cased
// names, and the timeline with milestone markers.
func Report(r *domain.ImpactReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Impact Summary for %s\n", r.CharityName)
	fmt.Fprintf(&b, "  Total Donated:        $%.2f\n", r.TotalDonated)
	fmt.Fprintf(&b, "  Beneficiaries Helped: %d\n", r.Beneficiaries)
	fmt.Fprintf(&b, "  Donations Made:       %d\n", len(r.Timeline))

	if len(r.Metrics) > 0 {
		b.WriteString("\nSpecific Impact:\n")
		names := make([]string, 0, len(r.Metrics))
		for name := range r.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  - %s: %.1f\n", metricTitle(name), r.Metrics[name])
		}
	}

	if len(r.Timeline) > 0 {
		b.WriteString("\nTimeline:\n")
		for _, entry := range r.Timeline {
			fmt.Fprintf(&b, "  %s  $%.2f  (total $%.2f)", entry.Date.Format("2006-01-02"), entry.Amount, entry.Cumulative)
			if entry.Milestone != "" {
				fmt.Fprintf(&b, "  %s", entry.Milestone)
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// metricTitle turns a metric identifier like "people_served" into a display
// name like "People Served".
func metricTitle(name string) string {
	return titler.String(strings.ReplaceAll(name, "_", " "))
}
