// Package catalog holds the immutable charity catalog. Records come from a
// Loader, are validated once, and are frozen into a Snapshot; the matching
// engine never sees a partially initialized charity.
package catalog

import (
	"context"
	"fmt"
	"sync/atomic"

	"givewise/internal/domain"
)

// Record is the raw charity shape a Loader supplies. Retention and impact
// statistics are part of the load-time data, not recomputed per query.
type Record struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Category      string                `json:"category"`
	Description   string                `json:"description"`
	Location      string                `json:"location"`
	Efficiency    float64               `json:"efficiency_score"`
	Tags          []string              `json:"tags"`
	MinDonation   float64               `json:"min_donation"`
	Metrics       []domain.ImpactMetric `json:"impact_metrics"`
	RetentionRate float64               `json:"donor_retention_rate"`
	ImpactScore   float64               `json:"predicted_impact_score"`
}

// Loader supplies the initial charity records.
type Loader interface {
	Load(ctx context.Context) ([]Record, error)
}

// Snapshot is a validated, read-only charity set. Insertion order is
// preserved and is the tie-break order for equal match scores.
type Snapshot struct {
	charities []*domain.Charity
}

// Build validates every record and freezes them into a Snapshot. Any invalid
// record fails the whole build; an empty record set is ErrEmptyCatalog.
func Build(records []Record) (*Snapshot, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	charities := make([]*domain.Charity, 0, len(records))
	for i, rec := range records {
		c, err := validate(rec)
		if err != nil {
			return nil, fmt.Errorf("charity %d (%s): %w", i, rec.ID, err)
		}
		charities = append(charities, c)
	}
	return &Snapshot{charities: charities}, nil
}

// Charities returns the catalog entries in insertion order. Callers must not
// mutate the returned slice or its elements.
func (s *Snapshot) Charities() []*domain.Charity {
	return s.charities
}

// Len returns the number of charities in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.charities)
}

func validate(rec Record) (*domain.Charity, error) {
	if rec.ID == "" {
		return nil, &domain.ValidationError{Field: "id", Reason: "required"}
	}
	if rec.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if rec.Efficiency < 0 || rec.Efficiency > 100 {
		return nil, &domain.ValidationError{Field: "efficiency_score", Reason: "must be between 0 and 100"}
	}
	if rec.MinDonation <= 0 {
		return nil, &domain.ValidationError{Field: "min_donation", Reason: "must be positive"}
	}
	if len(rec.Metrics) == 0 {
		return nil, &domain.ValidationError{Field: "impact_metrics", Reason: "at least one entry is required"}
	}
	for _, m := range rec.Metrics {
		if m.Amount <= 0 {
			return nil, &domain.ValidationError{Field: "impact_metrics", Reason: "reference amounts must be positive"}
		}
	}
	if rec.RetentionRate < 0 || rec.RetentionRate > 1 {
		return nil, &domain.ValidationError{Field: "donor_retention_rate", Reason: "must be between 0 and 1"}
	}
	if rec.ImpactScore < 0 || rec.ImpactScore > 1 {
		return nil, &domain.ValidationError{Field: "predicted_impact_score", Reason: "must be between 0 and 1"}
	}

	location, err := domain.ParseGeoScope(rec.Location)
	if err != nil {
		return nil, &domain.ValidationError{Field: "location", Reason: "unknown value " + rec.Location}
	}

	return &domain.Charity{
		ID:            rec.ID,
		Name:          rec.Name,
		Category:      domain.Category(rec.Category),
		Description:   rec.Description,
		Location:      location,
		Efficiency:    rec.Efficiency,
		Tags:          rec.Tags,
		MinDonation:   rec.MinDonation,
		Metrics:       rec.Metrics,
		RetentionRate: rec.RetentionRate,
		ImpactScore:   rec.ImpactScore,
	}, nil
}

// Store publishes the current catalog snapshot. Refreshes swap the whole
// snapshot atomically; readers mid-match keep the snapshot they started with.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore loads, validates, and publishes the initial snapshot.
func NewStore(ctx context.Context, loader Loader) (*Store, error) {
	s := &Store{}
	if err := s.Refresh(ctx, loader); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh builds a fresh snapshot from the loader and swaps it in. On error
// the previous snapshot stays published.
func (s *Store) Refresh(ctx context.Context, loader Loader) error {
	records, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	snap, err := Build(records)
	if err != nil {
		return err
	}
	s.current.Store(snap)
	return nil
}

// Snapshot returns the currently published catalog.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}
