package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGLoader reads charity records from PostgreSQL. It satisfies the same
// Loader contract as SeedLoader, so the rest of the system does not care
// where the catalog came from.
type PGLoader struct {
	pool *pgxpool.Pool
}

// NewPGLoader creates a Postgres-backed catalog loader.
func NewPGLoader(pool *pgxpool.Pool) *PGLoader {
	return &PGLoader{pool: pool}
}

// Load fetches all charities in insertion order. Impact metrics and tags are
// stored as JSON columns; validation happens in Build, not here.
func (l *PGLoader) Load(ctx context.Context) ([]Record, error) {
	rows, err := l.pool.Query(ctx, `
SELECT id, name, category, description, location, efficiency_score,
       tags, min_donation, impact_metrics, donor_retention_rate,
       predicted_impact_score
FROM charities
ORDER BY position ASC;
`)
	if err != nil {
		return nil, fmt.Errorf("query charities: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var tags, metrics []byte
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Category, &rec.Description, &rec.Location,
			&rec.Efficiency, &tags, &rec.MinDonation, &metrics,
			&rec.RetentionRate, &rec.ImpactScore,
		); err != nil {
			return nil, fmt.Errorf("scan charity: %w", err)
		}
		if err := json.Unmarshal(tags, &rec.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal(metrics, &rec.Metrics); err != nil {
			return nil, fmt.Errorf("decode impact metrics for %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
