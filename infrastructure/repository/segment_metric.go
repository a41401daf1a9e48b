package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/agencyops/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/lib/pq"
)

const segmentMetricsTable = "segment_metrics sm"

type SegmentMetricRepository interface {
	SaveOrUpdate(metric *domain.SegmentMetric) error
	List(tenantID string) ([]*domain.SegmentMetric, error)
}

type segmentMetricRepository struct {
	conn *postgres.Connection
}

func NewSegmentMetricRepository(conn *postgres.Connection) SegmentMetricRepository {
	return &segmentMetricRepository{
		conn: conn,
	}
}

func (r *segmentMetricRepository) SaveOrUpdate(metric *domain.SegmentMetric) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("segment_metrics").
		Columns("tenant_id", "external_id", "name", "profile_count", "synced_at").
		Values(
			metric.TenantID,
			metric.ExternalID,
			metric.Name,
			metric.ProfileCount,
			metric.SyncedAt,
		).
		Suffix(`
			ON CONFLICT (tenant_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				profile_count = EXCLUDED.profile_count,
				synced_at = EXCLUDED.synced_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *segmentMetricRepository) List(tenantID string) ([]*domain.SegmentMetric, error) {
	query, args, err := squirrel.
		Select("sm.id, sm.tenant_id, sm.external_id, sm.name, sm.profile_count, sm.synced_at, sm.created_at, sm.updated_at").
		From(segmentMetricsTable).
		Where(squirrel.Eq{"sm.tenant_id": tenantID}).
		OrderBy("sm.profile_count DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.SegmentMetric, 0)
	for rows.Next() {
		metric := &domain.SegmentMetric{}
		err := rows.Scan(
			&metric.ID,
			&metric.TenantID,
			&metric.ExternalID,
			&metric.Name,
			&metric.ProfileCount,
			&metric.SyncedAt,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning segment metrics: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return metrics, nil
}
