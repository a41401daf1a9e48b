package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/agencyops/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/lib/pq"
)

const campaignMetricsTable = "campaign_metrics cm"

type CampaignMetricRepository interface {
	SaveOrUpdate(metric *domain.CampaignMetric) error
	GetByDateRange(tenantID string, startDate, endDate time.Time) ([]*domain.CampaignMetric, error)
	DeleteOlderThan(tenantID string, days int) (int64, error)
}

type campaignMetricRepository struct {
	conn *postgres.Connection
}

func NewCampaignMetricRepository(conn *postgres.Connection) CampaignMetricRepository {
	return &campaignMetricRepository{
		conn: conn,
	}
}

// SaveOrUpdate overwrites the row for (tenant_id, external_id). Counts and
// rates always replace the stored values, they are never added to them, so
// replaying a sync for the same period leaves the row unchanged.
func (r *campaignMetricRepository) SaveOrUpdate(metric *domain.CampaignMetric) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_metrics").
		Columns(
			"tenant_id", "external_id", "name", "subject_line", "sent_at",
			"recipients", "delivered", "opens_unique", "clicks_unique",
			"bounced", "unsubscribed", "conversion_value",
			"open_rate", "click_rate", "bounce_rate",
		).
		Values(
			metric.TenantID,
			metric.ExternalID,
			metric.Name,
			metric.SubjectLine,
			metric.SentAt,
			metric.Recipients,
			metric.Delivered,
			metric.OpensUnique,
			metric.ClicksUnique,
			metric.Bounced,
			metric.Unsubscribed,
			metric.ConversionValue,
			metric.OpenRate,
			metric.ClickRate,
			metric.BounceRate,
		).
		Suffix(`
			ON CONFLICT (tenant_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				subject_line = EXCLUDED.subject_line,
				sent_at = EXCLUDED.sent_at,
				recipients = EXCLUDED.recipients,
				delivered = EXCLUDED.delivered,
				opens_unique = EXCLUDED.opens_unique,
				clicks_unique = EXCLUDED.clicks_unique,
				bounced = EXCLUDED.bounced,
				unsubscribed = EXCLUDED.unsubscribed,
				conversion_value = EXCLUDED.conversion_value,
				open_rate = EXCLUDED.open_rate,
				click_rate = EXCLUDED.click_rate,
				bounce_rate = EXCLUDED.bounce_rate,
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

// GetByDateRange returns the tenant's campaigns sent inside [startDate,
// endDate]. Drafts have no sent_at and are excluded by the range predicate.
func (r *campaignMetricRepository) GetByDateRange(tenantID string, startDate, endDate time.Time) ([]*domain.CampaignMetric, error) {
	query, args, err := squirrel.
		Select(
			"cm.id, cm.tenant_id, cm.external_id, cm.name, cm.subject_line, cm.sent_at",
			"cm.recipients, cm.delivered, cm.opens_unique, cm.clicks_unique",
			"cm.bounced, cm.unsubscribed, cm.conversion_value",
			"cm.open_rate, cm.click_rate, cm.bounce_rate",
			"cm.created_at, cm.updated_at",
		).
		From(campaignMetricsTable).
		Where(squirrel.Eq{"cm.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"cm.sent_at": startDate}).
		Where(squirrel.LtOrEq{"cm.sent_at": endDate}).
		OrderBy("cm.sent_at ASC").
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

	metrics := make([]*domain.CampaignMetric, 0)
	for rows.Next() {
		metric := &domain.CampaignMetric{}
		err := rows.Scan(
			&metric.ID,
			&metric.TenantID,
			&metric.ExternalID,
			&metric.Name,
			&metric.SubjectLine,
			&metric.SentAt,
			&metric.Recipients,
			&metric.Delivered,
			&metric.OpensUnique,
			&metric.ClicksUnique,
			&metric.Bounced,
			&metric.Unsubscribed,
			&metric.ConversionValue,
			&metric.OpenRate,
			&metric.ClickRate,
			&metric.BounceRate,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning campaign metrics: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return metrics, nil
}

func (r *campaignMetricRepository) DeleteOlderThan(tenantID string, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("campaign_metrics").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Lt{"sent_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("executing query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting affected rows: %w", err)
	}

	return rowsAffected, nil
}
