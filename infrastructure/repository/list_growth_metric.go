package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/agencyops/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/lib/pq"
)

const listGrowthMetricsTable = "list_growth_metrics lg"

type ListGrowthMetricRepository interface {
	SaveOrUpdate(metric *domain.ListGrowthMetric) error
	GetByDateRange(tenantID string, interval domain.GrowthInterval, startDate, endDate time.Time) ([]*domain.ListGrowthMetric, error)
}

type listGrowthMetricRepository struct {
	conn *postgres.Connection
}

func NewListGrowthMetricRepository(conn *postgres.Connection) ListGrowthMetricRepository {
	return &listGrowthMetricRepository{
		conn: conn,
	}
}

// SaveOrUpdate overwrites the bucket keyed by (tenant_id, date, interval),
// derived fields included.
func (r *listGrowthMetricRepository) SaveOrUpdate(metric *domain.ListGrowthMetric) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("list_growth_metrics").
		Columns(
			"tenant_id", "date", "interval",
			"email_subscriptions", "email_unsubscriptions",
			"sms_subscriptions", "sms_unsubscriptions", "form_submissions",
			"net_growth", "growth_rate", "churn_rate",
		).
		Values(
			metric.TenantID,
			metric.Date.Format("2006-01-02"),
			metric.Interval,
			metric.EmailSubscriptions,
			metric.EmailUnsubscriptions,
			metric.SMSSubscriptions,
			metric.SMSUnsubscriptions,
			metric.FormSubmissions,
			metric.NetGrowth,
			metric.GrowthRate,
			metric.ChurnRate,
		).
		Suffix(`
			ON CONFLICT (tenant_id, date, interval) DO UPDATE SET
				email_subscriptions = EXCLUDED.email_subscriptions,
				email_unsubscriptions = EXCLUDED.email_unsubscriptions,
				sms_subscriptions = EXCLUDED.sms_subscriptions,
				sms_unsubscriptions = EXCLUDED.sms_unsubscriptions,
				form_submissions = EXCLUDED.form_submissions,
				net_growth = EXCLUDED.net_growth,
				growth_rate = EXCLUDED.growth_rate,
				churn_rate = EXCLUDED.churn_rate,
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

func (r *listGrowthMetricRepository) GetByDateRange(tenantID string, interval domain.GrowthInterval, startDate, endDate time.Time) ([]*domain.ListGrowthMetric, error) {
	query, args, err := squirrel.
		Select(
			"lg.id, lg.tenant_id, lg.date, lg.interval",
			"lg.email_subscriptions, lg.email_unsubscriptions",
			"lg.sms_subscriptions, lg.sms_unsubscriptions, lg.form_submissions",
			"lg.net_growth, lg.growth_rate, lg.churn_rate",
			"lg.created_at, lg.updated_at",
		).
		From(listGrowthMetricsTable).
		Where(squirrel.Eq{"lg.tenant_id": tenantID, "lg.interval": interval}).
		Where(squirrel.GtOrEq{"lg.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"lg.date": endDate.Format("2006-01-02")}).
		OrderBy("lg.date ASC").
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

	metrics := make([]*domain.ListGrowthMetric, 0)
	for rows.Next() {
		metric := &domain.ListGrowthMetric{}
		err := rows.Scan(
			&metric.ID,
			&metric.TenantID,
			&metric.Date,
			&metric.Interval,
			&metric.EmailSubscriptions,
			&metric.EmailUnsubscriptions,
			&metric.SMSSubscriptions,
			&metric.SMSUnsubscriptions,
			&metric.FormSubmissions,
			&metric.NetGrowth,
			&metric.GrowthRate,
			&metric.ChurnRate,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning list growth metrics: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return metrics, nil
}
