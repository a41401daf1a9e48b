package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/agencyops/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/lib/pq"
)

const revenueAttributionTable = "revenue_attribution_metrics ra"

type RevenueAttributionRepository interface {
	SaveOrUpdate(metric *domain.RevenueAttributionMetric) error
	GetByDateRange(tenantID string, startDate, endDate time.Time) ([]*domain.RevenueAttributionMetric, error)
}

type revenueAttributionRepository struct {
	conn *postgres.Connection
}

func NewRevenueAttributionRepository(conn *postgres.Connection) RevenueAttributionRepository {
	return &revenueAttributionRepository{
		conn: conn,
	}
}

// SaveOrUpdate overwrites the day bucket keyed by (tenant_id, date).
func (r *revenueAttributionRepository) SaveOrUpdate(metric *domain.RevenueAttributionMetric) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("revenue_attribution_metrics").
		Columns(
			"tenant_id", "date",
			"email_revenue", "sms_revenue", "total_revenue",
			"email_orders", "sms_orders", "total_orders",
			"email_share", "sms_share",
		).
		Values(
			metric.TenantID,
			metric.Date.Format("2006-01-02"),
			metric.EmailRevenue,
			metric.SMSRevenue,
			metric.TotalRevenue,
			metric.EmailOrders,
			metric.SMSOrders,
			metric.TotalOrders,
			metric.EmailShare,
			metric.SMSShare,
		).
		Suffix(`
			ON CONFLICT (tenant_id, date) DO UPDATE SET
				email_revenue = EXCLUDED.email_revenue,
				sms_revenue = EXCLUDED.sms_revenue,
				total_revenue = EXCLUDED.total_revenue,
				email_orders = EXCLUDED.email_orders,
				sms_orders = EXCLUDED.sms_orders,
				total_orders = EXCLUDED.total_orders,
				email_share = EXCLUDED.email_share,
				sms_share = EXCLUDED.sms_share,
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

func (r *revenueAttributionRepository) GetByDateRange(tenantID string, startDate, endDate time.Time) ([]*domain.RevenueAttributionMetric, error) {
	query, args, err := squirrel.
		Select(
			"ra.id, ra.tenant_id, ra.date",
			"ra.email_revenue, ra.sms_revenue, ra.total_revenue",
			"ra.email_orders, ra.sms_orders, ra.total_orders",
			"ra.email_share, ra.sms_share",
			"ra.created_at, ra.updated_at",
		).
		From(revenueAttributionTable).
		Where(squirrel.Eq{"ra.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"ra.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ra.date": endDate.Format("2006-01-02")}).
		OrderBy("ra.date ASC").
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

	metrics := make([]*domain.RevenueAttributionMetric, 0)
	for rows.Next() {
		metric := &domain.RevenueAttributionMetric{}
		err := rows.Scan(
			&metric.ID,
			&metric.TenantID,
			&metric.Date,
			&metric.EmailRevenue,
			&metric.SMSRevenue,
			&metric.TotalRevenue,
			&metric.EmailOrders,
			&metric.SMSOrders,
			&metric.TotalOrders,
			&metric.EmailShare,
			&metric.SMSShare,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning revenue attribution metrics: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return metrics, nil
}
