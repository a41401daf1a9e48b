package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/agencyops/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/lib/pq"
)

const (
	flowMetricsTable        = "flow_metrics fm"
	flowMessageMetricsTable = "flow_message_metrics fmm"
)

type FlowMetricRepository interface {
	SaveOrUpdateFlow(flow *domain.FlowMetric) error
	SaveOrUpdateMessageWeek(metric *domain.FlowMessageMetric) error
	ListFlows(tenantID string) ([]*domain.FlowMetric, error)
	GetMessageWeeksByDateRange(tenantID string, startDate, endDate time.Time) ([]*domain.FlowMessageMetric, error)
}

type flowMetricRepository struct {
	conn *postgres.Connection
}

func NewFlowMetricRepository(conn *postgres.Connection) FlowMetricRepository {
	return &flowMetricRepository{
		conn: conn,
	}
}

func (r *flowMetricRepository) SaveOrUpdateFlow(flow *domain.FlowMetric) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("flow_metrics").
		Columns("tenant_id", "external_id", "name", "status", "trigger_type").
		Values(
			flow.TenantID,
			flow.ExternalID,
			flow.Name,
			flow.Status,
			flow.TriggerType,
		).
		Suffix(`
			ON CONFLICT (tenant_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				trigger_type = EXCLUDED.trigger_type,
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

// SaveOrUpdateMessageWeek overwrites the week bucket keyed by (tenant_id,
// flow_id, message_id, week_start). A re-sync of an already stored week
// replaces its counts wholesale instead of adding to them.
func (r *flowMetricRepository) SaveOrUpdateMessageWeek(metric *domain.FlowMessageMetric) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("flow_message_metrics").
		Columns(
			"tenant_id", "flow_id", "message_id", "week_start",
			"opens_unique", "clicks_unique", "conversions", "conversion_value",
		).
		Values(
			metric.TenantID,
			metric.FlowID,
			metric.MessageID,
			metric.WeekStart.Format("2006-01-02"),
			metric.OpensUnique,
			metric.ClicksUnique,
			metric.Conversions,
			metric.ConversionValue,
		).
		Suffix(`
			ON CONFLICT (tenant_id, flow_id, message_id, week_start) DO UPDATE SET
				opens_unique = EXCLUDED.opens_unique,
				clicks_unique = EXCLUDED.clicks_unique,
				conversions = EXCLUDED.conversions,
				conversion_value = EXCLUDED.conversion_value,
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

func (r *flowMetricRepository) ListFlows(tenantID string) ([]*domain.FlowMetric, error) {
	query, args, err := squirrel.
		Select("fm.id, fm.tenant_id, fm.external_id, fm.name, fm.status, fm.trigger_type, fm.created_at, fm.updated_at").
		From(flowMetricsTable).
		Where(squirrel.Eq{"fm.tenant_id": tenantID}).
		OrderBy("fm.name ASC").
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

	flows := make([]*domain.FlowMetric, 0)
	for rows.Next() {
		flow := &domain.FlowMetric{}
		err := rows.Scan(
			&flow.ID,
			&flow.TenantID,
			&flow.ExternalID,
			&flow.Name,
			&flow.Status,
			&flow.TriggerType,
			&flow.CreatedAt,
			&flow.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning flows: %w", err)
		}
		flows = append(flows, flow)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return flows, nil
}

func (r *flowMetricRepository) GetMessageWeeksByDateRange(tenantID string, startDate, endDate time.Time) ([]*domain.FlowMessageMetric, error) {
	query, args, err := squirrel.
		Select(
			"fmm.id, fmm.tenant_id, fmm.flow_id, fmm.message_id, fmm.week_start",
			"fmm.opens_unique, fmm.clicks_unique, fmm.conversions, fmm.conversion_value",
			"fmm.created_at, fmm.updated_at",
		).
		From(flowMessageMetricsTable).
		Where(squirrel.Eq{"fmm.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"fmm.week_start": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"fmm.week_start": endDate.Format("2006-01-02")}).
		OrderBy("fmm.week_start ASC").
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

	metrics := make([]*domain.FlowMessageMetric, 0)
	for rows.Next() {
		metric := &domain.FlowMessageMetric{}
		err := rows.Scan(
			&metric.ID,
			&metric.TenantID,
			&metric.FlowID,
			&metric.MessageID,
			&metric.WeekStart,
			&metric.OpensUnique,
			&metric.ClicksUnique,
			&metric.Conversions,
			&metric.ConversionValue,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning flow message metrics: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return metrics, nil
}
