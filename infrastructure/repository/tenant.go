package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/agencyops/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

const tenantsTable = "tenants t"

type TenantRepository interface {
	GetByID(id string) (*domain.Tenant, error)
	List() ([]*domain.Tenant, error)
	ListActive() ([]*domain.Tenant, error)
	Create(tenant *domain.Tenant) error
	Update(tenant *domain.Tenant) error
	Delete(id string) error
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) GetByID(id string) (*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.api_key, t.conversion_metric_name, t.timezone, t.currency, t.status, t.created_at, t.updated_at").
		From(tenantsTable).
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	tenant, err := r.scanTenant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning tenant: %w", err)
	}

	return tenant, nil
}

func (r *tenantRepository) List() ([]*domain.Tenant, error) {
	return r.list(nil)
}

func (r *tenantRepository) ListActive() ([]*domain.Tenant, error) {
	return r.list(squirrel.Eq{"t.status": domain.TenantStatusActive})
}

func (r *tenantRepository) list(where squirrel.Sqlizer) ([]*domain.Tenant, error) {
	builder := squirrel.
		Select("t.id, t.name, t.api_key, t.conversion_metric_name, t.timezone, t.currency, t.status, t.created_at, t.updated_at").
		From(tenantsTable).
		OrderBy("t.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant := &domain.Tenant{}
		err := rows.Scan(
			&tenant.ID,
			&tenant.Name,
			&tenant.APIKey,
			&tenant.ConversionMetricName,
			&tenant.Timezone,
			&tenant.Currency,
			&tenant.Status,
			&tenant.CreatedAt,
			&tenant.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning tenants: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return tenants, nil
}

func (r *tenantRepository) Create(tenant *domain.Tenant) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("tenants").
		Columns("id", "name", "api_key", "conversion_metric_name", "timezone", "currency", "status").
		Values(
			tenant.ID,
			tenant.Name,
			tenant.APIKey,
			tenant.ConversionMetricName,
			tenant.Timezone,
			tenant.Currency,
			tenant.Status,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *tenantRepository) Update(tenant *domain.Tenant) error {
	query, args, err := squirrel.StatementBuilder.
		Update("tenants").
		Set("name", tenant.Name).
		Set("api_key", tenant.APIKey).
		Set("conversion_metric_name", tenant.ConversionMetricName).
		Set("timezone", tenant.Timezone).
		Set("currency", tenant.Currency).
		Set("status", tenant.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tenant.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("tenant %s not found", tenant.ID)
	}

	return nil
}

// Delete removes the tenant and all of its synced metric rows in one
// transaction.
func (r *tenantRepository) Delete(id string) error {
	metricTables := []string{
		"campaign_metrics",
		"flow_message_metrics",
		"flow_metrics",
		"segment_metrics",
		"list_growth_metrics",
		"revenue_attribution_metrics",
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, table := range metricTables {
			query, args, err := squirrel.
				Delete(table).
				Where(squirrel.Eq{"tenant_id": id}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("building query for %s: %w", table, err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("deleting from %s: %w", table, err)
			}
		}

		query, args, err := squirrel.
			Delete("tenants").
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("building query: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("deleting tenant: %w", err)
		}

		return nil
	})
}

func (r *tenantRepository) scanTenant(row *sql.Row) (*domain.Tenant, error) {
	tenant := &domain.Tenant{}

	err := row.Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.APIKey,
		&tenant.ConversionMetricName,
		&tenant.Timezone,
		&tenant.Currency,
		&tenant.Status,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return tenant, nil
}
