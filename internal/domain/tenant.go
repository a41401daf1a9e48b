package domain

import (
	"time"
)

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "ACTIVE"
	TenantStatusInactive TenantStatus = "INACTIVE"
)

// Tenant is one client account whose marketing metrics are synced from the
// email platform. APIKey is the platform credential and must never be
// serialized or logged.
type Tenant struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	APIKey               string       `json:"-"`
	ConversionMetricName string       `json:"conversion_metric_name"`
	Timezone             string       `json:"timezone"`
	Currency             string       `json:"currency"`
	Status               TenantStatus `json:"status"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

type CreateTenantRequest struct {
	Name                 string `json:"name"`
	APIKey               string `json:"api_key"`
	ConversionMetricName string `json:"conversion_metric_name"`
	Timezone             string `json:"timezone"`
	Currency             string `json:"currency"`
}

type UpdateTenantRequest struct {
	Name                 *string       `json:"name"`
	APIKey               *string       `json:"api_key"`
	ConversionMetricName *string       `json:"conversion_metric_name"`
	Timezone             *string       `json:"timezone"`
	Currency             *string       `json:"currency"`
	Status               *TenantStatus `json:"status"`
}

// TenantResponse is the API view of a tenant. It reports whether a
// credential is configured without ever echoing it.
type TenantResponse struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	HasAPIKey            bool         `json:"has_api_key"`
	ConversionMetricName string       `json:"conversion_metric_name"`
	Timezone             string       `json:"timezone"`
	Currency             string       `json:"currency"`
	Status               TenantStatus `json:"status"`
	CreatedAt            time.Time    `json:"created_at"`
}

func (t *Tenant) ToResponse() *TenantResponse {
	return &TenantResponse{
		ID:                   t.ID,
		Name:                 t.Name,
		HasAPIKey:            t.APIKey != "",
		ConversionMetricName: t.ConversionMetricName,
		Timezone:             t.Timezone,
		Currency:             t.Currency,
		Status:               t.Status,
		CreatedAt:            t.CreatedAt,
	}
}
