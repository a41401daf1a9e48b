package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/tenanting"
	"github.com/agencyops/marketing-metrics-api/pkg/apiErrors"
	"github.com/agencyops/marketing-metrics-api/pkg/log"
)

// CreateTenant registers a new client account. The request carries the
// platform credential; the response never does.
func CreateTenant(service tenanting.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateTenantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		tenant, err := service.CreateTenant(&req)
		if err != nil {
			if errors.Is(err, tenanting.ErrMissingRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			logger.WithError(err).Error("tenants: failed to create tenant")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to create tenant", nil)
			return
		}

		logger.WithField("tenant_id", tenant.ID).Info("tenants: tenant created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(tenant)
	})
}

func ListTenants(service tenanting.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenants, err := service.ListTenants()
		if err != nil {
			logger.WithError(err).Error("tenants: failed to list tenants")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list tenants", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tenants)
	})
}

func GetTenant(service tenanting.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		tenant, err := service.GetTenant(id)
		if err != nil {
			if errors.Is(err, tenanting.ErrTenantNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "tenant not found", nil)
				return
			}
			logger.WithError(err).Error("tenants: failed to get tenant")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to get tenant", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tenant)
	})
}

// UpdateTenant applies a partial update; sending api_key rotates the
// stored credential.
func UpdateTenant(service tenanting.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateTenantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		tenant, err := service.UpdateTenant(id, &req)
		if err != nil {
			if errors.Is(err, tenanting.ErrTenantNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "tenant not found", nil)
				return
			}
			logger.WithError(err).Error("tenants: failed to update tenant")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to update tenant", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tenant)
	})
}

func DeleteTenant(service tenanting.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTenant(id); err != nil {
			if errors.Is(err, tenanting.ErrTenantNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "tenant not found", nil)
				return
			}
			logger.WithError(err).Error("tenants: failed to delete tenant")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to delete tenant", nil)
			return
		}

		logger.WithField("tenant_id", id).Info("tenants: tenant deleted")
		w.WriteHeader(http.StatusNoContent)
	})
}
