package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/agencyops/marketing-metrics-api/internal/scheduler"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/syncing"
	"github.com/agencyops/marketing-metrics-api/pkg/apiErrors"
	"github.com/agencyops/marketing-metrics-api/pkg/log"
)

// RunTenantSync triggers a synchronous sync for one tenant and returns the
// run report. The scheduler's in-flight guard rejects overlapping runs for
// the same tenant with a 409.
func RunTenantSync(service *scheduler.MetricsSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		logger.WithField("tenant_id", tenantID).Info("sync: manual tenant sync requested")

		report, err := service.RunTenantSync(r.Context(), tenantID)
		if err != nil {
			switch {
			case errors.Is(err, scheduler.ErrSyncInProgress):
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "sync already in progress for this tenant", nil)
			case errors.Is(err, syncing.ErrTenantNotFound):
				apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "tenant not found", nil)
			case errors.Is(err, syncing.ErrTenantInactive), errors.Is(err, syncing.ErrMissingAPIKey):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logger.WithField("tenant_id", tenantID).WithError(err).Error("sync: tenant sync failed")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "sync failed", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}

// GetLastSyncReport returns the report of the tenant's most recent run.
func GetLastSyncReport(service *scheduler.MetricsSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report := service.LastReport(tenantID)
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "no sync has completed for this tenant yet", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})
}
