package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/agencyops/marketing-metrics-api/internal/scheduler"
	"github.com/agencyops/marketing-metrics-api/pkg/apiErrors"
	"github.com/agencyops/marketing-metrics-api/pkg/log"
)

const cronTypeMetricsSync = "metrics-sync"

// RunCronJob triggers a scheduled job manually. The run happens in the
// background; the endpoint returns as soon as the trigger is accepted.
func RunCronJob(service *scheduler.MetricsSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case cronTypeMetricsSync:
			service.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				fmt.Sprintf("unknown cron job type: %s", cronType), nil)
			return
		}

		logger.WithField("cron_type", cronType).Info("cron: manual run triggered")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "triggered",
			"type":   cronType,
		})
	})
}

// GetCronStatus reports the scheduler's current state.
func GetCronStatus(service *scheduler.MetricsSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	})
}
