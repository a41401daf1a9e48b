package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/reporting"
	"github.com/agencyops/marketing-metrics-api/pkg/apiErrors"
	"github.com/agencyops/marketing-metrics-api/pkg/log"
)

const defaultWindowDays = 30

var errInvalidWindow = errors.New("window_days must be a positive integer")

// metricsWindow reads the trailing window from the window_days query
// parameter, defaulting to 30 days.
func metricsWindow(r *http.Request) (domain.MetricWindow, error) {
	days := defaultWindowDays

	if raw := r.URL.Query().Get("window_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return domain.MetricWindow{}, errInvalidWindow
		}
		days = parsed
	}

	return domain.NewTrailingWindow(time.Now().UTC(), days), nil
}

func GetCampaignMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		window, err := metricsWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		compare := r.URL.Query().Get("compare") == "true"

		summary, err := service.CampaignSummary(tenantID, window, compare)
		if err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("metrics: failed to build campaign summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to build campaign summary", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})
}

func GetFlowMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		window, err := metricsWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.FlowSummary(tenantID, window)
		if err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("metrics: failed to build flow summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to build flow summary", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})
}

func GetListGrowthMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		window, err := metricsWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		compare := r.URL.Query().Get("compare") == "true"

		summary, err := service.ListGrowthSummary(tenantID, window, compare)
		if err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("metrics: failed to build list growth summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to build list growth summary", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})
}

func GetRevenueMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		window, err := metricsWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		compare := r.URL.Query().Get("compare") == "true"

		summary, err := service.RevenueSummary(tenantID, window, compare)
		if err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("metrics: failed to build revenue summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to build revenue summary", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})
}

func GetRevenueChart(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		window, err := metricsWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		excludeOutliers := r.URL.Query().Get("exclude_outliers") == "true"

		points, err := service.RevenueChart(tenantID, window, excludeOutliers)
		if err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("metrics: failed to build revenue chart")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to build revenue chart", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(points)
	})
}

func GetListGrowthChart(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		window, err := metricsWindow(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		excludeOutliers := r.URL.Query().Get("exclude_outliers") == "true"

		points, err := service.ListGrowthChart(tenantID, window, excludeOutliers)
		if err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("metrics: failed to build list growth chart")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to build list growth chart", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(points)
	})
}

func GetSegmentMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		segments, err := service.Segments(tenantID)
		if err != nil {
			logger.WithField("tenant_id", tenantID).WithError(err).Error("metrics: failed to list segments")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list segments", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(segments)
	})
}
