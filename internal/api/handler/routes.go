package handler

import (
	"net/http"

	"github.com/agencyops/marketing-metrics-api/internal/api/handler/router"
	"github.com/agencyops/marketing-metrics-api/internal/scheduler"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/authenticating"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/reporting"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/tenanting"
	"github.com/agencyops/marketing-metrics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Tenants(service tenanting.TenantService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants",
			Method:      http.MethodPost,
			Handler:     CreateTenant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tenants",
			Method:      http.MethodGet,
			Handler:     ListTenants(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tenants/:id",
			Method:      http.MethodGet,
			Handler:     GetTenant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTenant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tenants/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTenant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Sync(service *scheduler.MetricsSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants/:id/sync",
			Method:      http.MethodPost,
			Handler:     RunTenantSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tenants/:id/sync/report",
			Method:      http.MethodGet,
			Handler:     GetLastSyncReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Metrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants/:id/metrics/campaigns",
			Method:      http.MethodGet,
			Handler:     GetCampaignMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id/metrics/flows",
			Method:      http.MethodGet,
			Handler:     GetFlowMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id/metrics/segments",
			Method:      http.MethodGet,
			Handler:     GetSegmentMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id/metrics/list-growth",
			Method:      http.MethodGet,
			Handler:     GetListGrowthMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id/metrics/list-growth/chart",
			Method:      http.MethodGet,
			Handler:     GetListGrowthChart(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id/metrics/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenueMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id/metrics/revenue/chart",
			Method:      http.MethodGet,
			Handler:     GetRevenueChart(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(service *scheduler.MetricsSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
