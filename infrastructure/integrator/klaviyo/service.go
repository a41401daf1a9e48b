package klaviyo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/klaviyoclient"
	"github.com/agencyops/marketing-metrics-api/internal/config"
	"github.com/agencyops/marketing-metrics-api/pkg/retry"
	"github.com/sirupsen/logrus"
)

// ErrMetricNotFound is returned when a metric name configured for a tenant
// does not exist on the platform.
var ErrMetricNotFound = errors.New("metric not found")

// campaign listings must be scoped to one channel; the filter expression
// itself is provider syntax and passed through opaquely.
const emailCampaignFilter = "equals(messages.channel,'email')"

var campaignStatistics = []string{
	"recipients",
	"delivered",
	"opens_unique",
	"clicks_unique",
	"bounced",
	"unsubscribes",
	"conversion_value",
}

var flowStatistics = []string{
	"opens_unique",
	"clicks_unique",
	"conversions",
	"conversion_value",
}

// Integrator is the per-tenant, retry-wrapped view over the platform API
// that the sync orchestrator consumes. One instance lives for one sync run;
// resolved metric ids are cached for that run only.
type Integrator interface {
	ListCampaigns(ctx context.Context) ([]kdomain.Campaign, error)
	ListFlows(ctx context.Context) ([]kdomain.Flow, error)
	ListSegments(ctx context.Context) ([]kdomain.Segment, error)
	ResolveMetricID(ctx context.Context, name string) (string, error)
	CampaignValues(ctx context.Context, campaignIDs []string, conversionMetricID string, tf kdomain.Timeframe) ([]kdomain.ReportRow, error)
	FlowWeeklySeries(ctx context.Context, flowID, conversionMetricID string, tf kdomain.Timeframe) (*kdomain.SeriesReport, error)
	EventSeries(ctx context.Context, metricID string, tf kdomain.Timeframe) (*kdomain.AggregateResult, error)
	RevenueByChannel(ctx context.Context, conversionMetricID string, tf kdomain.Timeframe) (*kdomain.AggregateResult, error)
}

type KlaviyoIntegrator struct {
	client    klaviyoclient.Client
	retryOpts retry.Options

	mu        sync.Mutex
	metricIDs map[string]string
}

// New builds an integrator for one tenant from its opaque credential.
func New(cfg *config.Config, apiKey string) Integrator {
	return NewWithClient(cfg, klaviyoclient.NewClient(cfg, apiKey))
}

// NewWithClient is the seam used by tests to inject a fake client.
func NewWithClient(cfg *config.Config, client klaviyoclient.Client) Integrator {
	opts := retry.DefaultOptions(kdomain.IsRateLimited)
	if cfg.Klaviyo.RetryMaxAttempts > 0 {
		opts.MaxAttempts = cfg.Klaviyo.RetryMaxAttempts
	}
	if cfg.Klaviyo.RetryBaseDelay > 0 {
		opts.BaseDelay = cfg.Klaviyo.RetryBaseDelay
	}
	if cfg.Klaviyo.RetryMaxDelay > 0 {
		opts.MaxDelay = cfg.Klaviyo.RetryMaxDelay
	}

	return &KlaviyoIntegrator{
		client:    client,
		retryOpts: opts,
		metricIDs: make(map[string]string),
	}
}

// paginate walks a cursor-paginated listing to the end. Each page fetch
// goes through the retry executor; once the context is cancelled no
// further page is requested.
func paginate[T any](ctx context.Context, opts retry.Options, fetch func(ctx context.Context, cursor string) (*kdomain.Page[T], error)) ([]T, error) {
	var items []T
	cursor := ""

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := retry.Do(ctx, opts, func(ctx context.Context) (*kdomain.Page[T], error) {
			return fetch(ctx, cursor)
		})
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)

		if page.NextCursor == "" {
			return items, nil
		}
		cursor = page.NextCursor
	}
}

func (s *KlaviyoIntegrator) ListCampaigns(ctx context.Context) ([]kdomain.Campaign, error) {
	return paginate(ctx, s.retryOpts, func(ctx context.Context, cursor string) (*kdomain.Page[kdomain.Campaign], error) {
		return s.client.ListCampaigns(ctx, emailCampaignFilter, cursor)
	})
}

func (s *KlaviyoIntegrator) ListFlows(ctx context.Context) ([]kdomain.Flow, error) {
	return paginate(ctx, s.retryOpts, func(ctx context.Context, cursor string) (*kdomain.Page[kdomain.Flow], error) {
		return s.client.ListFlows(ctx, "", cursor)
	})
}

func (s *KlaviyoIntegrator) ListSegments(ctx context.Context) ([]kdomain.Segment, error) {
	return paginate(ctx, s.retryOpts, func(ctx context.Context, cursor string) (*kdomain.Page[kdomain.Segment], error) {
		return s.client.ListSegments(ctx, "", cursor)
	})
}

// ResolveMetricID maps a human metric name to the platform's opaque id.
// Resolution happens once per run; later calls for the same name hit the
// run-local cache instead of the API.
func (s *KlaviyoIntegrator) ResolveMetricID(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	if id, ok := s.metricIDs[name]; ok {
		s.mu.Unlock()
		return id, nil
	}
	s.mu.Unlock()

	metrics, err := paginate(ctx, s.retryOpts, func(ctx context.Context, cursor string) (*kdomain.Page[kdomain.Metric], error) {
		return s.client.ListMetrics(ctx, "", cursor)
	})
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, metric := range metrics {
		s.metricIDs[metric.Name] = metric.ID
	}

	id, ok := s.metricIDs[name]
	if !ok {
		logrus.WithField("metric_name", name).Warn("klaviyo: metric name not present in metrics catalog")
		return "", fmt.Errorf("resolving metric %q: %w", name, ErrMetricNotFound)
	}

	return id, nil
}

func (s *KlaviyoIntegrator) CampaignValues(ctx context.Context, campaignIDs []string, conversionMetricID string, tf kdomain.Timeframe) ([]kdomain.ReportRow, error) {
	return retry.Do(ctx, s.retryOpts, func(ctx context.Context) ([]kdomain.ReportRow, error) {
		return s.client.CampaignValuesReport(ctx, kdomain.ValuesReportRequest{
			CampaignIDs:        campaignIDs,
			ConversionMetricID: conversionMetricID,
			Statistics:         campaignStatistics,
			Timeframe:          tf,
		})
	})
}

func (s *KlaviyoIntegrator) FlowWeeklySeries(ctx context.Context, flowID, conversionMetricID string, tf kdomain.Timeframe) (*kdomain.SeriesReport, error) {
	return retry.Do(ctx, s.retryOpts, func(ctx context.Context) (*kdomain.SeriesReport, error) {
		return s.client.FlowSeriesReport(ctx, kdomain.SeriesReportRequest{
			FlowID:             flowID,
			ConversionMetricID: conversionMetricID,
			Statistics:         flowStatistics,
			Interval:           "weekly",
			Timeframe:          tf,
		})
	})
}

// EventSeries returns daily counts for one metric (used for list growth
// event types).
func (s *KlaviyoIntegrator) EventSeries(ctx context.Context, metricID string, tf kdomain.Timeframe) (*kdomain.AggregateResult, error) {
	return retry.Do(ctx, s.retryOpts, func(ctx context.Context) (*kdomain.AggregateResult, error) {
		return s.client.MetricAggregate(ctx, kdomain.AggregateRequest{
			MetricID:     metricID,
			Measurements: []string{"count"},
			Interval:     "day",
			Timeframe:    tf,
		})
	})
}

// RevenueByChannel returns daily revenue and order counts for the
// conversion metric, split by attributed channel.
func (s *KlaviyoIntegrator) RevenueByChannel(ctx context.Context, conversionMetricID string, tf kdomain.Timeframe) (*kdomain.AggregateResult, error) {
	return retry.Do(ctx, s.retryOpts, func(ctx context.Context) (*kdomain.AggregateResult, error) {
		return s.client.MetricAggregate(ctx, kdomain.AggregateRequest{
			MetricID:     conversionMetricID,
			Measurements: []string{"count", "sum_value"},
			Interval:     "day",
			By:           []string{"$attributed_channel"},
			Timeframe:    tf,
		})
	})
}
