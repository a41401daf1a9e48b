package syncing

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo"
	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/agencyops/marketing-metrics-api/pkg/utils"
)

// Consent event metric names as the platform registers them. A tenant that
// never enabled a channel simply lacks the metric; that channel then
// contributes zeros instead of failing the domain.
const (
	metricSubscribedEmail   = "Subscribed to Email Marketing"
	metricUnsubscribedEmail = "Unsubscribed from Email Marketing"
	metricSubscribedSMS     = "Subscribed to SMS Marketing"
	metricUnsubscribedSMS   = "Unsubscribed from SMS Marketing"
	metricFilledOutForm     = "Filled Out Form"
)

// syncListGrowth builds one daily bucket per day of the window from up to
// five independent event series, grouped by date with zero-fill: a day a
// series never mentions still gets a bucket, and a channel with no events
// reads as 0 in every bucket.
func (s *Service) syncListGrowth(
	ctx context.Context,
	integrator klaviyo.Integrator,
	tenant *domain.Tenant,
	window kdomain.Timeframe,
	r *domain.DomainReport,
) error {
	buckets := make(map[time.Time]*domain.ListGrowthMetric)
	for day := utils.TruncateToDay(window.Start); !day.After(window.End); day = day.AddDate(0, 0, 1) {
		buckets[day] = &domain.ListGrowthMetric{
			TenantID: tenant.ID,
			Date:     day,
			Interval: domain.GrowthIntervalDay,
		}
	}

	series := []struct {
		metricName string
		apply      func(m *domain.ListGrowthMetric, count int)
	}{
		{metricSubscribedEmail, func(m *domain.ListGrowthMetric, c int) { m.EmailSubscriptions = c }},
		{metricUnsubscribedEmail, func(m *domain.ListGrowthMetric, c int) { m.EmailUnsubscriptions = c }},
		{metricSubscribedSMS, func(m *domain.ListGrowthMetric, c int) { m.SMSSubscriptions = c }},
		{metricUnsubscribedSMS, func(m *domain.ListGrowthMetric, c int) { m.SMSUnsubscriptions = c }},
		{metricFilledOutForm, func(m *domain.ListGrowthMetric, c int) { m.FormSubmissions = c }},
	}

	for _, sd := range series {
		if err := ctx.Err(); err != nil {
			return err
		}

		metricID, err := integrator.ResolveMetricID(ctx, sd.metricName)
		if err != nil {
			if errors.Is(err, klaviyo.ErrMetricNotFound) {
				logrus.WithFields(logrus.Fields{
					"tenant_id":   tenant.ID,
					"metric_name": sd.metricName,
				}).Debug("syncing: consent metric absent, channel contributes zeros")
				continue
			}
			return err
		}

		result, err := integrator.EventSeries(ctx, metricID, window)
		if err != nil {
			return err
		}

		for _, agg := range result.Series {
			counts := agg.Measurements["count"]
			for i, dt := range result.Dates {
				if bucket, ok := buckets[utils.TruncateToDay(dt)]; ok {
					sd.apply(bucket, int(seriesValue(counts, i)))
				}
			}
		}
	}

	r.ItemsTotal = len(buckets)

	for _, bucket := range buckets {
		if err := ctx.Err(); err != nil {
			return err
		}

		bucket.RecomputeDerived()
		if err := s.listGrowthRepo.SaveOrUpdate(bucket); err != nil {
			r.RecordFailure(bucket.Date.Format("2006-01-02"), err)
			continue
		}
		r.RecordSuccess()
	}

	return nil
}
