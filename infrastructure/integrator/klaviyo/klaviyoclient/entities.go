package klaviyoclient

import (
	"context"
	"time"

	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
)

type campaignAttributes struct {
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Channel     string     `json:"channel"`
	SubjectLine string     `json:"subject_line"`
	SendTime    *time.Time `json:"send_time"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (c *KlaviyoClient) ListCampaigns(ctx context.Context, filter, cursor string) (*kdomain.Page[kdomain.Campaign], error) {
	return listPage(ctx, c, "/campaigns", filter, cursor, func(id string, attrs campaignAttributes) kdomain.Campaign {
		return kdomain.Campaign{
			ID:          id,
			Name:        attrs.Name,
			Status:      attrs.Status,
			Channel:     attrs.Channel,
			SubjectLine: attrs.SubjectLine,
			SendTime:    attrs.SendTime,
			CreatedAt:   attrs.CreatedAt,
		}
	})
}

type flowAttributes struct {
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	TriggerType string    `json:"trigger_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *KlaviyoClient) ListFlows(ctx context.Context, filter, cursor string) (*kdomain.Page[kdomain.Flow], error) {
	return listPage(ctx, c, "/flows", filter, cursor, func(id string, attrs flowAttributes) kdomain.Flow {
		return kdomain.Flow{
			ID:          id,
			Name:        attrs.Name,
			Status:      attrs.Status,
			TriggerType: attrs.TriggerType,
			CreatedAt:   attrs.CreatedAt,
		}
	})
}

type segmentAttributes struct {
	Name         string    `json:"name"`
	ProfileCount int       `json:"profile_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *KlaviyoClient) ListSegments(ctx context.Context, filter, cursor string) (*kdomain.Page[kdomain.Segment], error) {
	return listPage(ctx, c, "/segments", filter, cursor, func(id string, attrs segmentAttributes) kdomain.Segment {
		return kdomain.Segment{
			ID:           id,
			Name:         attrs.Name,
			ProfileCount: attrs.ProfileCount,
			CreatedAt:    attrs.CreatedAt,
		}
	})
}

type metricAttributes struct {
	Name        string `json:"name"`
	Integration string `json:"integration"`
}

func (c *KlaviyoClient) ListMetrics(ctx context.Context, filter, cursor string) (*kdomain.Page[kdomain.Metric], error) {
	return listPage(ctx, c, "/metrics", filter, cursor, func(id string, attrs metricAttributes) kdomain.Metric {
		return kdomain.Metric{
			ID:          id,
			Name:        attrs.Name,
			Integration: attrs.Integration,
		}
	})
}
