package klaviyoclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
)

type aggregateAttributes struct {
	MetricID     string   `json:"metric_id"`
	Measurements []string `json:"measurements"`
	Interval     string   `json:"interval"`
	By           []string `json:"by,omitempty"`
	Filter       []string `json:"filter"`
}

type aggregateRequest struct {
	Data struct {
		Type       string              `json:"type"`
		Attributes aggregateAttributes `json:"attributes"`
	} `json:"data"`
}

type aggregateResponse struct {
	Data struct {
		Attributes struct {
			Dates []time.Time `json:"dates"`
			Data  []struct {
				Dimensions   []string             `json:"dimensions"`
				Measurements map[string][]float64 `json:"measurements"`
			} `json:"data"`
		} `json:"attributes"`
	} `json:"data"`
}

// MetricAggregate queries an event-series aggregation for one metric over
// the request timeframe.
func (c *KlaviyoClient) MetricAggregate(ctx context.Context, req kdomain.AggregateRequest) (*kdomain.AggregateResult, error) {
	var body aggregateRequest
	body.Data.Type = "metric-aggregate"
	body.Data.Attributes = aggregateAttributes{
		MetricID:     req.MetricID,
		Measurements: req.Measurements,
		Interval:     req.Interval,
		By:           req.By,
		Filter: []string{
			fmt.Sprintf("greater-or-equal(datetime,%s)", req.Timeframe.Start.UTC().Format(time.RFC3339)),
			fmt.Sprintf("less-than(datetime,%s)", req.Timeframe.End.UTC().Format(time.RFC3339)),
		},
	}

	var resp aggregateResponse
	if err := c.do(ctx, http.MethodPost, "/metric-aggregates", nil, body, &resp); err != nil {
		return nil, err
	}

	result := &kdomain.AggregateResult{
		Dates:  resp.Data.Attributes.Dates,
		Series: make([]kdomain.AggregateSeries, 0, len(resp.Data.Attributes.Data)),
	}

	for _, series := range resp.Data.Attributes.Data {
		result.Series = append(result.Series, kdomain.AggregateSeries{
			Dimensions:   series.Dimensions,
			Measurements: series.Measurements,
		})
	}

	return result, nil
}
