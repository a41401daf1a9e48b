package klaviyoclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
)

type reportAttributes struct {
	Statistics         []string          `json:"statistics"`
	Timeframe          kdomain.Timeframe `json:"timeframe"`
	ConversionMetricID string            `json:"conversion_metric_id,omitempty"`
	Filter             string            `json:"filter,omitempty"`
	Interval           string            `json:"interval,omitempty"`
}

type reportRequest struct {
	Data struct {
		Type       string           `json:"type"`
		Attributes reportAttributes `json:"attributes"`
	} `json:"data"`
}

func newReportRequest(reportType string, attrs reportAttributes) reportRequest {
	var req reportRequest
	req.Data.Type = reportType
	req.Data.Attributes = attrs
	return req
}

type valuesReportResponse struct {
	Data struct {
		Attributes struct {
			Results []kdomain.ReportRow `json:"results"`
		} `json:"attributes"`
	} `json:"data"`
}

// campaignFilter builds the array-membership filter the campaign report
// expects. The flow report does not accept this syntax; see flowFilter.
func campaignFilter(ids []string) string {
	quoted := make([]string, 0, len(ids))
	for _, id := range ids {
		quoted = append(quoted, fmt.Sprintf("%q", id))
	}
	return fmt.Sprintf("any(campaign_id,[%s])", strings.Join(quoted, ","))
}

// flowFilter builds the single-flow equality filter. The flow report only
// accepts equality; the campaign report's any() syntax is rejected here.
func flowFilter(id string) string {
	return fmt.Sprintf("equals(flow_id,%q)", id)
}

// CampaignValuesReport returns lifetime aggregate statistics for the given
// campaigns. Conversion statistics come back zeroed unless
// req.ConversionMetricID is set; the platform does not error on omission.
func (c *KlaviyoClient) CampaignValuesReport(ctx context.Context, req kdomain.ValuesReportRequest) ([]kdomain.ReportRow, error) {
	body := newReportRequest("campaign-values-report", reportAttributes{
		Statistics:         req.Statistics,
		Timeframe:          req.Timeframe,
		ConversionMetricID: req.ConversionMetricID,
		Filter:             campaignFilter(req.CampaignIDs),
	})

	var resp valuesReportResponse
	if err := c.do(ctx, http.MethodPost, "/campaign-values-reports", nil, body, &resp); err != nil {
		return nil, err
	}

	return resp.Data.Attributes.Results, nil
}

type seriesReportResponse struct {
	Data struct {
		Attributes struct {
			DateTimes []time.Time         `json:"date_times"`
			Results   []kdomain.SeriesRow `json:"results"`
		} `json:"attributes"`
	} `json:"data"`
}

// FlowSeriesReport returns bucketed statistics for one flow, one value per
// returned date bucket. Weekly buckets are keyed by the week's start date.
func (c *KlaviyoClient) FlowSeriesReport(ctx context.Context, req kdomain.SeriesReportRequest) (*kdomain.SeriesReport, error) {
	body := newReportRequest("flow-series-report", reportAttributes{
		Statistics:         req.Statistics,
		Timeframe:          req.Timeframe,
		ConversionMetricID: req.ConversionMetricID,
		Filter:             flowFilter(req.FlowID),
		Interval:           req.Interval,
	})

	var resp seriesReportResponse
	if err := c.do(ctx, http.MethodPost, "/flow-series-reports", nil, body, &resp); err != nil {
		return nil, err
	}

	return &kdomain.SeriesReport{
		DateTimes: resp.Data.Attributes.DateTimes,
		Rows:      resp.Data.Attributes.Results,
	}, nil
}
