package klaviyo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/internal/config"
)

// fakeClient scripts client responses per call.
type fakeClient struct {
	listMetricsCalls  int
	metricPages       []*kdomain.Page[kdomain.Metric]
	campaignPages     []*kdomain.Page[kdomain.Campaign]
	campaignCalls     int
	campaignErrs      []error
	valuesReportCalls int
	valuesReportErrs  []error
	valuesReportRows  []kdomain.ReportRow
}

func (f *fakeClient) ListCampaigns(_ context.Context, _, _ string) (*kdomain.Page[kdomain.Campaign], error) {
	call := f.campaignCalls
	f.campaignCalls++
	if call < len(f.campaignErrs) && f.campaignErrs[call] != nil {
		return nil, f.campaignErrs[call]
	}
	if len(f.campaignPages) == 0 {
		return &kdomain.Page[kdomain.Campaign]{}, nil
	}
	page := f.campaignPages[0]
	f.campaignPages = f.campaignPages[1:]
	return page, nil
}

func (f *fakeClient) ListFlows(context.Context, string, string) (*kdomain.Page[kdomain.Flow], error) {
	return &kdomain.Page[kdomain.Flow]{}, nil
}

func (f *fakeClient) ListSegments(context.Context, string, string) (*kdomain.Page[kdomain.Segment], error) {
	return &kdomain.Page[kdomain.Segment]{}, nil
}

func (f *fakeClient) ListMetrics(context.Context, string, string) (*kdomain.Page[kdomain.Metric], error) {
	f.listMetricsCalls++
	if len(f.metricPages) == 0 {
		return &kdomain.Page[kdomain.Metric]{}, nil
	}
	page := f.metricPages[0]
	if len(f.metricPages) > 1 {
		f.metricPages = f.metricPages[1:]
	}
	return page, nil
}

func (f *fakeClient) CampaignValuesReport(context.Context, kdomain.ValuesReportRequest) ([]kdomain.ReportRow, error) {
	call := f.valuesReportCalls
	f.valuesReportCalls++
	if call < len(f.valuesReportErrs) && f.valuesReportErrs[call] != nil {
		return nil, f.valuesReportErrs[call]
	}
	return f.valuesReportRows, nil
}

func (f *fakeClient) FlowSeriesReport(context.Context, kdomain.SeriesReportRequest) (*kdomain.SeriesReport, error) {
	return &kdomain.SeriesReport{}, nil
}

func (f *fakeClient) MetricAggregate(context.Context, kdomain.AggregateRequest) (*kdomain.AggregateResult, error) {
	return &kdomain.AggregateResult{}, nil
}

func fastConfig() *config.Config {
	return &config.Config{
		Klaviyo: config.Klaviyo{
			RetryMaxAttempts: 3,
			RetryBaseDelay:   time.Millisecond,
			RetryMaxDelay:    2 * time.Millisecond,
		},
	}
}

func TestResolveMetricID_CachesCatalogForTheRun(t *testing.T) {
	client := &fakeClient{
		metricPages: []*kdomain.Page[kdomain.Metric]{
			{Items: []kdomain.Metric{
				{ID: "m1", Name: "Placed Order"},
				{ID: "m2", Name: "Subscribed to Email Marketing"},
			}},
		},
	}
	integrator := NewWithClient(fastConfig(), client)

	id, err := integrator.ResolveMetricID(context.Background(), "Placed Order")
	require.NoError(t, err)
	assert.Equal(t, "m1", id)

	// second resolution for another catalog entry hits the run cache
	id, err = integrator.ResolveMetricID(context.Background(), "Subscribed to Email Marketing")
	require.NoError(t, err)
	assert.Equal(t, "m2", id)

	assert.Equal(t, 1, client.listMetricsCalls)
}

func TestResolveMetricID_NotFound(t *testing.T) {
	client := &fakeClient{
		metricPages: []*kdomain.Page[kdomain.Metric]{
			{Items: []kdomain.Metric{{ID: "m1", Name: "Placed Order"}}},
		},
	}
	integrator := NewWithClient(fastConfig(), client)

	_, err := integrator.ResolveMetricID(context.Background(), "Subscribed to SMS Marketing")
	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestListCampaigns_WalksEveryPage(t *testing.T) {
	client := &fakeClient{
		campaignPages: []*kdomain.Page[kdomain.Campaign]{
			{Items: []kdomain.Campaign{{ID: "c1"}, {ID: "c2"}}, NextCursor: "next"},
			{Items: []kdomain.Campaign{{ID: "c3"}}},
		},
	}
	integrator := NewWithClient(fastConfig(), client)

	campaigns, err := integrator.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	assert.Equal(t, "c3", campaigns[2].ID)
}

func TestCampaignValues_RetriesRateLimitOnly(t *testing.T) {
	rateLimited := &kdomain.APIError{Kind: kdomain.ErrKindRateLimited, StatusCode: 429}

	client := &fakeClient{
		valuesReportErrs: []error{rateLimited, nil},
		valuesReportRows: []kdomain.ReportRow{{Groupings: map[string]string{"campaign_id": "c1"}}},
	}
	integrator := NewWithClient(fastConfig(), client)

	rows, err := integrator.CampaignValues(context.Background(), []string{"c1"}, "m1", kdomain.Timeframe{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, client.valuesReportCalls)
}

func TestCampaignValues_InvalidRequestNotRetried(t *testing.T) {
	invalid := &kdomain.APIError{Kind: kdomain.ErrKindRequestInvalid, StatusCode: 400}

	client := &fakeClient{valuesReportErrs: []error{invalid, nil}}
	integrator := NewWithClient(fastConfig(), client)

	_, err := integrator.CampaignValues(context.Background(), []string{"c1"}, "m1", kdomain.Timeframe{})
	require.Error(t, err)
	assert.True(t, kdomain.IsRequestInvalid(err))
	assert.Equal(t, 1, client.valuesReportCalls)
}
